package v1

import (
	"net/http"

	"github.com/dompetku/backend/internal/httputil"
	"github.com/dompetku/backend/internal/models"
	"github.com/dompetku/backend/internal/types"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterLiabilityRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsLiabilities)
		r.GET("", co.GetLiabilities)
		r.POST("", co.CreateLiabilities)
	}
	{
		r.OPTIONS("/:id", co.OptionsLiabilityDetail)
		r.GET("/:id", co.GetLiability)
		r.PATCH("/:id", co.UpdateLiability)
		r.DELETE("/:id", co.DeleteLiability)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Liabilities
// @Success		204
// @Router			/v1/liabilities [options]
func (co Controller) OptionsLiabilities(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Liabilities
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/liabilities/{id} [options]
func (co Controller) OptionsLiabilityDetail(c *gin.Context) {
	resourceOptionsDetail(co, c, models.Liability{})
}

// @Summary		Create liabilities
// @Description	Creates new liabilities
// @Tags			Liabilities
// @Produce		json
// @Success		201			{object}	LiabilityCreateResponse
// @Failure		400			{object}	LiabilityCreateResponse
// @Failure		404			{object}	LiabilityCreateResponse
// @Failure		500			{object}	LiabilityCreateResponse
// @Param			liabilities	body		[]LiabilityEditable	true	"Liabilities"
// @Router			/v1/liabilities [post]
func (co Controller) CreateLiabilities(c *gin.Context) {
	var liabilities []LiabilityEditable

	err := httputil.BindData(c, &liabilities)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LiabilityCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := LiabilityCreateResponse{}

	for _, create := range liabilities {
		liability := create.model()
		err = co.DB.Create(&liability).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := co.newLiability(c, liability)
		r.Data = append(r.Data, LiabilityResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get liabilities
// @Description	Returns a list of liabilities, ordered by due month
// @Tags			Liabilities
// @Produce		json
// @Success		200	{object}	LiabilityListResponse
// @Failure		400	{object}	LiabilityListResponse
// @Failure		500	{object}	LiabilityListResponse
// @Router			/v1/liabilities [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			pocket		query	string	false	"Filter by debt pocket ID"
// @Param			paid		query	bool	false	"Is the liability paid?"
// @Param			untilMonth	query	string	false	"Liabilities due in this or earlier months in YYYY-MM format"
// @Param			offset		query	uint	false	"The offset of the first liability returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of liabilities to return. Defaults to 50."
func (co Controller) GetLiabilities(c *gin.Context) {
	var filter LiabilityQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, LiabilityListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := co.DB.
		Order("date(liabilities.due_month) ASC, liabilities.name ASC").
		Where(&where, queryFields...)

	q = stringFilters(co.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	if filter.UntilMonth != "" {
		untilMonth, err := types.ParseMonth(filter.UntilMonth)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, LiabilityListResponse{
				Error: &s,
			})
			return
		}
		q = q.Where("liabilities.due_month < date(?)", untilMonth.AddDate(0, 1))
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var liabilities []models.Liability
	err := q.Find(&liabilities).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LiabilityListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LiabilityListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Liability, 0, len(liabilities))
	for _, liability := range liabilities {
		data = append(data, co.newLiability(c, liability))
	}

	c.JSON(http.StatusOK, LiabilityListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get liability
// @Description	Returns a specific liability
// @Tags			Liabilities
// @Produce		json
// @Success		200	{object}	LiabilityResponse
// @Failure		400	{object}	LiabilityResponse
// @Failure		404	{object}	LiabilityResponse
// @Failure		500	{object}	LiabilityResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/liabilities/{id} [get]
func (co Controller) GetLiability(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LiabilityResponse{
			Error: &e,
		})
		return
	}

	var liability models.Liability
	err = co.DB.First(&liability, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LiabilityResponse{
			Error: &e,
		})
		return
	}

	apiResource := co.newLiability(c, liability)
	c.JSON(http.StatusOK, LiabilityResponse{Data: &apiResource})
}

// @Summary		Update liability
// @Description	Updates an existing liability. Only values to be updated need to be specified.
// @Tags			Liabilities
// @Accept			json
// @Produce		json
// @Success		200			{object}	LiabilityResponse
// @Failure		400			{object}	LiabilityResponse
// @Failure		404			{object}	LiabilityResponse
// @Failure		500			{object}	LiabilityResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			liability	body		LiabilityEditable	true	"Liability"
// @Router			/v1/liabilities/{id} [patch]
func (co Controller) UpdateLiability(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LiabilityResponse{
			Error: &e,
		})
		return
	}

	var liability models.Liability
	err = co.DB.First(&liability, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LiabilityResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, LiabilityEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LiabilityResponse{
			Error: &e,
		})
		return
	}

	var data LiabilityEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LiabilityResponse{
			Error: &e,
		})
		return
	}

	err = co.DB.Model(&liability).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LiabilityResponse{
			Error: &e,
		})
		return
	}

	apiResource := co.newLiability(c, liability)
	c.JSON(http.StatusOK, LiabilityResponse{Data: &apiResource})
}

// @Summary		Delete liability
// @Description	Deletes a liability
// @Tags			Liabilities
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/liabilities/{id} [delete]
func (co Controller) DeleteLiability(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var liability models.Liability
	err = co.DB.First(&liability, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.Delete(&liability).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
