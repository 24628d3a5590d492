package v1

import (
	"net/http"

	"github.com/dompetku/backend/internal/httputil"
	"github.com/dompetku/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

func (co Controller) RegisterPocketRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsPockets)
		r.GET("", co.GetPockets)
		r.POST("", co.CreatePockets)
	}
	{
		r.OPTIONS("/:id", co.OptionsPocketDetail)
		r.GET("/:id", co.GetPocket)
		r.PATCH("/:id", co.UpdatePocket)
		r.DELETE("/:id", co.DeletePocket)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Pockets
// @Success		204
// @Router			/v1/pockets [options]
func (co Controller) OptionsPockets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Pockets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/pockets/{id} [options]
func (co Controller) OptionsPocketDetail(c *gin.Context) {
	resourceOptionsDetail(co, c, models.Pocket{})
}

// @Summary		Create pockets
// @Description	Creates new pockets
// @Tags			Pockets
// @Produce		json
// @Success		201		{object}	PocketCreateResponse
// @Failure		400		{object}	PocketCreateResponse
// @Failure		500		{object}	PocketCreateResponse
// @Param			pockets	body		[]PocketEditable	true	"Pockets"
// @Router			/v1/pockets [post]
func (co Controller) CreatePockets(c *gin.Context) {
	var pockets []PocketEditable

	err := httputil.BindData(c, &pockets)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PocketCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PocketCreateResponse{}

	for _, create := range pockets {
		pocket := create.model()
		err = co.DB.Create(&pocket).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource, err := co.newPocket(c, co.DB, pocket)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}
		r.Data = append(r.Data, PocketResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get pockets
// @Description	Returns a list of pockets
// @Tags			Pockets
// @Produce		json
// @Success		200	{object}	PocketListResponse
// @Failure		400	{object}	PocketListResponse
// @Failure		500	{object}	PocketListResponse
// @Router			/v1/pockets [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			match		query	string	false	"Glob pattern the name must match, e.g. 'Tabungan*'"
// @Param			type		query	string	false	"Filter by type"
// @Param			archived	query	bool	false	"Is the pocket archived?"
// @Param			offset		query	uint	false	"The offset of the first pocket returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of pockets to return. Defaults to 50."
func (co Controller) GetPockets(c *gin.Context) {
	var filter PocketQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PocketListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := co.DB.
		Order("pockets.name ASC").
		Where(&where, queryFields...)

	q = stringFilters(co.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	var pockets []models.Pocket
	var count int64
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	// Glob patterns cannot be evaluated by the database, pagination
	// is done on the filtered result instead
	if filter.Match != "" {
		var all []models.Pocket
		err := q.Find(&all).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), PocketListResponse{
				Error: &s,
			})
			return
		}

		for _, p := range all {
			if glob.Glob(filter.Match, p.Name) {
				pockets = append(pockets, p)
			}
		}

		count = int64(len(pockets))
		pockets = page(pockets, filter.Offset, limit)
	} else {
		var err error
		q, limit = paginate(q, setFields, filter.Offset, filter.Limit)
		err = q.Find(&pockets).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), PocketListResponse{
				Error: &s,
			})
			return
		}

		err = q.Limit(-1).Offset(-1).Count(&count).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), PocketListResponse{
				Error: &s,
			})
			return
		}
	}

	data := make([]Pocket, 0, len(pockets))
	for _, pocket := range pockets {
		apiResource, err := co.newPocket(c, co.DB, pocket)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), PocketListResponse{
				Error: &s,
			})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, PocketListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get pocket
// @Description	Returns a specific pocket with its current balance
// @Tags			Pockets
// @Produce		json
// @Success		200	{object}	PocketResponse
// @Failure		400	{object}	PocketResponse
// @Failure		404	{object}	PocketResponse
// @Failure		500	{object}	PocketResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/pockets/{id} [get]
func (co Controller) GetPocket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PocketResponse{
			Error: &e,
		})
		return
	}

	var pocket models.Pocket
	err = co.DB.First(&pocket, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PocketResponse{
			Error: &e,
		})
		return
	}

	apiResource, err := co.newPocket(c, co.DB, pocket)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PocketResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, PocketResponse{Data: &apiResource})
}

// @Summary		Update pocket
// @Description	Updates an existing pocket. Only values to be updated need to be specified.
// @Tags			Pockets
// @Accept			json
// @Produce		json
// @Success		200		{object}	PocketResponse
// @Failure		400		{object}	PocketResponse
// @Failure		404		{object}	PocketResponse
// @Failure		500		{object}	PocketResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			pocket	body		PocketEditable	true	"Pocket"
// @Router			/v1/pockets/{id} [patch]
func (co Controller) UpdatePocket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PocketResponse{
			Error: &e,
		})
		return
	}

	var pocket models.Pocket
	err = co.DB.First(&pocket, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PocketResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, PocketEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PocketResponse{
			Error: &e,
		})
		return
	}

	var data PocketEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PocketResponse{
			Error: &e,
		})
		return
	}

	err = co.DB.Model(&pocket).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PocketResponse{
			Error: &e,
		})
		return
	}

	apiResource, err := co.newPocket(c, co.DB, pocket)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PocketResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, PocketResponse{Data: &apiResource})
}

// @Summary		Delete pocket
// @Description	Deletes a pocket
// @Tags			Pockets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/pockets/{id} [delete]
func (co Controller) DeletePocket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var pocket models.Pocket
	err = co.DB.First(&pocket, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.Delete(&pocket).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
