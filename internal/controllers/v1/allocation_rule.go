package v1

import (
	"net/http"

	"github.com/dompetku/backend/internal/httputil"
	"github.com/dompetku/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterAllocationRuleRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsAllocationRules)
		r.GET("", co.GetAllocationRules)
		r.POST("", co.CreateAllocationRules)
	}
	{
		r.OPTIONS("/:id", co.OptionsAllocationRuleDetail)
		r.GET("/:id", co.GetAllocationRule)
		r.PATCH("/:id", co.UpdateAllocationRule)
		r.DELETE("/:id", co.DeleteAllocationRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocation Rules
// @Success		204
// @Router			/v1/allocation-rules [options]
func (co Controller) OptionsAllocationRules(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocation Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-rules/{id} [options]
func (co Controller) OptionsAllocationRuleDetail(c *gin.Context) {
	resourceOptionsDetail(co, c, models.AllocationRule{})
}

// @Summary		Create allocation rules
// @Description	Creates new allocation rules. Rules are applied in the order they were created within each priority.
// @Tags			Allocation Rules
// @Produce		json
// @Success		201		{object}	AllocationRuleCreateResponse
// @Failure		400		{object}	AllocationRuleCreateResponse
// @Failure		404		{object}	AllocationRuleCreateResponse
// @Failure		500		{object}	AllocationRuleCreateResponse
// @Param			rules	body		[]AllocationRuleEditable	true	"Allocation rules"
// @Router			/v1/allocation-rules [post]
func (co Controller) CreateAllocationRules(c *gin.Context) {
	var rules []AllocationRuleEditable

	err := httputil.BindData(c, &rules)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AllocationRuleCreateResponse{}

	for _, create := range rules {
		rule := create.model()
		err = co.DB.Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newAllocationRule(c, rule)
		r.Data = append(r.Data, AllocationRuleResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get allocation rules
// @Description	Returns a list of allocation rules in the order they were created
// @Tags			Allocation Rules
// @Produce		json
// @Success		200	{object}	AllocationRuleListResponse
// @Failure		400	{object}	AllocationRuleListResponse
// @Failure		500	{object}	AllocationRuleListResponse
// @Router			/v1/allocation-rules [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			pocket		query	string	false	"Filter by target pocket ID"
// @Param			priority	query	string	false	"Filter by priority"
// @Param			kind		query	string	false	"Filter by kind"
// @Param			active		query	bool	false	"Is the rule active?"
// @Param			offset		query	uint	false	"The offset of the first rule returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of rules to return. Defaults to 50."
func (co Controller) GetAllocationRules(c *gin.Context) {
	var filter AllocationRuleQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AllocationRuleListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := co.DB.
		Order("allocation_rules.created_at ASC, allocation_rules.id ASC").
		Where(&where, queryFields...)

	q = stringFilters(co.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var rules []models.AllocationRule
	err := q.Find(&rules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationRuleListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationRuleListResponse{
			Error: &s,
		})
		return
	}

	data := make([]AllocationRule, 0, len(rules))
	for _, rule := range rules {
		data = append(data, newAllocationRule(c, rule))
	}

	c.JSON(http.StatusOK, AllocationRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get allocation rule
// @Description	Returns a specific allocation rule
// @Tags			Allocation Rules
// @Produce		json
// @Success		200	{object}	AllocationRuleResponse
// @Failure		400	{object}	AllocationRuleResponse
// @Failure		404	{object}	AllocationRuleResponse
// @Failure		500	{object}	AllocationRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-rules/{id} [get]
func (co Controller) GetAllocationRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleResponse{
			Error: &e,
		})
		return
	}

	var rule models.AllocationRule
	err = co.DB.First(&rule, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAllocationRule(c, rule)
	c.JSON(http.StatusOK, AllocationRuleResponse{Data: &apiResource})
}

// @Summary		Update allocation rule
// @Description	Updates an existing allocation rule. Only values to be updated need to be specified.
// @Tags			Allocation Rules
// @Accept			json
// @Produce		json
// @Success		200		{object}	AllocationRuleResponse
// @Failure		400		{object}	AllocationRuleResponse
// @Failure		404		{object}	AllocationRuleResponse
// @Failure		500		{object}	AllocationRuleResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		AllocationRuleEditable	true	"Allocation rule"
// @Router			/v1/allocation-rules/{id} [patch]
func (co Controller) UpdateAllocationRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleResponse{
			Error: &e,
		})
		return
	}

	var rule models.AllocationRule
	err = co.DB.First(&rule, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AllocationRuleEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleResponse{
			Error: &e,
		})
		return
	}

	var data AllocationRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleResponse{
			Error: &e,
		})
		return
	}

	err = co.DB.Model(&rule).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationRuleResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAllocationRule(c, rule)
	c.JSON(http.StatusOK, AllocationRuleResponse{Data: &apiResource})
}

// @Summary		Delete allocation rule
// @Description	Deletes an allocation rule
// @Tags			Allocation Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocation-rules/{id} [delete]
func (co Controller) DeleteAllocationRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var rule models.AllocationRule
	err = co.DB.First(&rule, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
