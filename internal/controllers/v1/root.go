package v1

import (
	"net/http"

	"github.com/dompetku/backend/internal/httputil"
	"github.com/dompetku/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Pockets         string `json:"pockets" example:"https://example.com/api/v1/pockets"`                  // URL of pocket list endpoint
	Categories      string `json:"categories" example:"https://example.com/api/v1/categories"`            // URL of category list endpoint
	Transactions    string `json:"transactions" example:"https://example.com/api/v1/transactions"`        // URL of transaction list endpoint
	AllocationRules string `json:"allocationRules" example:"https://example.com/api/v1/allocation-rules"` // URL of allocation rule list endpoint
	Goals           string `json:"goals" example:"https://example.com/api/v1/goals"`                      // URL of goal list endpoint
	Liabilities     string `json:"liabilities" example:"https://example.com/api/v1/liabilities"`          // URL of liability list endpoint
	Allocations     string `json:"allocations" example:"https://example.com/api/v1/allocations"`          // URL of the allocation endpoint
	Preview         string `json:"preview" example:"https://example.com/api/v1/allocations/preview"`      // URL of the allocation preview endpoint
}

// RegisterRoutes registers all v1 routes on the group.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.GET("", Get)
		r.DELETE("", co.Cleanup)
		r.OPTIONS("", Options)
	}

	co.RegisterPocketRoutes(r.Group("/pockets"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterAllocationRuleRoutes(r.Group("/allocation-rules"))
	co.RegisterGoalRoutes(r.Group("/goals"))
	co.RegisterLiabilityRoutes(r.Group("/liabilities"))
	co.RegisterAllocationRoutes(r.Group("/allocations"))
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Pockets:         url + "/v1/pockets",
			Categories:      url + "/v1/categories",
			Transactions:    url + "/v1/transactions",
			AllocationRules: url + "/v1/allocation-rules",
			Goals:           url + "/v1/goals",
			Liabilities:     url + "/v1/liabilities",
			Allocations:     url + "/v1/allocations",
			Preview:         url + "/v1/allocations/preview",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all resources
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	// Foreign keys are checked during cleanup,
	// models come before the models they reference
	resources := []any{
		models.Transaction{},
		models.AllocationRule{},
		models.Goal{},
		models.Liability{},
		models.Category{},
		models.Pocket{},
	}

	tx := co.DB.Begin()

	for _, model := range resources {
		err := models.TranslateError(tx.Unscoped().Where("true").Delete(&model).Error)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			tx.Rollback()
			return
		}
	}

	err = models.TranslateError(tx.Commit().Error)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
