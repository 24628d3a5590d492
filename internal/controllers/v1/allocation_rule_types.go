package v1

import (
	"fmt"

	"github.com/dompetku/backend/internal/allocation"
	"github.com/dompetku/backend/internal/models"
	ez_uuid "github.com/dompetku/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AllocationRuleEditable struct {
	Name           string              `json:"name" example:"Tabungan rutin" default:""`                                                        // Name of the rule
	Note           string              `json:"note" example:"A third of every salary" default:""`                                               // A note about the rule
	TargetPocketID uuid.UUID           `json:"targetPocketId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                                   // ID of the pocket the money is allocated to
	Priority       allocation.Priority `json:"priority" example:"high" default:"medium"`                                                        // One of high, medium, low
	Kind           allocation.Kind     `json:"kind" example:"percentage" default:"percentage"`                                                  // Either percentage or fixedAmount
	Value          decimal.Decimal     `json:"value" example:"30" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Percentage of the income for percentage rules, the amount for fixedAmount rules
	IsActive       *bool               `json:"isActive" example:"true" default:"true"`                                                          // Only active rules are applied
}

// model returns the database resource for the API representation of the editable fields
func (editable AllocationRuleEditable) model() models.AllocationRule {
	active := true
	if editable.IsActive != nil {
		active = *editable.IsActive
	}

	return models.AllocationRule{
		Name:           editable.Name,
		Note:           editable.Note,
		TargetPocketID: editable.TargetPocketID,
		Priority:       editable.Priority,
		Kind:           editable.Kind,
		Value:          editable.Value,
		IsActive:       active,
	}
}

type AllocationRuleLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/allocation-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The rule itself
	TargetPocket string `json:"targetPocket" example:"https://example.com/api/v1/pockets/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`  // The pocket the rule allocates to
}

type AllocationRule struct {
	models.DefaultModel
	AllocationRuleEditable
	Links AllocationRuleLinks `json:"links"`
}

// newAllocationRule returns the API v1 representation of the resource
func newAllocationRule(c *gin.Context, model models.AllocationRule) AllocationRule {
	url := c.GetString(string(models.DBContextURL))
	active := model.IsActive

	return AllocationRule{
		DefaultModel: model.DefaultModel,
		AllocationRuleEditable: AllocationRuleEditable{
			Name:           model.Name,
			Note:           model.Note,
			TargetPocketID: model.TargetPocketID,
			Priority:       model.Priority,
			Kind:           model.Kind,
			Value:          model.Value,
			IsActive:       &active,
		},
		Links: AllocationRuleLinks{
			Self:         fmt.Sprintf("%s/v1/allocation-rules/%s", url, model.ID),
			TargetPocket: fmt.Sprintf("%s/v1/pockets/%s", url, model.TargetPocketID),
		},
	}
}

type AllocationRuleListResponse struct {
	Data       []AllocationRule `json:"data"`                                                          // List of resources
	Error      *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                                    // Pagination information
}

type AllocationRuleCreateResponse struct {
	Error *string                  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AllocationRuleResponse `json:"data"`                                                          // List of created resources
}

func (r *AllocationRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, AllocationRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationRuleResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *AllocationRule `json:"data"`                                                          // The resource
}

type AllocationRuleQueryFilter struct {
	Name           string       `form:"name" filterField:"false"`   // By name
	Note           string       `form:"note" filterField:"false"`   // By note
	Search         string       `form:"search" filterField:"false"` // By string in name or note
	TargetPocketID ez_uuid.UUID `form:"pocket"`                     // By ID of the target pocket
	Priority       string       `form:"priority"`                   // By priority
	Kind           string       `form:"kind"`                       // By kind
	IsActive       bool         `form:"active"`                     // Is the rule active?
	Offset         uint         `form:"offset" filterField:"false"` // The offset of the first rule returned. Defaults to 0.
	Limit          int          `form:"limit" filterField:"false"`  // Maximum number of rules to return. Defaults to 50.
}

func (f AllocationRuleQueryFilter) model() models.AllocationRule {
	return AllocationRuleEditable{
		TargetPocketID: f.TargetPocketID.UUID,
		Priority:       allocation.Priority(f.Priority),
		Kind:           allocation.Kind(f.Kind),
		IsActive:       &f.IsActive,
	}.model()
}
