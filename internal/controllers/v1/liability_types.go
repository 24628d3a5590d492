package v1

import (
	"fmt"
	"time"

	"github.com/dompetku/backend/internal/models"
	"github.com/dompetku/backend/internal/types"
	ez_uuid "github.com/dompetku/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LiabilityEditable struct {
	Name     string          `json:"name" example:"Cicilan motor" default:""`                                                                          // Name of the liability
	Note     string          `json:"note" example:"Installment 7 of 24" default:""`                                                                    // Note about the liability
	PocketID *uuid.UUID      `json:"pocketId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`                                                          // ID of the debt pocket the liability is paid from
	Amount   decimal.Decimal `json:"amount" example:"850000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The amount owed
	DueMonth types.Month     `json:"dueMonth" example:"2025-03"`                                                                                       // The month the liability is due
	Paid     bool            `json:"paid" example:"false" default:"false"`                                                                             // Is the liability paid?
}

// model returns the database resource for the API representation of the editable fields
func (editable LiabilityEditable) model() models.Liability {
	return models.Liability{
		Name:     editable.Name,
		Note:     editable.Note,
		PocketID: editable.PocketID,
		Amount:   editable.Amount,
		DueMonth: editable.DueMonth,
		Paid:     editable.Paid,
	}
}

type LiabilityLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/liabilities/0b1d5a4c-6bd0-4a45-a8bc-9b4d3a2b8e61"` // The liability itself
	Pocket string `json:"pocket" example:"https://example.com/api/v1/pockets/f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`   // The debt pocket, empty if not set
}

type Liability struct {
	models.DefaultModel
	LiabilityEditable
	Overdue   bool           `json:"overdue" example:"false"`        // Unpaid and due in a month before the current one
	Formatted string         `json:"formatted" example:"Rp 850.000"` // The amount formatted in the configured currency
	Links     LiabilityLinks `json:"links"`
}

// newLiability returns the API v1 representation of the resource
func (co Controller) newLiability(c *gin.Context, model models.Liability) Liability {
	url := c.GetString(string(models.DBContextURL))

	links := LiabilityLinks{
		Self: fmt.Sprintf("%s/v1/liabilities/%s", url, model.ID),
	}

	if model.PocketID != nil {
		links.Pocket = fmt.Sprintf("%s/v1/pockets/%s", url, *model.PocketID)
	}

	return Liability{
		DefaultModel: model.DefaultModel,
		LiabilityEditable: LiabilityEditable{
			Name:     model.Name,
			Note:     model.Note,
			PocketID: model.PocketID,
			Amount:   model.Amount,
			DueMonth: model.DueMonth,
			Paid:     model.Paid,
		},
		Overdue:   !model.Paid && !model.DueMonth.IsZero() && model.DueMonth.Before(types.MonthOf(time.Now().UTC())),
		Formatted: co.Formatter.Format(model.Amount),
		Links:     links,
	}
}

type LiabilityListResponse struct {
	Data       []Liability `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type LiabilityCreateResponse struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []LiabilityResponse `json:"data"`                                                          // List of created resources
}

func (r *LiabilityCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, LiabilityResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type LiabilityResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Liability `json:"data"`                                                          // The resource
}

type LiabilityQueryFilter struct {
	Name       string       `form:"name" filterField:"false"`       // By name
	Note       string       `form:"note" filterField:"false"`       // By the note
	Search     string       `form:"search" filterField:"false"`     // By string in name or note
	PocketID   ez_uuid.UUID `form:"pocket"`                         // By ID of the debt pocket
	Paid       bool         `form:"paid"`                           // Is the liability paid?
	UntilMonth string       `form:"untilMonth" filterField:"false"` // Due in this or earlier months
	Offset     uint         `form:"offset" filterField:"false"`     // The offset of the first liability returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`      // Maximum number of liabilities to return. Defaults to 50.
}

func (f LiabilityQueryFilter) model() models.Liability {
	return LiabilityEditable{
		PocketID: f.PocketID.Ptr(),
		Paid:     f.Paid,
	}.model()
}
