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
	"gorm.io/gorm"
)

type GoalEditable struct {
	Name     string          `json:"name" example:"Umrah" default:""`                                                                                    // Name of the goal
	Note     string          `json:"note" example:"For the whole family" default:""`                                                                     // Note about the goal
	PocketID uuid.UUID       `json:"pocketId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`                                                            // The ID of the pocket the money is saved in
	Amount   decimal.Decimal `json:"amount" example:"30000000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // How much money should be saved for this goal?
	Month    types.Month     `json:"month" example:"2026-12"`                                                                                            // The month the goal should be reached
	Archived bool            `json:"archived" example:"false" default:"false"`                                                                           // If this goal is still in use or not
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:     editable.Name,
		Note:     editable.Note,
		PocketID: editable.PocketID,
		Amount:   editable.Amount,
		Month:    editable.Month,
		Archived: editable.Archived,
	}
}

type GoalLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`     // The goal itself
	Pocket string `json:"pocket" example:"https://example.com/api/v1/pockets/c1a96ae4-80e3-4827-8ed0-c7656f224fee"` // The pocket this goal saves in
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Saved   decimal.Decimal `json:"saved" example:"12500000"` // Current balance of the pocket, capped at the goal amount
	Reached bool            `json:"reached" example:"false"`  // Is the goal amount saved?
	Links   GoalLinks       `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, db *gorm.DB, model models.Goal) (Goal, error) {
	pocket := models.Pocket{DefaultModel: models.DefaultModel{ID: model.PocketID}}
	balance, err := pocket.Balance(db, time.Now())
	if err != nil {
		return Goal{}, err
	}

	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:     model.Name,
			Note:     model.Note,
			PocketID: model.PocketID,
			Amount:   model.Amount,
			Month:    model.Month,
			Archived: model.Archived,
		},
		Saved:   decimal.Min(decimal.Max(balance, decimal.Zero), model.Amount),
		Reached: balance.GreaterThanOrEqual(model.Amount),
		Links: GoalLinks{
			Self:   fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Pocket: fmt.Sprintf("%s/v1/pockets/%s", url, model.PocketID),
		},
	}, nil
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created resources
}

func (r *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The resource
}

type GoalQueryFilter struct {
	Name       string       `form:"name" filterField:"false"`       // By name
	Note       string       `form:"note" filterField:"false"`       // By the note
	Search     string       `form:"search" filterField:"false"`     // By string in name or note
	Archived   bool         `form:"archived"`                       // Is the goal archived?
	PocketID   ez_uuid.UUID `form:"pocket"`                         // ID of the pocket
	Month      string       `form:"month" filterField:"false"`      // Exact month
	FromMonth  string       `form:"fromMonth" filterField:"false"`  // From this month
	UntilMonth string       `form:"untilMonth" filterField:"false"` // Until this month
	Offset     uint         `form:"offset" filterField:"false"`     // The offset of the first goal returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`      // Maximum number of goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() models.Goal {
	return GoalEditable{
		PocketID: f.PocketID.UUID,
		Archived: f.Archived,
	}.model()
}

// months parses the month filters. Unset months are zero.
func (f GoalQueryFilter) months() (month, from, until types.Month, err error) {
	for _, m := range []struct {
		value  string
		target *types.Month
	}{
		{f.Month, &month},
		{f.FromMonth, &from},
		{f.UntilMonth, &until},
	} {
		if m.value == "" {
			continue
		}

		*m.target, err = types.ParseMonth(m.value)
		if err != nil {
			return types.Month{}, types.Month{}, types.Month{}, err
		}
	}

	return month, from, until, nil
}
