package v1

import (
	"fmt"
	"time"

	"github.com/dompetku/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PocketEditable struct {
	Name     string            `json:"name" example:"Dana Darurat" default:""`           // Name of the pocket
	Note     string            `json:"note" example:"Six months of expenses" default:""` // A note about the pocket
	Type     models.PocketType `json:"type" example:"saving" default:"main"`             // One of main, allocation, saving, debt, system
	Archived bool              `json:"archived" example:"false" default:"false"`         // Is the pocket archived?
}

// model returns the database resource for the API representation of the editable fields
func (editable PocketEditable) model() models.Pocket {
	return models.Pocket{
		Name:     editable.Name,
		Note:     editable.Note,
		Type:     editable.Type,
		Archived: editable.Archived,
	}
}

type PocketLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/pockets/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // The pocket itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?pocket=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions from or to this pocket
	Rules        string `json:"rules" example:"https://example.com/api/v1/allocation-rules?pocket=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`    // Allocation rules targeting this pocket
}

type Pocket struct {
	models.DefaultModel
	PocketEditable
	Links     PocketLinks     `json:"links"`
	Balance   decimal.Decimal `json:"balance" example:"2500000"`        // Balance of the pocket
	Formatted string          `json:"formatted" example:"Rp 2.500.000"` // Balance of the pocket formatted in the configured currency
}

// newPocket returns the API v1 representation of the resource
func (co Controller) newPocket(c *gin.Context, db *gorm.DB, model models.Pocket) (Pocket, error) {
	balance, err := model.Balance(db, time.Now())
	if err != nil {
		return Pocket{}, err
	}

	url := c.GetString(string(models.DBContextURL))

	return Pocket{
		DefaultModel: model.DefaultModel,
		PocketEditable: PocketEditable{
			Name:     model.Name,
			Note:     model.Note,
			Type:     model.Type,
			Archived: model.Archived,
		},
		Balance:   balance,
		Formatted: co.Formatter.Format(balance),
		Links: PocketLinks{
			Self:         fmt.Sprintf("%s/v1/pockets/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?pocket=%s", url, model.ID),
			Rules:        fmt.Sprintf("%s/v1/allocation-rules?pocket=%s", url, model.ID),
		},
	}, nil
}

type PocketListResponse struct {
	Data       []Pocket    `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PocketCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []PocketResponse `json:"data"`                                                          // List of created resources
}

func (r *PocketCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, PocketResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PocketResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Pocket `json:"data"`                                                          // The resource
}

type PocketQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Match    string `form:"match" filterField:"false"`  // By glob pattern on the name
	Type     string `form:"type"`                       // By type
	Archived bool   `form:"archived"`                   // Is the pocket archived?
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first pocket returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of pockets to return. Defaults to 50.
}

func (f PocketQueryFilter) model() models.Pocket {
	return PocketEditable{
		Type:     models.PocketType(f.Type),
		Archived: f.Archived,
	}.model()
}
