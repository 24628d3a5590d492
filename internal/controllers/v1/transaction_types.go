package v1

import (
	"fmt"
	"time"

	"github.com/dompetku/backend/internal/models"
	ez_uuid "github.com/dompetku/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	SourcePocketID      *uuid.UUID      `json:"sourcePocketId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`                                                    // ID of the pocket the money leaves. Empty for income.
	DestinationPocketID *uuid.UUID      `json:"destinationPocketId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`                                               // ID of the pocket the money goes to. Empty for expenses.
	CategoryID          *uuid.UUID      `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`                                                        // ID of the category
	Date                time.Time       `json:"date" example:"1815-12-10T18:43:00.271152Z"`                                                                       // Date of the transaction. Time is currently only used for sorting
	Amount              decimal.Decimal `json:"amount" example:"150000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The amount of the transaction
	Note                string          `json:"note" example:"Makan siang" default:""`                                                                            // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		SourcePocketID:      editable.SourcePocketID,
		DestinationPocketID: editable.DestinationPocketID,
		CategoryID:          editable.CategoryID,
		Date:                editable.Date,
		Amount:              editable.Amount,
		Note:                editable.Note,
	}
}

type TransactionLinks struct {
	Self              string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`         // The transaction itself
	SourcePocket      string `json:"sourcePocket" example:"https://example.com/api/v1/pockets/fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`      // The source pocket, empty for income
	DestinationPocket string `json:"destinationPocket" example:"https://example.com/api/v1/pockets/8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // The destination pocket, empty for expenses
	Category          string `json:"category" example:"https://example.com/api/v1/categories/2649c965-7999-4873-ae16-89d5d5fa972e"`       // The category, empty if not set
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Direction models.TransactionDirection `json:"direction" example:"transfer"`   // One of income, expense, transfer
	Formatted string                      `json:"formatted" example:"Rp 150.000"` // The amount formatted in the configured currency
	Links     TransactionLinks            `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func (co Controller) newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	links := TransactionLinks{
		Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
	}

	if model.SourcePocketID != nil {
		links.SourcePocket = fmt.Sprintf("%s/v1/pockets/%s", url, *model.SourcePocketID)
	}

	if model.DestinationPocketID != nil {
		links.DestinationPocket = fmt.Sprintf("%s/v1/pockets/%s", url, *model.DestinationPocketID)
	}

	if model.CategoryID != nil {
		links.Category = fmt.Sprintf("%s/v1/categories/%s", url, *model.CategoryID)
	}

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			SourcePocketID:      model.SourcePocketID,
			DestinationPocketID: model.DestinationPocketID,
			CategoryID:          model.CategoryID,
			Date:                model.Date,
			Amount:              model.Amount,
			Note:                model.Note,
		},
		Direction: model.Direction(),
		Formatted: co.Formatter.Format(model.Amount),
		Links:     links,
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (r *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	SourcePocketID      ez_uuid.UUID    `form:"source"`                                // By ID of the source pocket
	DestinationPocketID ez_uuid.UUID    `form:"destination"`                           // By ID of the destination pocket
	CategoryID          ez_uuid.UUID    `form:"category"`                              // By ID of the category
	PocketID            ez_uuid.UUID    `form:"pocket" filterField:"false"`            // By ID of a pocket that is either source or destination
	Direction           string          `form:"direction" filterField:"false"`         // By direction
	Date                time.Time       `form:"date" filterField:"false"`              // Exact date. Time is ignored.
	FromDate            time.Time       `form:"fromDate" filterField:"false"`          // From this date. Time is ignored.
	UntilDate           time.Time       `form:"untilDate" filterField:"false"`         // Until this date. Time is ignored.
	Amount              decimal.Decimal `form:"amount"`                                // Exact amount
	AmountLessOrEqual   decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual   decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Note                string          `form:"note" filterField:"false"`              // By note
	Offset              uint            `form:"offset" filterField:"false"`            // The offset of the first transaction returned. Defaults to 0.
	Limit               int             `form:"limit" filterField:"false"`             // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return TransactionEditable{
		SourcePocketID:      f.SourcePocketID.Ptr(),
		DestinationPocketID: f.DestinationPocketID.Ptr(),
		CategoryID:          f.CategoryID.Ptr(),
		Amount:              f.Amount,
	}.model()
}
