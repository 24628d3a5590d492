package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dompetku/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Transaction errors
var (
	errTransactionDirectionInvalid = errors.New("the transaction direction must be one of income, expense, transfer")
)

// Allocation errors
var (
	errAllocationAmountNotPositive = errors.New("the amount to allocate must be larger than zero")
	errNoFreeCashPocket            = fmt.Errorf("%w main pocket to receive the income, create one or set the pocketId", models.ErrResourceNotFound)
)

var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
