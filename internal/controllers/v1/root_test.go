package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/dompetku/backend/internal/controllers/v1"
	"github.com/dompetku/backend/internal/models"
	"github.com/dompetku/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetV1() {
	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.Links{
		Pockets:         "http://example.com/v1/pockets",
		Categories:      "http://example.com/v1/categories",
		Transactions:    "http://example.com/v1/transactions",
		AllocationRules: "http://example.com/v1/allocation-rules",
		Goals:           "http://example.com/v1/goals",
		Liabilities:     "http://example.com/v1/liabilities",
		Allocations:     "http://example.com/v1/allocations",
		Preview:         "http://example.com/v1/allocations/preview",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestCleanup() {
	pocket := suite.createTestPocket(suite.T(), v1.PocketEditable{})
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{DestinationPocketID: &pocket.Data.ID, CategoryID: &category.Data.ID, Amount: decimal.NewFromFloat(17.32)})
	_ = suite.createTestAllocationRule(suite.T(), v1.AllocationRuleEditable{TargetPocketID: pocket.Data.ID})
	_ = suite.createTestGoal(suite.T(), v1.GoalEditable{})
	_ = suite.createTestLiability(suite.T(), v1.LiabilityEditable{PocketID: &pocket.Data.ID})

	tests := []string{
		"http://example.com/v1/pockets",
		"http://example.com/v1/categories",
		"http://example.com/v1/transactions",
		"http://example.com/v1/allocation-rules",
		"http://example.com/v1/goals",
		"http://example.com/v1/liabilities",
	}

	// Delete
	r := test.Request(suite.co, suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Verify
	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodGet, tt, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}

			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, 0, "There are resources left for %s", tt)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"No confirmation", ""},
		{"Invalid confirmation", "confirm=2"},
		{"Confirmation wrong", "confirm=invalid-confirmation"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodDelete, fmt.Sprintf("http://example.com/v1?%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	r := test.Request(suite.co, suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), response.Error)
}
