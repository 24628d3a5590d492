package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/dompetku/backend/internal/controllers/v1"
	"github.com/dompetku/backend/internal/types"
	"github.com/dompetku/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestLiabilitiesDBClosed() {
	suite.CloseDB()

	suite.createTestLiability(suite.T(), v1.LiabilityEditable{}, http.StatusInternalServerError)

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/liabilities", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestLiabilitiesCreate() {
	pocket := suite.createTestPocket(suite.T(), v1.PocketEditable{Type: "debt"})
	thisMonth := types.MonthOf(time.Now().UTC())

	tests := []struct {
		name      string
		liability v1.LiabilityEditable
		overdue   bool
	}{
		{"Without pocket and due month", v1.LiabilityEditable{}, false},
		{"Due last month", v1.LiabilityEditable{PocketID: &pocket.Data.ID, DueMonth: thisMonth.AddDate(0, -1)}, true},
		{"Due last month but paid", v1.LiabilityEditable{DueMonth: thisMonth.AddDate(0, -1), Paid: true}, false},
		{"Due this month", v1.LiabilityEditable{DueMonth: thisMonth}, false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			liability := suite.createTestLiability(t, tt.liability)
			assert.Equal(t, tt.overdue, liability.Data.Overdue)

			if tt.liability.PocketID == nil {
				assert.Nil(t, liability.Data.PocketID)
				assert.Empty(t, liability.Data.Links.Pocket)
			} else {
				assert.Equal(t, fmt.Sprintf("http://example.com/v1/pockets/%s", pocket.Data.ID), liability.Data.Links.Pocket)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestLiabilitiesCreateFails() {
	missing := uuid.New()

	tests := []struct {
		name      string
		liability v1.LiabilityEditable
		status    int
	}{
		{"Missing pocket", v1.LiabilityEditable{PocketID: &missing, Amount: decimal.NewFromInt(1)}, http.StatusNotFound},
		{"Zero amount", v1.LiabilityEditable{Name: "Cicilan"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/liabilities", []v1.LiabilityEditable{tt.liability})
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestLiabilitiesGetFilter() {
	pocket := suite.createTestPocket(suite.T(), v1.PocketEditable{Type: "debt"})

	_ = suite.createTestLiability(suite.T(), v1.LiabilityEditable{Name: "Cicilan motor", PocketID: &pocket.Data.ID, DueMonth: types.NewMonth(2025, 1)})
	_ = suite.createTestLiability(suite.T(), v1.LiabilityEditable{Name: "Cicilan HP", PocketID: &pocket.Data.ID, DueMonth: types.NewMonth(2025, 2), Paid: true})
	_ = suite.createTestLiability(suite.T(), v1.LiabilityEditable{Name: "Utang ke Budi", Note: "Pay back after Lebaran"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Pocket", fmt.Sprintf("pocket=%s", pocket.Data.ID), 2},
		{"Paid", "paid=true", 1},
		{"Unpaid", "paid=false", 2},
		{"Until month", "untilMonth=2025-01", 1},
		{"Name", "name=cicilan", 2},
		{"Search", "search=lebaran", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.LiabilityListResponse
			r := test.Request(suite.co, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/liabilities?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Len(t, re.Data, tt.len)
		})
	}

	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/liabilities?untilMonth=01-2025", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestLiabilitiesUpdate() {
	liability := suite.createTestLiability(suite.T(), v1.LiabilityEditable{Name: "Cicilan"})
	path := fmt.Sprintf("http://example.com/v1/liabilities/%s", liability.Data.ID)

	r := test.Request(suite.co, suite.T(), http.MethodPatch, path, map[string]any{"paid": true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LiabilityResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Paid)
	assert.Equal(suite.T(), "Cicilan", response.Data.Name)

	r = test.Request(suite.co, suite.T(), http.MethodPatch, path, map[string]any{"pocketId": uuid.New().String()})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestLiabilitiesDelete() {
	liability := suite.createTestLiability(suite.T(), v1.LiabilityEditable{})
	path := fmt.Sprintf("http://example.com/v1/liabilities/%s", liability.Data.ID)

	r := test.Request(suite.co, suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.co, suite.T(), http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
