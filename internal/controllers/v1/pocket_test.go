package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/dompetku/backend/internal/controllers/v1"
	"github.com/dompetku/backend/internal/models"
	"github.com/dompetku/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPocketsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestPocketsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				suite.createTestPocket(t, v1.PocketEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(suite.co, t, http.MethodGet, "http://example.com/v1/pockets", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.PocketListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestPocketsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestPocketsOptions() {
	tests := []struct {
		name   string
		id     string // path at the pockets endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No pocket with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Pocket exists", suite.createTestPocket(suite.T(), v1.PocketEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/pockets", tt.id)
			r := test.Request(suite.co, t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestPocketsCreate() {
	pocket := suite.createTestPocket(suite.T(), v1.PocketEditable{Name: "  Dompet Harian ", Note: "Daily spending"})

	assert.Equal(suite.T(), "Dompet Harian", pocket.Data.Name)
	assert.Equal(suite.T(), models.PocketTypeMain, pocket.Data.Type, "Pockets default to main")
	assert.True(suite.T(), pocket.Data.Balance.IsZero())
	assert.NotEmpty(suite.T(), pocket.Data.Formatted)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/pockets/%s", pocket.Data.ID), pocket.Data.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/transactions?pocket=%s", pocket.Data.ID), pocket.Data.Links.Transactions)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/allocation-rules?pocket=%s", pocket.Data.ID), pocket.Data.Links.Rules)
}

func (suite *TestSuiteStandard) TestPocketsCreateFails() {
	_ = suite.createTestPocket(suite.T(), v1.PocketEditable{Name: "Taken"})

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Broken JSON", `[{ "name": 2`, http.StatusBadRequest, ""},
		{"Empty body", "", http.StatusBadRequest, ""},
		{"Not a list", `{ "name": "Single" }`, http.StatusBadRequest, ""},
		{"Invalid type", []v1.PocketEditable{{Name: "Invalid", Type: "wallet"}}, http.StatusBadRequest, models.ErrPocketTypeInvalid.Error()},
		{"Name not unique", []v1.PocketEditable{{Name: "Taken"}}, http.StatusBadRequest, models.ErrPocketNameNotUnique.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/pockets", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err == "" {
				return
			}

			var response v1.PocketCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)
			assert.Equal(t, tt.err, *response.Data[0].Error)
		})
	}
}

// TestPocketsCreatePartial verifies that the highest status code of a batch is returned.
func (suite *TestSuiteStandard) TestPocketsCreatePartial() {
	body := []v1.PocketEditable{
		{Name: "Valid"},
		{Name: "Invalid", Type: "wallet"},
	}

	r := test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/pockets", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.PocketCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Nil(suite.T(), response.Data[0].Error)
	assert.Equal(suite.T(), "Valid", response.Data[0].Data.Name)
	assert.NotNil(suite.T(), response.Data[1].Error)
}

// TestPocketsGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestPocketsGetSingle() {
	p := suite.createTestPocket(suite.T(), v1.PocketEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing pocket", p.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No pocket with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodPatch},
		{"PATCH No pocket with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
		{"DELETE No pocket with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, tt.method, fmt.Sprintf("http://example.com/v1/pockets/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestPocketsGetFilter() {
	_ = suite.createTestPocket(suite.T(), v1.PocketEditable{
		Name: "Tabungan Haji",
		Note: "Long term",
		Type: models.PocketTypeSaving,
	})

	_ = suite.createTestPocket(suite.T(), v1.PocketEditable{
		Name:     "Tabungan Rumah",
		Type:     models.PocketTypeSaving,
		Archived: true,
	})

	_ = suite.createTestPocket(suite.T(), v1.PocketEditable{
		Name: "Dompet Harian",
		Note: "Daily spending",
	})

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"Saving", "type=saving", 2, 2},
		{"Main", "type=main", 1, 1},
		{"Archived", "archived=true", 1, 1},
		{"Not archived", "archived=false", 2, 2},
		{"Fuzzy name", "name=Tabungan", 2, 2},
		{"Empty note", "note=", 1, 1},
		{"Search is case insensitive", "search=DAILY", 1, 1},
		{"Glob prefix", "match=Tabungan*", 2, 2},
		{"Glob suffix", "match=*Harian", 1, 1},
		{"Glob no match", "match=Kas*", 0, 0},
		{"Glob with limit", "match=Tabungan*&limit=1", 1, 2},
		{"Glob with offset", "match=*&offset=2", 1, 3},
		{"Offset 1", "offset=1", 2, 3},
		{"Limit 0", "limit=0", 0, 3},
		{"Limit -1", "limit=-1", 3, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.PocketListResponse
			r := test.Request(suite.co, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/pockets?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Len(t, re.Data, tt.len)
			assert.Equal(t, tt.total, re.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestPocketsGetOrderedByName() {
	for _, name := range []string{"Zakat", "Belanja", "Makan"} {
		_ = suite.createTestPocket(suite.T(), v1.PocketEditable{Name: name})
	}

	var re v1.PocketListResponse
	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/pockets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &re)

	require.Len(suite.T(), re.Data, 3)
	assert.Equal(suite.T(), "Belanja", re.Data[0].Name)
	assert.Equal(suite.T(), "Makan", re.Data[1].Name)
	assert.Equal(suite.T(), "Zakat", re.Data[2].Name)
	assert.Equal(suite.T(), 50, re.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestPocketsBalance() {
	pocket := suite.createTestPocket(suite.T(), v1.PocketEditable{})
	other := suite.createTestPocket(suite.T(), v1.PocketEditable{})

	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		DestinationPocketID: &pocket.Data.ID,
		Amount:              decimal.NewFromInt(100_000),
	})

	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		SourcePocketID: &pocket.Data.ID,
		Amount:         decimal.NewFromInt(30_000),
	})

	_ = suite.createTestTransaction(suite.T(), v1.TransactionEditable{
		SourcePocketID:      &pocket.Data.ID,
		DestinationPocketID: &other.Data.ID,
		Amount:              decimal.NewFromInt(20_000),
	})

	tests := []struct {
		id      uuid.UUID
		balance int64
	}{
		{pocket.Data.ID, 50_000},
		{other.Data.ID, 20_000},
	}

	for _, tt := range tests {
		suite.T().Run(tt.id.String(), func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/pockets/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.PocketResponse
			test.DecodeResponse(t, &r, &response)
			assert.True(t, response.Data.Balance.Equal(decimal.NewFromInt(tt.balance)), "Balance is %s, expected %d", response.Data.Balance, tt.balance)
		})
	}
}

func (suite *TestSuiteStandard) TestPocketsUpdate() {
	pocket := suite.createTestPocket(suite.T(), v1.PocketEditable{Name: "Old name", Note: "Keep me"})
	path := fmt.Sprintf("http://example.com/v1/pockets/%s", pocket.Data.ID)

	r := test.Request(suite.co, suite.T(), http.MethodPatch, path, map[string]any{
		"name":     "New name",
		"archived": true,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PocketResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "New name", response.Data.Name)
	assert.Equal(suite.T(), "Keep me", response.Data.Note, "Fields not in the body must not be changed")
	assert.True(suite.T(), response.Data.Archived)
}

func (suite *TestSuiteStandard) TestPocketsUpdateFails() {
	pocket := suite.createTestPocket(suite.T(), v1.PocketEditable{})
	path := fmt.Sprintf("http://example.com/v1/pockets/%s", pocket.Data.ID)

	tests := []struct {
		name string
		body any
	}{
		{"Broken JSON", `{ "name": 2`},
		{"Invalid type", map[string]any{"type": "wallet"}},
		{"Wrong field type", map[string]any{"archived": "yes"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodPatch, path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestPocketsDelete() {
	pocket := suite.createTestPocket(suite.T(), v1.PocketEditable{})
	path := fmt.Sprintf("http://example.com/v1/pockets/%s", pocket.Data.ID)

	r := test.Request(suite.co, suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.co, suite.T(), http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
