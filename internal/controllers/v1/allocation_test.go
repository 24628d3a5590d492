package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dompetku/backend/internal/allocation"
	v1 "github.com/dompetku/backend/internal/controllers/v1"
	"github.com/dompetku/backend/internal/models"
	"github.com/dompetku/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// budget holds the pockets and rules for allocation tests.
type budget struct {
	main      v1.PocketResponse
	emergency v1.PocketResponse
	saving    v1.PocketResponse
	fun       v1.PocketResponse
}

// createTestBudget creates pockets and the following rules:
//
//   - high: 10 percent to emergency
//   - medium: 2.000.000 to saving
//   - low: 3.000.000 to fun
//   - high, inactive: 50 percent to fun
func (suite *TestSuiteStandard) createTestBudget(t *testing.T) budget {
	b := budget{
		main:      suite.createTestPocket(t, v1.PocketEditable{Name: "Dompet"}),
		emergency: suite.createTestPocket(t, v1.PocketEditable{Name: "Dana Darurat", Type: models.PocketTypeSaving}),
		saving:    suite.createTestPocket(t, v1.PocketEditable{Name: "Tabungan", Type: models.PocketTypeSaving}),
		fun:       suite.createTestPocket(t, v1.PocketEditable{Name: "Hiburan", Type: models.PocketTypeAllocation}),
	}

	inactive := false
	for _, r := range []v1.AllocationRuleEditable{
		{TargetPocketID: b.emergency.Data.ID, Priority: allocation.PriorityHigh, Kind: allocation.KindPercentage, Value: decimal.NewFromInt(10)},
		{TargetPocketID: b.saving.Data.ID, Priority: allocation.PriorityMedium, Kind: allocation.KindFixedAmount, Value: decimal.NewFromInt(2_000_000)},
		{TargetPocketID: b.fun.Data.ID, Priority: allocation.PriorityLow, Kind: allocation.KindFixedAmount, Value: decimal.NewFromInt(3_000_000)},
		{TargetPocketID: b.fun.Data.ID, Priority: allocation.PriorityHigh, Kind: allocation.KindPercentage, Value: decimal.NewFromInt(50), IsActive: &inactive},
	} {
		_ = suite.createTestAllocationRule(t, r)
	}

	return b
}

func (suite *TestSuiteStandard) preview(t *testing.T, body any, expectedStatus int) v1.AllocationPreviewResponse {
	r := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/allocations/preview", body)
	test.AssertHTTPStatus(t, &r, expectedStatus)

	var response v1.AllocationPreviewResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func (suite *TestSuiteStandard) apply(t *testing.T, body any, expectedStatus int) v1.AllocationApplyResponse {
	r := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/allocations", body)
	test.AssertHTTPStatus(t, &r, expectedStatus)

	var response v1.AllocationApplyResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func (suite *TestSuiteStandard) balance(t *testing.T, id uuid.UUID) decimal.Decimal {
	r := test.Request(suite.co, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/pockets/%s", id), "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.PocketResponse
	test.DecodeResponse(t, &r, &response)
	return response.Data.Balance
}

// value returns a pointer to a decimal for submitted rules.
func value(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func amountEqual(t *testing.T, expected int64, actual v1.AllocationAmount, msgAndArgs ...any) {
	assert.True(t, decimal.NewFromInt(expected).Equal(actual.Value), append([]any{"expected %d, got %s"}, expected, actual.Value)...)
	assert.NotEmpty(t, actual.Formatted, msgAndArgs...)
}

func (suite *TestSuiteStandard) TestAllocationPreviewStoredRules() {
	b := suite.createTestBudget(suite.T())

	response := suite.preview(suite.T(), v1.AllocationPreviewRequest{Amount: decimal.NewFromInt(5_000_000)}, http.StatusOK)
	require.Nil(suite.T(), response.Error)
	result := response.Data

	amountEqual(suite.T(), 5_000_000, result.Income)
	amountEqual(suite.T(), 2_500_000, result.Allocated)
	amountEqual(suite.T(), 2_500_000, result.Remaining)

	require.Len(suite.T(), result.Allocations, 2)
	assert.Equal(suite.T(), b.emergency.Data.ID, result.Allocations[0].PocketID)
	amountEqual(suite.T(), 500_000, result.Allocations[0].Amount)
	assert.Equal(suite.T(), b.saving.Data.ID, result.Allocations[1].PocketID)
	amountEqual(suite.T(), 2_000_000, result.Allocations[1].Amount)

	require.Len(suite.T(), result.Groups, 2)
	assert.Equal(suite.T(), allocation.PriorityHigh, result.Groups[0].Priority)
	amountEqual(suite.T(), 500_000, result.Groups[0].Total)
	assert.Equal(suite.T(), allocation.PriorityMedium, result.Groups[1].Priority)

	require.Len(suite.T(), result.Skipped, 1, "Inactive rules are not reported")
	assert.Equal(suite.T(), b.fun.Data.ID, result.Skipped[0].PocketID)
	assert.Equal(suite.T(), allocation.SkipOverBudget, result.Skipped[0].Reason)
	amountEqual(suite.T(), 3_000_000, result.Skipped[0].Amount)
}

func (suite *TestSuiteStandard) TestAllocationPreviewDoesNotWrite() {
	b := suite.createTestBudget(suite.T())

	_ = suite.preview(suite.T(), v1.AllocationPreviewRequest{Amount: decimal.NewFromInt(5_000_000)}, http.StatusOK)

	var re v1.TransactionListResponse
	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.DecodeResponse(suite.T(), &r, &re)
	assert.Len(suite.T(), re.Data, 0)
	assert.True(suite.T(), suite.balance(suite.T(), b.main.Data.ID).IsZero())
}

func (suite *TestSuiteStandard) TestAllocationPreviewSubmittedRules() {
	b := suite.createTestBudget(suite.T())
	ruleID := uuid.New()
	unknown := uuid.New()
	inactive := false

	tests := []struct {
		name        string
		rules       []v1.AllocationPreviewRule
		allocations int
		skipped     int
		remaining   int64
	}{
		{
			"No rules",
			[]v1.AllocationPreviewRule{},
			0, 0, 1_000_000,
		},
		{
			"Percentage of the full income",
			[]v1.AllocationPreviewRule{
				{ID: ruleID, TargetPocketID: b.saving.Data.ID, Priority: allocation.PriorityLow, Kind: allocation.KindPercentage, Value: value(60)},
				{TargetPocketID: b.fun.Data.ID, Priority: allocation.PriorityHigh, Kind: allocation.KindPercentage, Value: value(50)},
			},
			1, 1, 500_000,
		},
		{
			"Unknown pocket",
			[]v1.AllocationPreviewRule{
				{TargetPocketID: unknown, Priority: allocation.PriorityHigh, Kind: allocation.KindFixedAmount, Value: value(900_000)},
				{TargetPocketID: b.saving.Data.ID, Priority: allocation.PriorityLow, Kind: allocation.KindFixedAmount, Value: value(200_000)},
			},
			1, 1, 800_000,
		},
		{
			"Inactive rule",
			[]v1.AllocationPreviewRule{
				{TargetPocketID: b.saving.Data.ID, Priority: allocation.PriorityHigh, Kind: allocation.KindFixedAmount, Value: value(1), IsActive: &inactive},
			},
			0, 0, 1_000_000,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := suite.preview(t, v1.AllocationPreviewRequest{Amount: decimal.NewFromInt(1_000_000), Rules: tt.rules}, http.StatusOK)

			assert.Len(t, response.Data.Allocations, tt.allocations)
			assert.Len(t, response.Data.Skipped, tt.skipped)
			amountEqual(t, tt.remaining, response.Data.Remaining)
		})
	}

	// Submitted IDs identify the rules in the result
	response := suite.preview(suite.T(), v1.AllocationPreviewRequest{Amount: decimal.NewFromInt(100), Rules: tests[1].rules[:1]}, http.StatusOK)
	require.Len(suite.T(), response.Data.Allocations, 1)
	assert.Equal(suite.T(), ruleID, response.Data.Allocations[0].RuleID)
}

func (suite *TestSuiteStandard) TestAllocationPreviewZeroIncome() {
	b := suite.createTestPocket(suite.T(), v1.PocketEditable{})

	rules := []v1.AllocationPreviewRule{
		{TargetPocketID: b.Data.ID, Priority: allocation.PriorityHigh, Kind: allocation.KindPercentage, Value: value(50)},
		{TargetPocketID: b.Data.ID, Priority: allocation.PriorityHigh, Kind: allocation.KindFixedAmount, Value: value(1)},
	}

	response := suite.preview(suite.T(), v1.AllocationPreviewRequest{Amount: decimal.Zero, Rules: rules}, http.StatusOK)

	require.Len(suite.T(), response.Data.Allocations, 1, "A zero percentage allocation is committed")
	amountEqual(suite.T(), 0, response.Data.Allocations[0].Amount)
	require.Len(suite.T(), response.Data.Skipped, 1, "A fixed amount does not fit into a zero income")
	amountEqual(suite.T(), 0, response.Data.Remaining)
}

func (suite *TestSuiteStandard) TestAllocationPreviewFails() {
	pocket := suite.createTestPocket(suite.T(), v1.PocketEditable{})

	tests := []struct {
		name string
		body any
		err  error
	}{
		{"Negative income", v1.AllocationPreviewRequest{Amount: decimal.NewFromInt(-1)}, allocation.ErrNegativeIncome},
		{"Invalid priority", v1.AllocationPreviewRequest{Amount: decimal.NewFromInt(1), Rules: []v1.AllocationPreviewRule{{TargetPocketID: pocket.Data.ID, Priority: "urgent", Kind: allocation.KindFixedAmount, Value: value(1)}}}, allocation.ErrInvalidPriority},
		{"Invalid kind", v1.AllocationPreviewRequest{Amount: decimal.NewFromInt(1), Rules: []v1.AllocationPreviewRule{{TargetPocketID: pocket.Data.ID, Priority: allocation.PriorityLow, Kind: "share", Value: value(1)}}}, allocation.ErrInvalidKind},
		{"Missing value", v1.AllocationPreviewRequest{Amount: decimal.NewFromInt(1), Rules: []v1.AllocationPreviewRule{{TargetPocketID: pocket.Data.ID, Priority: allocation.PriorityHigh, Kind: allocation.KindPercentage}}}, allocation.ErrInvalidValue},
		{"Missing value in JSON", `{"amount": "1000", "rules": [{"targetPocketId": "` + pocket.Data.ID.String() + `", "priority": "high", "kind": "percentage"}]}`, allocation.ErrInvalidValue},
		{"Percentage above 100", v1.AllocationPreviewRequest{Amount: decimal.NewFromInt(1), Rules: []v1.AllocationPreviewRule{{TargetPocketID: pocket.Data.ID, Priority: allocation.PriorityLow, Kind: allocation.KindPercentage, Value: value(120)}}}, allocation.ErrInvalidValue},
		{"Broken body", `{ "amount": `, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := suite.preview(t, tt.body, http.StatusBadRequest)
			require.NotNil(t, response.Error)

			if tt.err != nil {
				assert.Contains(t, *response.Error, tt.err.Error())
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationApply() {
	b := suite.createTestBudget(suite.T())

	response := suite.apply(suite.T(), v1.AllocationApplyRequest{Amount: decimal.NewFromInt(5_000_000), Note: "Gaji Januari"}, http.StatusCreated)
	require.Nil(suite.T(), response.Error)
	apply := response.Data

	assert.Equal(suite.T(), b.main.Data.ID, apply.PocketID, "The oldest main pocket receives the income")
	assert.Len(suite.T(), apply.TransferTransactionIDs, 2)
	assert.Len(suite.T(), apply.Links.Transactions, 3)
	amountEqual(suite.T(), 2_500_000, apply.Remaining)

	balances := []struct {
		name    string
		id      uuid.UUID
		balance int64
	}{
		{"Main", b.main.Data.ID, 2_500_000},
		{"Emergency", b.emergency.Data.ID, 500_000},
		{"Saving", b.saving.Data.ID, 2_000_000},
		{"Fun", b.fun.Data.ID, 0},
	}

	for _, tt := range balances {
		suite.T().Run(tt.name, func(t *testing.T) {
			balance := suite.balance(t, tt.id)
			assert.True(t, balance.Equal(decimal.NewFromInt(tt.balance)), "Balance is %s, expected %d", balance, tt.balance)
		})
	}

	r := test.Request(suite.co, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", apply.IncomeTransactionID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var income v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &income)
	assert.Equal(suite.T(), models.DirectionIncome, income.Data.Direction)
	assert.Equal(suite.T(), "Gaji Januari", income.Data.Note)
}

func (suite *TestSuiteStandard) TestAllocationApplyFreeCashPocket() {
	archived := suite.createTestPocket(suite.T(), v1.PocketEditable{Archived: true})
	main := suite.createTestPocket(suite.T(), v1.PocketEditable{})
	other := suite.createTestPocket(suite.T(), v1.PocketEditable{Type: models.PocketTypeAllocation})

	// A rule targeting the free-cash pocket does not create a transfer
	_ = suite.createTestAllocationRule(suite.T(), v1.AllocationRuleEditable{TargetPocketID: main.Data.ID, Priority: allocation.PriorityHigh, Value: decimal.NewFromInt(100)})
	_ = suite.createTestAllocationRule(suite.T(), v1.AllocationRuleEditable{TargetPocketID: other.Data.ID, Priority: allocation.PriorityLow, Value: decimal.NewFromInt(100)})

	response := suite.apply(suite.T(), v1.AllocationApplyRequest{Amount: decimal.NewFromInt(1_000)}, http.StatusCreated)
	assert.Equal(suite.T(), main.Data.ID, response.Data.PocketID, "Archived pockets do not receive income")
	assert.Len(suite.T(), response.Data.TransferTransactionIDs, 1)
	assert.True(suite.T(), suite.balance(suite.T(), main.Data.ID).Equal(decimal.NewFromInt(900)))

	response = suite.apply(suite.T(), v1.AllocationApplyRequest{Amount: decimal.NewFromInt(1_000), PocketID: &archived.Data.ID}, http.StatusCreated)
	assert.Equal(suite.T(), archived.Data.ID, response.Data.PocketID)
	assert.Len(suite.T(), response.Data.TransferTransactionIDs, 2)
	assert.True(suite.T(), suite.balance(suite.T(), archived.Data.ID).Equal(decimal.NewFromInt(800)))
}

func (suite *TestSuiteStandard) TestAllocationApplyFails() {
	missing := uuid.New()

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"No main pocket", v1.AllocationApplyRequest{Amount: decimal.NewFromInt(100)}, http.StatusNotFound},
		{"Pocket does not exist", v1.AllocationApplyRequest{Amount: decimal.NewFromInt(100), PocketID: &missing}, http.StatusNotFound},
		{"Zero amount", v1.AllocationApplyRequest{}, http.StatusBadRequest},
		{"Negative amount", v1.AllocationApplyRequest{Amount: decimal.NewFromInt(-100)}, http.StatusBadRequest},
		{"Empty body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := suite.apply(t, tt.body, tt.status)
			assert.NotNil(t, response.Error)
		})
	}

	var re v1.TransactionListResponse
	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.DecodeResponse(suite.T(), &r, &re)
	assert.Len(suite.T(), re.Data, 0, "Failed allocations must not create transactions")
}

func (suite *TestSuiteStandard) TestAllocationApplyCategoryRollback() {
	_ = suite.createTestBudget(suite.T())
	missing := uuid.New()

	_ = suite.apply(suite.T(), v1.AllocationApplyRequest{Amount: decimal.NewFromInt(100), CategoryID: &missing}, http.StatusNotFound)

	var re v1.TransactionListResponse
	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.DecodeResponse(suite.T(), &r, &re)
	assert.Len(suite.T(), re.Data, 0)
}

func (suite *TestSuiteStandard) TestAllocationDBClosed() {
	_ = suite.createTestBudget(suite.T())
	suite.CloseDB()

	preview := suite.preview(suite.T(), v1.AllocationPreviewRequest{Amount: decimal.NewFromInt(100)}, http.StatusInternalServerError)
	require.NotNil(suite.T(), preview.Error)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), *preview.Error)

	// Starting the transaction fails before any query runs
	apply := suite.apply(suite.T(), v1.AllocationApplyRequest{Amount: decimal.NewFromInt(100)}, http.StatusInternalServerError)
	require.NotNil(suite.T(), apply.Error)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), *apply.Error)
}

func (suite *TestSuiteStandard) TestAllocationMetrics() {
	_ = suite.createTestBudget(suite.T())

	_ = suite.preview(suite.T(), v1.AllocationPreviewRequest{Amount: decimal.NewFromInt(5_000_000)}, http.StatusOK)
	_ = suite.apply(suite.T(), v1.AllocationApplyRequest{Amount: decimal.NewFromInt(5_000_000)}, http.StatusCreated)

	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/metrics", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	body := r.Body.String()
	assert.Contains(suite.T(), body, `dompetku_allocation_runs_total{mode="preview"} 1`)
	assert.Contains(suite.T(), body, `dompetku_allocation_runs_total{mode="apply"} 1`)
	assert.Contains(suite.T(), body, `dompetku_allocation_rules_skipped_total{reason="overBudget"} 2`)
	assert.Contains(suite.T(), body, "dompetku_allocated_amount_total 2.5e+06")
}
