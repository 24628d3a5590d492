package v1

import (
	"fmt"
	"time"

	"github.com/dompetku/backend/internal/allocation"
	"github.com/dompetku/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationPreviewRule is an unsaved allocation rule submitted for a preview.
type AllocationPreviewRule struct {
	ID             uuid.UUID           `json:"id" example:"3b1e6b9c-8e0a-4bd5-a8a1-5cc4c0d10c2e"`             // ID to identify the rule in the result. Generated if not set.
	TargetPocketID uuid.UUID           `json:"targetPocketId" example:"e5b4b6a4-5c53-4c69-9a84-5b6d8b1d8a47"` // The pocket receiving the allocation
	Priority       allocation.Priority `json:"priority" example:"high"`                                       // One of high, medium, low
	Kind           allocation.Kind     `json:"kind" example:"percentage"`                                     // One of percentage, fixedAmount
	Value          *decimal.Decimal    `json:"value" example:"30"`                                            // Percentage of the income or fixed amount
	IsActive       *bool               `json:"isActive" example:"true"`                                       // Defaults to true
}

func (r AllocationPreviewRule) rule() (allocation.Rule, error) {
	if r.Value == nil {
		return allocation.Rule{}, fmt.Errorf("%w: missing", allocation.ErrInvalidValue)
	}

	id := r.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return allocation.Rule{
		ID:             id,
		TargetPocketID: r.TargetPocketID,
		Priority:       r.Priority,
		Kind:           r.Kind,
		Value:          *r.Value,
		IsActive:       r.IsActive == nil || *r.IsActive,
	}, nil
}

type AllocationPreviewRequest struct {
	Amount decimal.Decimal         `json:"amount" example:"10000000" minimum:"0" multipleOf:"0.00000001"` // The income to distribute
	Rules  []AllocationPreviewRule `json:"rules"`                                                         // Rules to use instead of the stored rules
}

type AllocationApplyRequest struct {
	Amount     decimal.Decimal `json:"amount" example:"10000000" minimum:"0.00000001" multipleOf:"0.00000001"` // The income to distribute
	PocketID   *uuid.UUID      `json:"pocketId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`                // The pocket receiving the income. Defaults to the oldest main pocket.
	CategoryID *uuid.UUID      `json:"categoryId" example:"2c6f1bbf-3c1a-4e2f-9c43-7d5cf2f0a8e2"`              // Category of the income transaction
	Date       time.Time       `json:"date" example:"2025-01-25T00:00:00Z"`                                    // Date of all transactions. Defaults to now.
	Note       string          `json:"note" example:"Gaji Januari"`                                            // Note for all transactions
}

// AllocationAmount is an amount with its formatted representation.
type AllocationAmount struct {
	Value     decimal.Decimal `json:"value" example:"3000000"`          // The amount
	Formatted string          `json:"formatted" example:"Rp 3.000.000"` // The amount in the configured currency
}

type AllocationEntry struct {
	RuleID   uuid.UUID           `json:"ruleId" example:"3b1e6b9c-8e0a-4bd5-a8a1-5cc4c0d10c2e"`   // The rule that produced this allocation
	PocketID uuid.UUID           `json:"pocketId" example:"e5b4b6a4-5c53-4c69-9a84-5b6d8b1d8a47"` // The pocket receiving the amount
	Priority allocation.Priority `json:"priority" example:"high"`                                 // Priority of the rule
	Amount   AllocationAmount    `json:"amount"`                                                  // The amount allocated
}

type AllocationSkip struct {
	RuleID   uuid.UUID             `json:"ruleId" example:"3b1e6b9c-8e0a-4bd5-a8a1-5cc4c0d10c2e"`   // The skipped rule
	PocketID uuid.UUID             `json:"pocketId" example:"e5b4b6a4-5c53-4c69-9a84-5b6d8b1d8a47"` // The pocket the rule targets
	Reason   allocation.SkipReason `json:"reason" example:"overBudget"`                             // One of unknownPocket, overBudget
	Amount   AllocationAmount      `json:"amount"`                                                  // The amount the rule would have claimed
}

type AllocationGroup struct {
	Priority    allocation.Priority `json:"priority" example:"high"` // The priority tier
	Allocations []AllocationEntry   `json:"allocations"`             // Allocations of this tier
	Total       AllocationAmount    `json:"total"`                   // Sum of the allocations of this tier
}

// AllocationResult is the outcome of a run of the allocation calculator.
type AllocationResult struct {
	Income      AllocationAmount  `json:"income"`      // The income that was distributed
	Allocations []AllocationEntry `json:"allocations"` // All allocations in the order they were applied
	Groups      []AllocationGroup `json:"groups"`      // Allocations grouped by priority. Tiers without allocations are omitted.
	Skipped     []AllocationSkip  `json:"skipped"`     // Rules that did not receive money
	Allocated   AllocationAmount  `json:"allocated"`   // Sum of all allocations
	Remaining   AllocationAmount  `json:"remaining"`   // What is left for the free-cash pocket
}

func (co Controller) amount(d decimal.Decimal) AllocationAmount {
	return AllocationAmount{
		Value:     d,
		Formatted: co.Formatter.Format(d),
	}
}

func (co Controller) entry(e allocation.Entry) AllocationEntry {
	return AllocationEntry{
		RuleID:   e.RuleID,
		PocketID: e.PocketID,
		Priority: e.Priority,
		Amount:   co.amount(e.Amount),
	}
}

// newAllocationResult returns the API v1 representation of a calculator result
func (co Controller) newAllocationResult(r allocation.Result) AllocationResult {
	result := AllocationResult{
		Income:      co.amount(r.Income),
		Allocations: make([]AllocationEntry, 0, len(r.Allocations)),
		Groups:      make([]AllocationGroup, 0, len(allocation.Priorities)),
		Skipped:     make([]AllocationSkip, 0, len(r.Skipped)),
		Allocated:   co.amount(r.Allocated()),
		Remaining:   co.amount(r.Remaining),
	}

	for _, e := range r.Allocations {
		result.Allocations = append(result.Allocations, co.entry(e))
	}

	for _, g := range r.ByPriority() {
		group := AllocationGroup{
			Priority:    g.Priority,
			Allocations: make([]AllocationEntry, 0, len(g.Allocations)),
			Total:       co.amount(g.Total),
		}

		for _, e := range g.Allocations {
			group.Allocations = append(group.Allocations, co.entry(e))
		}

		result.Groups = append(result.Groups, group)
	}

	for _, s := range r.Skipped {
		result.Skipped = append(result.Skipped, AllocationSkip{
			RuleID:   s.RuleID,
			PocketID: s.PocketID,
			Reason:   s.Reason,
			Amount:   co.amount(s.Amount),
		})
	}

	return result
}

type AllocationPreviewResponse struct {
	Error *string           `json:"error" example:"the income amount must not be negative"` // The error, if any occurred
	Data  *AllocationResult `json:"data"`                                                   // The result of the calculation
}

type AllocationApplyLinks struct {
	Pocket       string   `json:"pocket" example:"https://example.com/api/v1/pockets/f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`            // The free-cash pocket
	Transactions []string `json:"transactions" example:"https://example.com/api/v1/transactions/a5b6c7d8-1111-4e2f-9c43-7d5cf2f0a8e2"` // All created transactions
}

// AllocationApply is the result of an applied allocation.
type AllocationApply struct {
	AllocationResult
	PocketID               uuid.UUID            `json:"pocketId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`            // The free-cash pocket that received the income
	IncomeTransactionID    uuid.UUID            `json:"incomeTransactionId" example:"a5b6c7d8-1111-4e2f-9c43-7d5cf2f0a8e2"` // The transaction booking the income
	TransferTransactionIDs []uuid.UUID          `json:"transferTransactionIds"`                                             // The transfers to the allocation targets
	Links                  AllocationApplyLinks `json:"links"`
}

func (co Controller) newAllocationApply(c *gin.Context, r allocation.Result, pocket models.Pocket, income models.Transaction, transfers []models.Transaction) AllocationApply {
	url := c.GetString(string(models.DBContextURL))

	apply := AllocationApply{
		AllocationResult:       co.newAllocationResult(r),
		PocketID:               pocket.ID,
		IncomeTransactionID:    income.ID,
		TransferTransactionIDs: make([]uuid.UUID, 0, len(transfers)),
		Links: AllocationApplyLinks{
			Pocket:       fmt.Sprintf("%s/v1/pockets/%s", url, pocket.ID),
			Transactions: []string{fmt.Sprintf("%s/v1/transactions/%s", url, income.ID)},
		},
	}

	for _, t := range transfers {
		apply.TransferTransactionIDs = append(apply.TransferTransactionIDs, t.ID)
		apply.Links.Transactions = append(apply.Links.Transactions, fmt.Sprintf("%s/v1/transactions/%s", url, t.ID))
	}

	return apply
}

type AllocationApplyResponse struct {
	Error *string          `json:"error" example:"the amount to allocate must be larger than zero"` // The error, if any occurred
	Data  *AllocationApply `json:"data"`                                                            // The applied allocation
}
