// Package allocation distributes an income across pockets according to
// prioritized allocation rules.
package allocation

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// SkipReason explains why a rule did not receive money.
type SkipReason string

const (
	SkipUnknownPocket SkipReason = "unknownPocket"
	SkipOverBudget    SkipReason = "overBudget"
)

// Entry is a committed allocation.
type Entry struct {
	RuleID   uuid.UUID       `json:"ruleId" example:"3b1e6b9c-8e0a-4bd5-a8a1-5cc4c0d10c2e"`   // The rule that produced this entry
	PocketID uuid.UUID       `json:"pocketId" example:"e5b4b6a4-5c53-4c69-9a84-5b6d8b1d8a47"` // The pocket receiving the amount
	Amount   decimal.Decimal `json:"amount" example:"3000000"`                                // The amount allocated
	Priority Priority        `json:"priority" example:"high"`                                 // Priority of the rule
}

// Skip is a rule that was evaluated but not applied.
type Skip struct {
	RuleID   uuid.UUID       `json:"ruleId" example:"3b1e6b9c-8e0a-4bd5-a8a1-5cc4c0d10c2e"`   // The skipped rule
	PocketID uuid.UUID       `json:"pocketId" example:"e5b4b6a4-5c53-4c69-9a84-5b6d8b1d8a47"` // The pocket the rule targets
	Amount   decimal.Decimal `json:"amount" example:"600000"`                                 // The amount the rule would have claimed. Zero for unknown pockets.
	Reason   SkipReason      `json:"reason" example:"overBudget"`                             // Why the rule was skipped
}

// Result is the outcome of a calculation.
type Result struct {
	Income      decimal.Decimal
	Allocations []Entry
	Remaining   decimal.Decimal
	Skipped     []Skip
}

// Calculate distributes income over the pockets targeted by the active rules.
//
// Rules are applied in priority order. Rules with the same priority keep the
// order they are passed in. A rule is applied only if its full amount fits
// into what is left, rules targeting pockets not contained in pockets are
// ignored. The sum of all allocations and the remaining amount always equals
// income.
//
// Neither rules nor pockets are modified.
func Calculate(income decimal.Decimal, rules []Rule, pockets []uuid.UUID) (Result, error) {
	if income.IsNegative() {
		return Result{}, fmt.Errorf("%w: %s", ErrNegativeIncome, income)
	}

	active := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return Result{}, fmt.Errorf("rule %s: %w", rule.ID, err)
		}

		if rule.IsActive {
			active = append(active, rule)
		}
	}

	slices.SortStableFunc(active, func(a, b Rule) int {
		return a.Priority.rank() - b.Priority.rank()
	})

	known := make(map[uuid.UUID]struct{}, len(pockets))
	for _, id := range pockets {
		known[id] = struct{}{}
	}

	result := Result{
		Income:      income,
		Allocations: make([]Entry, 0, len(active)),
		Skipped:     make([]Skip, 0),
	}
	remaining := income

	for _, rule := range active {
		if _, ok := known[rule.TargetPocketID]; !ok {
			result.Skipped = append(result.Skipped, Skip{
				RuleID:   rule.ID,
				PocketID: rule.TargetPocketID,
				Amount:   decimal.Zero,
				Reason:   SkipUnknownPocket,
			})
			continue
		}

		amount := rule.amount(income)
		if amount.GreaterThan(remaining) {
			result.Skipped = append(result.Skipped, Skip{
				RuleID:   rule.ID,
				PocketID: rule.TargetPocketID,
				Amount:   amount,
				Reason:   SkipOverBudget,
			})
			continue
		}

		result.Allocations = append(result.Allocations, Entry{
			RuleID:   rule.ID,
			PocketID: rule.TargetPocketID,
			Amount:   amount,
			Priority: rule.Priority,
		})
		remaining = remaining.Sub(amount)
	}

	result.Remaining = remaining
	return result, nil
}

// Allocated returns the sum of all committed allocations.
func (r Result) Allocated() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range r.Allocations {
		sum = sum.Add(e.Amount)
	}

	return sum
}

// Group contains the committed allocations of one priority tier.
type Group struct {
	Priority    Priority
	Allocations []Entry
	Total       decimal.Decimal
}

// ByPriority groups the committed allocations by tier. Tiers without
// allocations are omitted.
func (r Result) ByPriority() []Group {
	groups := make([]Group, 0, len(Priorities))

	for _, p := range Priorities {
		g := Group{Priority: p, Total: decimal.Zero}
		for _, e := range r.Allocations {
			if e.Priority == p {
				g.Allocations = append(g.Allocations, e)
				g.Total = g.Total.Add(e.Amount)
			}
		}

		if len(g.Allocations) > 0 {
			groups = append(groups, g)
		}
	}

	return groups
}
