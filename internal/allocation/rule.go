package allocation

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Priority is the tier of an allocation rule. Rules are applied
// high first, then medium, then low.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists all tiers in application order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// rank returns the position of the priority in the application order.
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}

	return -1
}

// Valid reports if p is one of the known tiers.
func (p Priority) Valid() bool {
	return p.rank() >= 0
}

// Kind is the way a rule computes the amount it claims.
type Kind string

const (
	// KindPercentage claims a percentage of the original income.
	KindPercentage Kind = "percentage"

	// KindFixedAmount claims a fixed amount.
	KindFixedAmount Kind = "fixedAmount"
)

// Valid reports if k is a known kind.
func (k Kind) Valid() bool {
	return k == KindPercentage || k == KindFixedAmount
}

// Rule is a snapshot of an allocation rule as seen by the calculator.
type Rule struct {
	ID             uuid.UUID
	TargetPocketID uuid.UUID
	Priority       Priority
	Kind           Kind
	Value          decimal.Decimal // Percentage in [0, 100] or a fixed amount
	IsActive       bool
}

var hundred = decimal.NewFromInt(100)

// Validate checks the rule for contract violations.
func (r Rule) Validate() error {
	if !r.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, r.Priority)
	}

	if !r.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, r.Kind)
	}

	if r.Value.IsNegative() {
		return fmt.Errorf("%w: %s is negative", ErrInvalidValue, r.Value)
	}

	if r.Kind == KindPercentage && r.Value.GreaterThan(hundred) {
		return fmt.Errorf("%w: percentage %s is larger than 100", ErrInvalidValue, r.Value)
	}

	return nil
}

// amount returns the amount the rule claims for an income.
//
// Percentages are always taken of the full income, never of what is left.
func (r Rule) amount(income decimal.Decimal) decimal.Decimal {
	if r.Kind == KindPercentage {
		return income.Mul(r.Value).Div(hundred).Floor()
	}

	return r.Value
}
