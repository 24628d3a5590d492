package models

import (
	"strings"

	"github.com/dompetku/backend/internal/allocation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AllocationRule describes how much of an income goes to a pocket.
type AllocationRule struct {
	DefaultModel
	Name           string
	Note           string
	TargetPocketID uuid.UUID
	TargetPocket   Pocket `json:"-"`
	Priority       allocation.Priority
	Kind           allocation.Kind
	Value          decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Percentage of the income or fixed amount
	IsActive       bool
}

func (r *AllocationRule) BeforeSave(_ *gorm.DB) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Note = strings.TrimSpace(r.Note)

	return nil
}

func (r *AllocationRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)
	return tx.First(&Pocket{}, r.TargetPocketID).Error
}

func (r *AllocationRule) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := updated[AllocationRule](tx)
	if !ok || !tx.Statement.Changed("TargetPocketID") {
		return nil
	}

	return tx.First(&Pocket{}, toSave.TargetPocketID).Error
}

func (r *AllocationRule) AfterSave(_ *gorm.DB) error {
	err := r.Rule().Validate()
	if err != nil {
		return err
	}

	if !r.Value.IsPositive() {
		return ErrAllocationRuleValueNotPositive
	}

	return nil
}

// Rule returns the snapshot of the rule used by the calculator.
func (r AllocationRule) Rule() allocation.Rule {
	return allocation.Rule{
		ID:             r.ID,
		TargetPocketID: r.TargetPocketID,
		Priority:       r.Priority,
		Kind:           r.Kind,
		Value:          r.Value,
		IsActive:       r.IsActive,
	}
}

// AllocationRules returns all rules in the order they were created.
func AllocationRules(db *gorm.DB) ([]allocation.Rule, error) {
	var rules []AllocationRule
	err := db.Order("allocation_rules.created_at ASC, allocation_rules.id ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}

	snapshot := make([]allocation.Rule, 0, len(rules))
	for _, r := range rules {
		snapshot = append(snapshot, r.Rule())
	}

	return snapshot, nil
}
