package models

import (
	"strings"

	"github.com/dompetku/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings target for a pocket.
type Goal struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex:goal_name_pocket"`
	Note     string
	Pocket   Pocket          `json:"-"`
	PocketID uuid.UUID       `gorm:"uniqueIndex:goal_name_pocket"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The target for the goal
	Month    types.Month     // The month the target should be reached
	Archived bool
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)
	return tx.First(&Pocket{}, g.PocketID).Error
}

func (g *Goal) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave, ok := updated[Goal](tx)
	if !ok || !tx.Statement.Changed("PocketID") {
		return nil
	}

	return tx.First(&Pocket{}, toSave.PocketID).Error
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !g.Amount.IsPositive() {
		return ErrGoalAmountNotPositive
	}

	return nil
}
