package models

import (
	"strings"

	"github.com/dompetku/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Liability is money owed, optionally paid from a debt pocket.
type Liability struct {
	DefaultModel
	Name     string
	Note     string
	PocketID *uuid.UUID
	Pocket   *Pocket         `json:"-"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueMonth types.Month
	Paid     bool
}

func (l *Liability) BeforeSave(_ *gorm.DB) error {
	l.Name = strings.TrimSpace(l.Name)
	l.Note = strings.TrimSpace(l.Note)
	l.PocketID = nilIfZero(l.PocketID)

	return nil
}

func (l *Liability) BeforeCreate(tx *gorm.DB) error {
	_ = l.DefaultModel.BeforeCreate(tx)

	if l.PocketID == nil || *l.PocketID == uuid.Nil {
		return nil
	}

	return tx.First(&Pocket{}, *l.PocketID).Error
}

func (l *Liability) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := updated[Liability](tx)
	if !ok || !tx.Statement.Changed("PocketID") || toSave.PocketID == nil || *toSave.PocketID == uuid.Nil {
		return nil
	}

	return tx.First(&Pocket{}, *toSave.PocketID).Error
}

func (l *Liability) AfterSave(_ *gorm.DB) error {
	if !l.Amount.IsPositive() {
		return ErrLiabilityAmountNotPositive
	}

	return nil
}
