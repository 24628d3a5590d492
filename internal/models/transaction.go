package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionDirection is derived from the pockets a transaction is between.
type TransactionDirection string

const (
	DirectionIncome   TransactionDirection = "income"   // Money enters a pocket from outside
	DirectionExpense  TransactionDirection = "expense"  // Money leaves a pocket
	DirectionTransfer TransactionDirection = "transfer" // Money moves between pockets
)

// Transaction is a movement of money.
//
// A nil SourcePocketID means the money comes from outside, a nil
// DestinationPocketID means it leaves.
type Transaction struct {
	DefaultModel
	SourcePocketID      *uuid.UUID
	SourcePocket        *Pocket `json:"-"`
	DestinationPocketID *uuid.UUID
	DestinationPocket   *Pocket `json:"-"`
	CategoryID          *uuid.UUID
	Category            *Category `json:"-"`
	Date                time.Time
	Amount              decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note                string
}

// Direction returns the direction of the transaction.
func (t Transaction) Direction() TransactionDirection {
	if t.SourcePocketID == nil {
		return DirectionIncome
	}

	if t.DestinationPocketID == nil {
		return DirectionExpense
	}

	return DirectionTransfer
}

// AfterFind enforces dates to be in UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - trims whitespace from the note
//   - replaces pointers to nil UUIDs with nil
//   - sets the date to now if it is not set and enforces UTC
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)

	t.SourcePocketID = nilIfZero(t.SourcePocketID)
	t.DestinationPocketID = nilIfZero(t.DestinationPocketID)
	t.CategoryID = nilIfZero(t.CategoryID)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)
	return t.checkIntegrity(tx, *t)
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := updated[Transaction](tx)
	if !ok {
		return nil
	}

	check := Transaction{}
	if tx.Statement.Changed("SourcePocketID") {
		check.SourcePocketID = toSave.SourcePocketID
	}

	if tx.Statement.Changed("DestinationPocketID") {
		check.DestinationPocketID = toSave.DestinationPocketID
	}

	if tx.Statement.Changed("CategoryID") {
		check.CategoryID = toSave.CategoryID
	}

	return t.checkIntegrity(tx, check)
}

// checkIntegrity verifies that all referenced resources exist.
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	for _, id := range []*uuid.UUID{toSave.SourcePocketID, toSave.DestinationPocketID} {
		if id == nil || *id == uuid.Nil {
			continue
		}

		err := tx.First(&Pocket{}, *id).Error
		if err != nil {
			return err
		}
	}

	if toSave.CategoryID != nil && *toSave.CategoryID != uuid.Nil {
		return tx.First(&Category{}, *toSave.CategoryID).Error
	}

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if t.SourcePocketID == nil && t.DestinationPocketID == nil {
		return ErrTransactionNoPocket
	}

	if t.SourcePocketID != nil && t.DestinationPocketID != nil && *t.SourcePocketID == *t.DestinationPocketID {
		return ErrTransactionSamePocket
	}

	return nil
}

func nilIfZero(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}

	return id
}
