package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PocketType is the purpose of a pocket.
type PocketType string

const (
	PocketTypeMain       PocketType = "main"       // Receives income, holds free cash
	PocketTypeAllocation PocketType = "allocation" // Earmarked money for spending
	PocketTypeSaving     PocketType = "saving"     // Money saved for goals
	PocketTypeDebt       PocketType = "debt"       // Money reserved to pay liabilities
	PocketTypeSystem     PocketType = "system"     // Managed by the application
)

func (t PocketType) Valid() bool {
	switch t {
	case PocketTypeMain, PocketTypeAllocation, PocketTypeSaving, PocketTypeDebt, PocketTypeSystem:
		return true
	}

	return false
}

// Pocket is a named sub-account holding a balance (kantong).
type Pocket struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex"`
	Note     string
	Type     PocketType
	Archived bool
}

func (p *Pocket) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Note = strings.TrimSpace(p.Note)

	return nil
}

func (p *Pocket) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	if p.Type == "" {
		p.Type = PocketTypeMain
	}

	return nil
}

func (p *Pocket) AfterSave(_ *gorm.DB) error {
	if p.Name == "" {
		return ErrPocketNameEmpty
	}

	if !p.Type.Valid() {
		return ErrPocketTypeInvalid
	}

	return nil
}

// Balance returns the balance of the pocket at a point in time.
//
// The balance is the sum of all incoming transactions minus
// the sum of all outgoing transactions up to and including the time.
func (p Pocket) Balance(db *gorm.DB, t time.Time) (decimal.Decimal, error) {
	var incoming []Transaction
	err := db.
		Where(&Transaction{DestinationPocketID: &p.ID}).
		Where("transactions.date <= ?", t.In(time.UTC)).
		Find(&incoming).Error
	if err != nil {
		return decimal.Zero, err
	}

	var outgoing []Transaction
	err = db.
		Where(&Transaction{SourcePocketID: &p.ID}).
		Where("transactions.date <= ?", t.In(time.UTC)).
		Find(&outgoing).Error
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, tr := range incoming {
		balance = balance.Add(tr.Amount)
	}

	for _, tr := range outgoing {
		balance = balance.Sub(tr.Amount)
	}

	return balance, nil
}

// PocketIDs returns the IDs of all pockets that are not deleted.
func PocketIDs(db *gorm.DB) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&Pocket{}).Order("pockets.created_at ASC").Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}
