package models

import (
	"strings"

	"gorm.io/gorm"
)

// CategoryType tells if a category is used for income or for expenses.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category is used to classify transactions.
type Category struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex"`
	Note     string
	Type     CategoryType
	Archived bool
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	if c.Type == "" {
		c.Type = CategoryTypeExpense
	}

	return nil
}

func (c *Category) AfterSave(_ *gorm.DB) error {
	if c.Type != CategoryTypeIncome && c.Type != CategoryTypeExpense {
		return ErrCategoryTypeInvalid
	}

	return nil
}
