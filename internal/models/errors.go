package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Pocket errors
var (
	ErrPocketNameNotUnique = errors.New("the pocket name must be unique")
	ErrPocketNameEmpty     = errors.New("the pocket name must not be empty")
	ErrPocketTypeInvalid   = errors.New("the pocket type must be one of main, allocation, saving, debt, system")
)

// Category errors
var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrCategoryTypeInvalid   = errors.New("the category type must be one of income, expense")
)

// Transaction errors
var (
	ErrTransactionAmountNotPositive = errors.New("the transaction amount must be positive")
	ErrTransactionNoPocket          = errors.New("a transaction needs at least a source or a destination pocket")
	ErrTransactionSamePocket        = errors.New("source and destination pocket of a transaction must be different")
)

// Allocation rule errors
var (
	ErrAllocationRuleValueNotPositive = errors.New("the allocation rule value must be positive")
)

// Goal and liability errors
var (
	ErrGoalNameNotUnique          = errors.New("the goal name must be unique for the pocket")
	ErrGoalAmountNotPositive      = errors.New("goal amounts must be larger than zero")
	ErrLiabilityAmountNotPositive = errors.New("liability amounts must be larger than zero")
)
