package allocation

import "errors"

var (
	ErrNegativeIncome  = errors.New("the income amount must not be negative")
	ErrInvalidPriority = errors.New("the allocation rule priority must be one of high, medium, low")
	ErrInvalidKind     = errors.New("the allocation rule kind must be one of percentage, fixedAmount")
	ErrInvalidValue    = errors.New("the allocation rule value is invalid")
)
