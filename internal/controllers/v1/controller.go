// Package v1 implements the v1 REST API.
package v1

import (
	"github.com/dompetku/backend/internal/metrics"
	"github.com/dompetku/backend/internal/money"
	"gorm.io/gorm"
)

// Controller holds the dependencies of all handlers.
type Controller struct {
	DB        *gorm.DB
	Formatter money.Formatter
	Metrics   *metrics.Metrics
}
