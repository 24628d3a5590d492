package models_test

import (
	"time"

	"github.com/dompetku/backend/internal/allocation"
	"github.com/dompetku/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAllocationRuleInvalid() {
	pocket := suite.createTestPocket(models.Pocket{})

	tests := []struct {
		name string
		rule models.AllocationRule
		err  error
	}{
		{"Missing pocket", models.AllocationRule{TargetPocketID: uuid.New(), Priority: allocation.PriorityHigh, Kind: allocation.KindPercentage, Value: decimal.NewFromInt(10)}, models.ErrResourceNotFound},
		{"Invalid priority", models.AllocationRule{TargetPocketID: pocket.ID, Priority: "urgent", Kind: allocation.KindPercentage, Value: decimal.NewFromInt(10)}, allocation.ErrInvalidPriority},
		{"Invalid kind", models.AllocationRule{TargetPocketID: pocket.ID, Priority: allocation.PriorityHigh, Kind: "share", Value: decimal.NewFromInt(10)}, allocation.ErrInvalidKind},
		{"Percentage above 100", models.AllocationRule{TargetPocketID: pocket.ID, Priority: allocation.PriorityHigh, Kind: allocation.KindPercentage, Value: decimal.NewFromInt(120)}, allocation.ErrInvalidValue},
		{"Zero value", models.AllocationRule{TargetPocketID: pocket.ID, Priority: allocation.PriorityLow, Kind: allocation.KindFixedAmount, Value: decimal.Zero}, models.ErrAllocationRuleValueNotPositive},
	}

	for _, tt := range tests {
		err := suite.db.Create(&tt.rule).Error
		assert.ErrorIs(suite.T(), err, tt.err, tt.name)
	}
}

func (suite *TestSuiteStandard) TestAllocationRuleUpdateMissingPocket() {
	pocket := suite.createTestPocket(models.Pocket{})
	rule := suite.createTestAllocationRule(models.AllocationRule{
		TargetPocketID: pocket.ID,
		Priority:       allocation.PriorityMedium,
		Kind:           allocation.KindFixedAmount,
		Value:          decimal.NewFromInt(100),
		IsActive:       true,
	})

	err := suite.db.Model(&rule).Updates(models.AllocationRule{TargetPocketID: uuid.New()}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAllocationRulesOrder() {
	pocket := suite.createTestPocket(models.Pocket{})

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		rule := suite.createTestAllocationRule(models.AllocationRule{
			TargetPocketID: pocket.ID,
			Priority:       allocation.PriorityLow,
			Kind:           allocation.KindFixedAmount,
			Value:          decimal.NewFromInt(int64(i + 1)),
			IsActive:       i != 1,
		})
		ids = append(ids, rule.ID)

		// Creation timestamps must differ
		time.Sleep(2 * time.Millisecond)
	}

	rules, err := models.AllocationRules(suite.db)
	suite.Require().Nil(err)
	suite.Require().Len(rules, 3)

	for i, r := range rules {
		assert.Equal(suite.T(), ids[i], r.ID, "rule %d out of order", i)
		assert.Equal(suite.T(), pocket.ID, r.TargetPocketID)
	}

	assert.False(suite.T(), rules[1].IsActive)
	assert.True(suite.T(), rules[2].Value.Equal(decimal.NewFromInt(3)))
}
