package models_test

import (
	"github.com/dompetku/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	category := suite.createTestCategory(models.Category{
		Name: " Makan ",
		Note: "\tFood and drinks ",
	})

	assert.Equal(suite.T(), "Makan", category.Name)
	assert.Equal(suite.T(), "Food and drinks", category.Note)
}

func (suite *TestSuiteStandard) TestCategoryDefaultType() {
	category := suite.createTestCategory(models.Category{})
	assert.Equal(suite.T(), models.CategoryTypeExpense, category.Type)
}

func (suite *TestSuiteStandard) TestCategoryInvalidType() {
	err := suite.db.Create(&models.Category{Name: "Bonus", Type: "windfall"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryTypeInvalid)
}

func (suite *TestSuiteStandard) TestCategoryNameNotUnique() {
	_ = suite.createTestCategory(models.Category{Name: "Gaji", Type: models.CategoryTypeIncome})

	err := suite.db.Create(&models.Category{Name: "Gaji"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)
}
