package catalog

import (
	"testing"

	"github.com/offstore/offstore-api/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func validProduct() *models.Product {
	return &models.Product{
		Name:     "Oversized Hoodie",
		Price:    750,
		Category: "Hoodies",
		Sizes:    datatypes.JSONSlice[string]{"M", "L"},
		Colors:   datatypes.JSONSlice[string]{"BLACK", "BEIGE"},
	}
}

func TestValidateAcceptsWellFormedProduct(t *testing.T) {
	assert.NoError(t, Validate(validProduct()))
}

func TestValidateRejectsUnknownCategory(t *testing.T) {
	p := validProduct()
	p.Category = "Shoes"
	assert.Error(t, Validate(p))
}

func TestValidateRequiresSizesAndColors(t *testing.T) {
	p := validProduct()
	p.Sizes = nil
	assert.Error(t, Validate(p))

	p = validProduct()
	p.Colors = nil
	assert.Error(t, Validate(p))
}

func TestValidateSizeVocabularyPerCategory(t *testing.T) {
	// Waist sizes are only valid on pants.
	p := validProduct()
	p.Sizes = datatypes.JSONSlice[string]{"32"}
	assert.Error(t, Validate(p))

	pants := validProduct()
	pants.Category = "Pants"
	pants.Sizes = datatypes.JSONSlice[string]{"32", "34"}
	assert.NoError(t, Validate(pants))

	pants.Sizes = datatypes.JSONSlice[string]{"M"}
	assert.Error(t, Validate(pants))
}

func TestValidateRejectsUnknownColor(t *testing.T) {
	p := validProduct()
	p.Colors = datatypes.JSONSlice[string]{"NEON"}
	assert.Error(t, Validate(p))
}

func TestValidateRejectsNonPositivePrice(t *testing.T) {
	p := validProduct()
	p.Price = 0
	assert.Error(t, Validate(p))

	p.Price = -10
	assert.Error(t, Validate(p))
}
