package utils_test

import (
	"testing"

	"github.com/OuserDev/Connected-Car-BE/internal/models"
	"github.com/OuserDev/Connected-Car-BE/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestDetectCardBrand(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{"visa starts with 4", "4111111111111111", models.CardBrandVisa},
		{"mastercard 51 prefix", "5100000000000000", models.CardBrandMastercard},
		{"mastercard 55 prefix", "5599999999999999", models.CardBrandMastercard},
		{"amex 34 prefix", "340000000000009", models.CardBrandAmex},
		{"amex 37 prefix", "370000000000002", models.CardBrandAmex},
		{"discover 6011 prefix", "6011000000000004", models.CardBrandDiscover},
		{"discover 65 prefix", "6500000000000002", models.CardBrandDiscover},
		{"56 is not mastercard", "5600000000000000", models.CardBrandUnknown},
		{"unknown prefix", "9999999999999999", models.CardBrandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.DetectCardBrand(tt.number))
		})
	}
}

func TestIsTestCard(t *testing.T) {
	assert.True(t, utils.IsTestCard("4242424242424242"))
	assert.True(t, utils.IsTestCard("4000000000000077"))
	assert.False(t, utils.IsTestCard("4111111111111111"))
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "****-****-****-1111", utils.MaskCardNumber("4111111111111111"))
	assert.Equal(t, "****", utils.MaskCardNumber("12"))
}

func TestHashCardNumber(t *testing.T) {
	h1 := utils.HashCardNumber("4111111111111111")
	h2 := utils.HashCardNumber("4111111111111111")
	h3 := utils.HashCardNumber("4242424242424242")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64)
	assert.NotContains(t, h1, "4111")
}
