package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractItems(t *testing.T) {
	lines := NormalizeLines(`WALMART
04/02/2024
MILK WHOLE GALL 00015700146019 $3.02 F
BREAD WHEAT 2.49
BANANAS @ $0.58 EA
--------
SUBTOTAL 6.09
TAX 0.43
TOTAL $6.52
VISA TEND 6.52
THANK YOU`)

	items := extractItems(lines)

	require.Len(t, items, 3)
	assert.Equal(t, "MILK WHOLE GALL", items[0].Name)
	assert.Equal(t, "3.02", items[0].Price.String())
	assert.Equal(t, "BREAD WHEAT", items[1].Name)
	assert.Equal(t, "2.49", items[1].Price.String())
	assert.Equal(t, "BANANAS", items[2].Name)
	assert.Equal(t, "0.58", items[2].Price.String())
}

func TestExtractItemsSkipsNoise(t *testing.T) {
	lines := []string{
		"TOTAL 9.99",
		"TAX 0.50",
		"CHANGE 0.01",
		"2 @ $2.79 EACH",
		"10:23 AM",
		"no price on this line",
	}

	assert.Empty(t, extractItems(lines))
}

func TestExtractItemsRejectsZeroPrice(t *testing.T) {
	items := extractItems([]string{"PROMO STICKER 0.00"})
	assert.Empty(t, items)
}
