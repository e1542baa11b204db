package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOCRText(t *testing.T) {
	raw := "STARBUCKS\r\n\tLATTE  | 5.75\r\n\n\n\n\nTOTAL: $5.75   "

	got := NormalizeOCRText(raw)

	assert.Equal(t, "STARBUCKS\n LATTE 5.75\n\nTOTAL: $5.75", got)
}

func TestNormalizeOCRTextEmpty(t *testing.T) {
	assert.Equal(t, "", NormalizeOCRText(""))
	assert.Equal(t, "", NormalizeOCRText("  \n\n  "))
}
