package client

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// DecodeReceiptQR attempts to read a QR code from a receipt image. Many
// printed receipts carry a digital-receipt or survey QR code; its payload is
// attached to the scan response as an opaque reference. Absence of a QR code
// is an expected outcome and surfaces as an error the caller may ignore.
func DecodeReceiptQR(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	reader := qrcode.NewQRCodeReader()
	result, err := reader.Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("no QR code found: %w", err)
	}

	return result.GetText(), nil
}
