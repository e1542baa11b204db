package dto

import "errors"

// Custom errors
var (
	ErrMerchantRequired    = errors.New("merchant is required")
	ErrAmountNotPositive   = errors.New("amount must be positive")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ScanResponse wraps an extraction into the transport envelope returned to
// the client, together with provenance from the scan pipeline.
type ScanResponse struct {
	DraftID       string            `json:"draft_id"`
	Extraction    ReceiptExtraction `json:"extraction"`
	OCRConfidence float64           `json:"ocr_confidence,omitempty"`
	QRReference   string            `json:"qr_reference,omitempty"`
	ImagePath     string            `json:"image_path,omitempty"`
	ProcessedAt   string            `json:"processed_at"`
}
