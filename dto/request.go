package dto

import "github.com/shopspring/decimal"

// ScanTextRequest carries OCR provider output the caller already holds.
type ScanTextRequest struct {
	Text string `json:"text"`
}

// CreateTransactionRequest approves a reviewed extraction for persistence.
type CreateTransactionRequest struct {
	Merchant  string          `json:"merchant"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date,omitempty"`
	Category  string          `json:"category,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	ImagePath string          `json:"image_path,omitempty"`
}

// Validate performs basic validation on the request.
func (r *CreateTransactionRequest) Validate() error {
	if r.Merchant == "" {
		return ErrMerchantRequired
	}
	if !r.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	return nil
}
