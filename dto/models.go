package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptExtraction is the structured, partially-populated transaction
// record recovered from raw receipt OCR text. Optional fields are nil when
// no pattern matched; the record is never revised after assembly.
type ReceiptExtraction struct {
	Merchant   *string          `json:"merchant,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Date       *string          `json:"date,omitempty"`
	Category   *string          `json:"category,omitempty"`
	Items      []ReceiptItem    `json:"items"`
	Confidence float64          `json:"confidence"`
}

// ReceiptItem is one purchased line item.
type ReceiptItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Transaction is an approved, persisted transaction. Date stays the verbatim
// string matched on the receipt; the client owns any calendar normalization.
type Transaction struct {
	ID        string          `json:"id"`
	Merchant  string          `json:"merchant"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date,omitempty"`
	Category  string          `json:"category,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	ImagePath string          `json:"image_path,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// CategorySpend is the per-category slice of the dashboard.
type CategorySpend struct {
	Category    string          `json:"category"`
	Total       decimal.Decimal `json:"total"`
	Budget      decimal.Decimal `json:"budget"`
	Utilization float64         `json:"utilization"`
}

// DashboardSummary aggregates stored transactions.
type DashboardSummary struct {
	TotalSpent       decimal.Decimal `json:"total_spent"`
	TransactionCount int             `json:"transaction_count"`
	Categories       []CategorySpend `json:"categories"`
}
