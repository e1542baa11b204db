package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzhefer/wealthflow/dto"
)

func seedTransaction(t *testing.T, store *fakeStore, merchant, category, amount string) {
	t.Helper()
	require.NoError(t, store.Save(&dto.Transaction{
		ID:       uuid.NewString(),
		Merchant: merchant,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
	}))
}

func TestDashboardSummary(t *testing.T) {
	store := newFakeStore()
	seedTransaction(t, store, "STARBUCKS", "Dining", "10.00")
	seedTransaction(t, store, "CHIPOTLE", "Dining", "15.00")
	seedTransaction(t, store, "SHELL", "Transportation", "40.00")
	seedTransaction(t, store, "Joe's Corner Deli", "", "5.00")

	budgets := map[string]decimal.Decimal{
		"Dining":    decimal.RequireFromString("100"),
		"Groceries": decimal.RequireFromString("200"),
	}
	svc := NewDashboardService(store, budgets)

	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.Equal(t, "70", summary.TotalSpent.String())
	assert.Equal(t, 4, summary.TransactionCount)

	// Sorted by category name; Groceries appears with zero spend because it
	// has a budget.
	require.Len(t, summary.Categories, 4)
	assert.Equal(t, "Dining", summary.Categories[0].Category)
	assert.Equal(t, "25", summary.Categories[0].Total.String())
	assert.Equal(t, 0.25, summary.Categories[0].Utilization)

	assert.Equal(t, "Groceries", summary.Categories[1].Category)
	assert.True(t, summary.Categories[1].Total.IsZero())
	assert.Equal(t, 0.0, summary.Categories[1].Utilization)

	assert.Equal(t, "Transportation", summary.Categories[2].Category)
	assert.Equal(t, "40", summary.Categories[2].Total.String())
	// No budget configured for Transportation.
	assert.Equal(t, 0.0, summary.Categories[2].Utilization)

	assert.Equal(t, "Uncategorized", summary.Categories[3].Category)
	assert.Equal(t, "5", summary.Categories[3].Total.String())
}

func TestDashboardSummaryEmpty(t *testing.T) {
	svc := NewDashboardService(newFakeStore(), nil)

	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.True(t, summary.TotalSpent.IsZero())
	assert.Equal(t, 0, summary.TransactionCount)
	assert.Empty(t, summary.Categories)
}
