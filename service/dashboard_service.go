package service

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pzhefer/wealthflow/dto"
	"github.com/pzhefer/wealthflow/store"
)

// Transactions without a category land here on the dashboard.
const uncategorized = "Uncategorized"

// DashboardService aggregates stored transactions into spending totals and
// budget utilization.
type DashboardService struct {
	store   store.TransactionStore
	budgets map[string]decimal.Decimal
}

func NewDashboardService(txnStore store.TransactionStore, budgets map[string]decimal.Decimal) *DashboardService {
	if budgets == nil {
		budgets = map[string]decimal.Decimal{}
	}
	return &DashboardService{store: txnStore, budgets: budgets}
}

// Summary sums all stored transactions overall and per category. Categories
// with a configured budget appear even when nothing was spent in them.
func (s *DashboardService) Summary() (*dto.DashboardSummary, error) {
	txns, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	totalSpent := decimal.Zero
	for _, txn := range txns {
		category := txn.Category
		if category == "" {
			category = uncategorized
		}
		totals[category] = totals[category].Add(txn.Amount)
		totalSpent = totalSpent.Add(txn.Amount)
	}
	for category := range s.budgets {
		if _, ok := totals[category]; !ok {
			totals[category] = decimal.Zero
		}
	}

	categories := make([]dto.CategorySpend, 0, len(totals))
	for category, total := range totals {
		budget := s.budgets[category]
		utilization := 0.0
		if budget.IsPositive() {
			utilization = total.Div(budget).InexactFloat64()
		}
		categories = append(categories, dto.CategorySpend{
			Category:    category,
			Total:       total,
			Budget:      budget,
			Utilization: utilization,
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})

	return &dto.DashboardSummary{
		TotalSpent:       totalSpent,
		TransactionCount: len(txns),
		Categories:       categories,
	}, nil
}
