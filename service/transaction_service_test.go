package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzhefer/wealthflow/dto"
)

func TestTransactionServiceCreate(t *testing.T) {
	svc := NewTransactionService(newFakeStore())

	txn, err := svc.Create(&dto.CreateTransactionRequest{
		Merchant: "STARBUCKS",
		Amount:   decimal.RequireFromString("9.77"),
		Date:     "03/14/2024",
		Category: "Dining",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, txn.ID)
	assert.Equal(t, "STARBUCKS", txn.Merchant)
	assert.Equal(t, "9.77", txn.Amount.String())
	assert.False(t, txn.CreatedAt.IsZero())

	stored, err := svc.Get(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txn.ID, stored.ID)
}

func TestTransactionServiceCreateValidation(t *testing.T) {
	svc := NewTransactionService(newFakeStore())

	_, err := svc.Create(&dto.CreateTransactionRequest{
		Amount: decimal.RequireFromString("5.00"),
	})
	assert.ErrorIs(t, err, dto.ErrMerchantRequired)

	_, err = svc.Create(&dto.CreateTransactionRequest{
		Merchant: "STARBUCKS",
		Amount:   decimal.RequireFromString("-5.00"),
	})
	assert.ErrorIs(t, err, dto.ErrAmountNotPositive)

	_, err = svc.Create(&dto.CreateTransactionRequest{Merchant: "STARBUCKS"})
	assert.ErrorIs(t, err, dto.ErrAmountNotPositive)
}

func TestTransactionServiceDelete(t *testing.T) {
	svc := NewTransactionService(newFakeStore())

	txn, err := svc.Create(&dto.CreateTransactionRequest{
		Merchant: "TARGET",
		Amount:   decimal.RequireFromString("25.00"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(txn.ID))
	assert.ErrorIs(t, svc.Delete(txn.ID), dto.ErrTransactionNotFound)

	_, err = svc.Get(txn.ID)
	assert.ErrorIs(t, err, dto.ErrTransactionNotFound)
}
