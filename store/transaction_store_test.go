package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzhefer/wealthflow/dto"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBoltStoreSaveGet(t *testing.T) {
	s := newTestStore(t)

	txn := &dto.Transaction{
		ID:        "txn-1",
		Merchant:  "STARBUCKS",
		Amount:    decimal.RequireFromString("9.77"),
		Date:      "03/14/2024",
		Category:  "Dining",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.Save(txn))

	got, err := s.Get("txn-1")
	require.NoError(t, err)
	assert.Equal(t, "STARBUCKS", got.Merchant)
	assert.True(t, got.Amount.Equal(txn.Amount))
	assert.Equal(t, "Dining", got.Category)
}

func TestBoltStoreGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get("nope")
	assert.ErrorIs(t, err, dto.ErrTransactionNotFound)
}

func TestBoltStoreListNewestFirst(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Save(&dto.Transaction{
			ID:        id,
			Merchant:  "TARGET",
			Amount:    decimal.New(int64(i+1), 0),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	txns, err := s.List()
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, "c", txns[0].ID)
	assert.Equal(t, "b", txns[1].ID)
	assert.Equal(t, "a", txns[2].ID)
}

func TestBoltStoreDelete(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save(&dto.Transaction{ID: "txn-1", Merchant: "CVS"}))
	require.NoError(t, s.Delete("txn-1"))
	assert.ErrorIs(t, s.Delete("txn-1"), dto.ErrTransactionNotFound)
}
