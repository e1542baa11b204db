package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"github.com/pzhefer/wealthflow/dto"
)

const transactionBucket = "transactions"

// TransactionStore defines the interface for transaction persistence.
type TransactionStore interface {
	// Save persists a transaction.
	Save(txn *dto.Transaction) error

	// Get retrieves a transaction by ID.
	Get(id string) (*dto.Transaction, error)

	// List returns all transactions, newest first.
	List() ([]*dto.Transaction, error)

	// Delete removes a transaction.
	Delete(id string) error

	// Close closes the underlying database.
	Close() error
}

// BoltStore implements TransactionStore using bbolt.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(transactionBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (b *BoltStore) Save(txn *dto.Transaction) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(txn)
		if err != nil {
			return fmt.Errorf("marshaling transaction: %w", err)
		}
		return tx.Bucket([]byte(transactionBucket)).Put([]byte(txn.ID), data)
	})
}

func (b *BoltStore) Get(id string) (*dto.Transaction, error) {
	var txn *dto.Transaction
	err := b.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(transactionBucket)).Get([]byte(id))
		if data == nil {
			return dto.ErrTransactionNotFound
		}
		txn = &dto.Transaction{}
		return json.Unmarshal(data, txn)
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (b *BoltStore) List() ([]*dto.Transaction, error) {
	var txns []*dto.Transaction
	err := b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(transactionBucket)).ForEach(func(_, v []byte) error {
			var txn dto.Transaction
			if err := json.Unmarshal(v, &txn); err != nil {
				return fmt.Errorf("unmarshaling transaction: %w", err)
			}
			txns = append(txns, &txn)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(txns, func(i, j int) bool {
		return txns[i].CreatedAt.After(txns[j].CreatedAt)
	})
	return txns, nil
}

func (b *BoltStore) Delete(id string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(transactionBucket))
		if bucket.Get([]byte(id)) == nil {
			return dto.ErrTransactionNotFound
		}
		return bucket.Delete([]byte(id))
	})
}

func (b *BoltStore) Close() error {
	return b.db.Close()
}
