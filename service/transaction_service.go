package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pzhefer/wealthflow/dto"
	"github.com/pzhefer/wealthflow/store"
)

// TransactionService persists transactions a user has reviewed and approved.
type TransactionService struct {
	store store.TransactionStore
}

func NewTransactionService(txnStore store.TransactionStore) *TransactionService {
	return &TransactionService{store: txnStore}
}

// Create validates and persists an approved transaction.
func (s *TransactionService) Create(req *dto.CreateTransactionRequest) (*dto.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	txn := &dto.Transaction{
		ID:        uuid.NewString(),
		Merchant:  req.Merchant,
		Amount:    req.Amount,
		Date:      req.Date,
		Category:  req.Category,
		Notes:     req.Notes,
		ImagePath: req.ImagePath,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Save(txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"id":       txn.ID,
		"merchant": txn.Merchant,
		"amount":   txn.Amount.String(),
	}).Info("transaction created")

	return txn, nil
}

func (s *TransactionService) Get(id string) (*dto.Transaction, error) {
	return s.store.Get(id)
}

func (s *TransactionService) List() ([]*dto.Transaction, error) {
	return s.store.List()
}

func (s *TransactionService) Delete(id string) error {
	return s.store.Delete(id)
}
