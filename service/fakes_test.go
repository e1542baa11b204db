package service

import (
	"errors"
	"image"
	"sort"

	"github.com/pzhefer/wealthflow/dto"
)

// fakeStore is an in-memory TransactionStore for service tests.
type fakeStore struct {
	txns map[string]*dto.Transaction
}

func newFakeStore() *fakeStore {
	return &fakeStore{txns: make(map[string]*dto.Transaction)}
}

func (f *fakeStore) Save(txn *dto.Transaction) error {
	f.txns[txn.ID] = txn
	return nil
}

func (f *fakeStore) Get(id string) (*dto.Transaction, error) {
	txn, ok := f.txns[id]
	if !ok {
		return nil, dto.ErrTransactionNotFound
	}
	return txn, nil
}

func (f *fakeStore) List() ([]*dto.Transaction, error) {
	var out []*dto.Transaction
	for _, txn := range f.txns {
		out = append(out, txn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) Delete(id string) error {
	if _, ok := f.txns[id]; !ok {
		return dto.ErrTransactionNotFound
	}
	delete(f.txns, id)
	return nil
}

func (f *fakeStore) Close() error { return nil }

// fakeOCR returns canned text instead of calling Tesseract.
type fakeOCR struct {
	text       string
	confidence float64
	err        error
}

func (f *fakeOCR) ExtractTextFromImage(data []byte, filename string) (string, float64, error) {
	return f.text, f.confidence, f.err
}

// fakePDF returns a canned text layer.
type fakePDF struct {
	text string
	err  error
}

func (f *fakePDF) ExtractText(pdfData []byte) (string, error) {
	return f.text, f.err
}

func (f *fakePDF) ExtractImages(pdfData []byte) ([]image.Image, error) {
	return nil, errors.New("no images")
}
