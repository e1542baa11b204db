package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pzhefer/wealthflow/client"
	"github.com/pzhefer/wealthflow/dto"
	"github.com/pzhefer/wealthflow/storage"
	"github.com/pzhefer/wealthflow/utils"
)

// OCRClient turns receipt image bytes into raw text plus a provider
// confidence score.
type OCRClient interface {
	ExtractTextFromImage(data []byte, filename string) (string, float64, error)
}

// ReceiptService runs the scan pipeline: persist the upload, obtain raw text
// from the OCR boundary, and hand it to the extraction engine.
type ReceiptService struct {
	ocr     OCRClient
	pdf     PDFProcessor
	storage storage.Storage
}

func NewReceiptService(ocr OCRClient, pdf PDFProcessor, store storage.Storage) *ReceiptService {
	return &ReceiptService{
		ocr:     ocr,
		pdf:     pdf,
		storage: store,
	}
}

// ScanReceipt processes an uploaded receipt image or PDF and returns a
// transaction draft for review. Sparse extractions are not errors; the
// caller sees whatever fields could be recovered plus the confidence score.
func (s *ReceiptService) ScanReceipt(data []byte, filename string) (*dto.ScanResponse, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	draftID := uuid.NewString()

	storedPath, err := s.storage.Save(draftID+ext, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store receipt image: %w", err)
	}

	var text string
	var ocrConf float64
	if ext == ".pdf" {
		text, ocrConf, err = s.scanPDF(data)
	} else {
		text, ocrConf, err = s.ocr.ExtractTextFromImage(data, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("OCR failed for %s: %w", filename, err)
	}

	extraction, err := utils.ExtractReceipt(utils.NormalizeOCRText(text))
	if err != nil {
		return nil, err
	}

	qrRef := ""
	if ext != ".pdf" {
		if img, _, derr := image.Decode(bytes.NewReader(data)); derr == nil {
			if ref, qerr := client.DecodeReceiptQR(img); qerr == nil {
				qrRef = ref
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"draft_id":   draftID,
		"filename":   filename,
		"confidence": extraction.Confidence,
		"items":      len(extraction.Items),
	}).Info("receipt scanned")

	return &dto.ScanResponse{
		DraftID:       draftID,
		Extraction:    extraction,
		OCRConfidence: ocrConf,
		QRReference:   qrRef,
		ImagePath:     storedPath,
		ProcessedAt:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// scanPDF prefers the embedded text layer; scanned PDFs fall back to OCR
// over each extracted page image.
func (s *ReceiptService) scanPDF(data []byte) (string, float64, error) {
	text, err := s.pdf.ExtractText(data)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, 0, nil
	}

	images, imgErr := s.pdf.ExtractImages(data)
	if imgErr != nil {
		return "", 0, fmt.Errorf("pdf has no usable text layer and image extraction failed: %w", imgErr)
	}

	var pages []string
	var confSum float64
	var confCount int
	for i, img := range images {
		buf := new(bytes.Buffer)
		if err := png.Encode(buf, img); err != nil {
			logrus.Warnf("failed to encode pdf page image %d: %v", i+1, err)
			continue
		}
		pageText, conf, err := s.ocr.ExtractTextFromImage(buf.Bytes(), fmt.Sprintf("page-%d.png", i+1))
		if err != nil {
			logrus.Warnf("OCR failed on pdf page image %d: %v", i+1, err)
			continue
		}
		pages = append(pages, pageText)
		confSum += conf
		confCount++
	}
	if len(pages) == 0 {
		return "", 0, fmt.Errorf("no text could be recovered from pdf")
	}

	avg := 0.0
	if confCount > 0 {
		avg = confSum / float64(confCount)
	}
	return strings.Join(pages, "\n"), avg, nil
}

// ScanText runs extraction over OCR provider output the caller already has.
func (s *ReceiptService) ScanText(raw string) (dto.ReceiptExtraction, error) {
	return utils.ExtractReceipt(utils.NormalizeOCRText(raw))
}
