package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pzhefer/wealthflow/dto"
	"github.com/pzhefer/wealthflow/service"
	"github.com/pzhefer/wealthflow/utils"
)

type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
	}
}

// ScanReceipt handles POST /receipts/scan: multipart image or PDF upload.
func (h *ReceiptHandler) ScanReceipt(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "SCAN_FAILED", "file is required", err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "SCAN_FAILED", "failed to open uploaded file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "SCAN_FAILED", "failed to read uploaded file", err)
		return
	}

	response, err := h.receiptService.ScanReceipt(data, fileHeader.Filename)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "SCAN_FAILED", "failed to scan receipt", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ScanText handles POST /receipts/scan-text: the caller already holds OCR
// provider output and only wants the extraction.
func (h *ReceiptHandler) ScanText(c *gin.Context) {
	var req dto.ScanTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "SCAN_FAILED", "invalid request body", err)
		return
	}

	extraction, err := h.receiptService.ScanText(req.Text)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, utils.ErrBadAmountCapture) {
			// Pattern/parser mismatch inside the engine; surfaced, never masked.
			logrus.WithError(err).Error("extraction invariant violation")
		}
		h.sendError(c, status, "EXTRACTION_FAILED", "failed to extract receipt data", err)
		return
	}

	c.JSON(http.StatusOK, extraction)
}

func (h *ReceiptHandler) sendError(c *gin.Context, statusCode int, code, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		logrus.WithError(err).Warn(message)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   code,
		Message: errorMsg,
		Code:    statusCode,
	})
}
