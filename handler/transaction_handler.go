package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pzhefer/wealthflow/dto"
	"github.com/pzhefer/wealthflow/service"
)

type TransactionHandler struct {
	transactionService *service.TransactionService
}

func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Create handles POST /transactions.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	txn, err := h.transactionService.Create(&req)
	if err != nil {
		if errors.Is(err, dto.ErrMerchantRequired) || errors.Is(err, dto.ErrAmountNotPositive) {
			h.sendError(c, http.StatusBadRequest, "validation failed", err)
			return
		}
		h.sendError(c, http.StatusInternalServerError, "failed to create transaction", err)
		return
	}

	c.JSON(http.StatusCreated, txn)
}

// List handles GET /transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	txns, err := h.transactionService.List()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "failed to list transactions", err)
		return
	}
	c.JSON(http.StatusOK, txns)
}

// Get handles GET /transactions/:id.
func (h *TransactionHandler) Get(c *gin.Context) {
	txn, err := h.transactionService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, dto.ErrTransactionNotFound) {
			h.sendError(c, http.StatusNotFound, "transaction not found", err)
			return
		}
		h.sendError(c, http.StatusInternalServerError, "failed to fetch transaction", err)
		return
	}
	c.JSON(http.StatusOK, txn)
}

// Delete handles DELETE /transactions/:id.
func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.transactionService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, dto.ErrTransactionNotFound) {
			h.sendError(c, http.StatusNotFound, "transaction not found", err)
			return
		}
		h.sendError(c, http.StatusInternalServerError, "failed to delete transaction", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TransactionHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		logrus.WithError(err).Warn(message)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "TRANSACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
