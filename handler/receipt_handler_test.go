package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzhefer/wealthflow/dto"
	"github.com/pzhefer/wealthflow/service"
)

func newScanTextRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReceiptHandler(service.NewReceiptService(nil, nil, nil))
	router := gin.New()
	router.POST("/receipts/scan-text", h.ScanText)
	return router
}

func TestScanTextEndpoint(t *testing.T) {
	router := newScanTextRouter()

	body := `{"text": "STARBUCKS\n03/14/2024\nTOTAL: $4.50"}`
	req := httptest.NewRequest(http.MethodPost, "/receipts/scan-text", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var extraction dto.ReceiptExtraction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &extraction))

	require.NotNil(t, extraction.Merchant)
	assert.Equal(t, "STARBUCKS", *extraction.Merchant)
	require.NotNil(t, extraction.Amount)
	assert.Equal(t, "4.5", extraction.Amount.String())
	require.NotNil(t, extraction.Category)
	assert.Equal(t, "Dining", *extraction.Category)
	assert.Equal(t, 1.0, extraction.Confidence)
}

func TestScanTextEndpointEmptyText(t *testing.T) {
	router := newScanTextRouter()

	req := httptest.NewRequest(http.MethodPost, "/receipts/scan-text", strings.NewReader(`{"text": ""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var extraction dto.ReceiptExtraction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &extraction))
	assert.Nil(t, extraction.Merchant)
	assert.Equal(t, 0.0, extraction.Confidence)
	assert.NotNil(t, extraction.Items)
}

func TestScanTextEndpointBadBody(t *testing.T) {
	router := newScanTextRouter()

	req := httptest.NewRequest(http.MethodPost, "/receipts/scan-text", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "SCAN_FAILED", errResp.Error)
}
