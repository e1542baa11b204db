package client

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// VisionClient calls a remote OCR microservice over HTTP for deployments
// without a local Tesseract installation. Image bytes are base64-encoded
// into the request body.
type VisionClient struct {
	baseURL string
	http    *http.Client
}

func NewVisionClient(baseURL string) *VisionClient {
	return &VisionClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

type visionRequest struct {
	Image    string `json:"image"`
	Filename string `json:"filename"`
}

type visionResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Error      string  `json:"error,omitempty"`
}

// ExtractTextFromImage sends the image to the OCR service and returns the
// recognized text and the service's confidence score.
func (vc *VisionClient) ExtractTextFromImage(data []byte, filename string) (string, float64, error) {
	payload, err := json.Marshal(visionRequest{
		Image:    base64.StdEncoding.EncodeToString(data),
		Filename: filename,
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to encode OCR request: %w", err)
	}

	resp, err := vc.http.Post(vc.baseURL+"/ocr", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", 0, fmt.Errorf("OCR service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("OCR service returned status %d", resp.StatusCode)
	}

	var result visionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", 0, fmt.Errorf("failed to decode OCR response: %w", err)
	}
	if result.Error != "" {
		return "", 0, fmt.Errorf("OCR service error: %s", result.Error)
	}

	logrus.WithFields(logrus.Fields{
		"filename":   filename,
		"confidence": result.Confidence,
		"chars":      len(result.Text),
	}).Debug("vision OCR completed")

	return result.Text, result.Confidence, nil
}
