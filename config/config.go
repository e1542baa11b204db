package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerPort        string
	APIToken          string
	OCRProvider       string // "tesseract" or "vision"
	TesseractDataPath string
	VisionServiceURL  string
	StorageBackend    string // "local" or "gcs"
	StoragePath       string
	GCSBucket         string
	DatabasePath      string
	MaxFileSize       int64
	CategoryBudgets   map[string]decimal.Decimal
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err == nil {
		logrus.Debug("loaded environment from .env")
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		APIToken:          os.Getenv("API_TOKEN"),
		OCRProvider:       getEnv("OCR_PROVIDER", "tesseract"),
		TesseractDataPath: getEnv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/"),
		VisionServiceURL:  getEnv("VISION_SERVICE_URL", "http://localhost:8866"),
		StorageBackend:    getEnv("STORAGE_BACKEND", "local"),
		StoragePath:       getEnv("STORAGE_PATH", "./receipts"),
		GCSBucket:         os.Getenv("GCS_BUCKET"),
		DatabasePath:      getEnv("DATABASE_PATH", "./wealthflow.db"),
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
		CategoryBudgets:   parseBudgets(os.Getenv("CATEGORY_BUDGETS")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseBudgets reads "Dining=300,Groceries=600" style pairs. Malformed
// entries are logged and skipped.
func parseBudgets(raw string) map[string]decimal.Decimal {
	budgets := make(map[string]decimal.Decimal)
	if raw == "" {
		return budgets
	}
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 {
			logrus.Warnf("skipping malformed budget entry %q", pair)
			continue
		}
		limit, err := decimal.NewFromString(parts[1])
		if err != nil || !limit.IsPositive() {
			logrus.Warnf("skipping budget entry %q: not a positive amount", pair)
			continue
		}
		budgets[parts[0]] = limit
	}
	return budgets
}
