package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pzhefer/wealthflow/client"
	"github.com/pzhefer/wealthflow/config"
	"github.com/pzhefer/wealthflow/handler"
	"github.com/pzhefer/wealthflow/middleware"
	"github.com/pzhefer/wealthflow/service"
	"github.com/pzhefer/wealthflow/storage"
	"github.com/pzhefer/wealthflow/store"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.LoadConfig()

	// Storage backend for uploaded receipt images
	var receiptStorage storage.Storage
	switch cfg.StorageBackend {
	case "gcs":
		gcsStorage, err := storage.NewGCSStorage(context.Background(), cfg.GCSBucket)
		if err != nil {
			logrus.Fatalf("Failed to initialize GCS storage: %v", err)
		}
		defer gcsStorage.Close()
		receiptStorage = gcsStorage
	default:
		localStorage, err := storage.NewLocalStorage(cfg.StoragePath)
		if err != nil {
			logrus.Fatalf("Failed to initialize local storage: %v", err)
		}
		receiptStorage = localStorage
	}

	// Transaction database
	txnStore, err := store.NewBoltStore(cfg.DatabasePath)
	if err != nil {
		logrus.Fatalf("Failed to open transaction store: %v", err)
	}
	defer txnStore.Close()

	// OCR provider
	var ocrClient service.OCRClient
	switch cfg.OCRProvider {
	case "vision":
		ocrClient = client.NewVisionClient(cfg.VisionServiceURL)
	default:
		tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
		defer tesseractClient.Close()
		ocrClient = tesseractClient
	}

	// Service layer
	receiptService := service.NewReceiptService(ocrClient, service.NewPDFProcessor(), receiptStorage)
	transactionService := service.NewTransactionService(txnStore)
	dashboardService := service.NewDashboardService(txnStore, cfg.CategoryBudgets)

	// Handler layer
	receiptHandler := handler.NewReceiptHandler(receiptService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Setup Gin router
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "WealthFlow Receipt Scanner",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.BearerAuth(cfg.APIToken))
	{
		receipts := api.Group("/receipts")
		{
			receipts.POST("/scan", receiptHandler.ScanReceipt)
			receipts.POST("/scan-text", receiptHandler.ScanText)
		}

		transactions := api.Group("/transactions")
		{
			transactions.POST("", transactionHandler.Create)
			transactions.GET("", transactionHandler.List)
			transactions.GET("/:id", transactionHandler.Get)
			transactions.DELETE("/:id", transactionHandler.Delete)
		}

		api.GET("/dashboard", dashboardHandler.Summary)
	}

	logrus.Infof("Starting WealthFlow Receipt Scanner on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
