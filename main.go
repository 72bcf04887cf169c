// File: primerentals/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"primerentals/catalog"
	"primerentals/config"
	"primerentals/handlers"
	"primerentals/routes"
	"primerentals/services/rental"
	"primerentals/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Build the equipment catalog. The built-in catalog is used unless a
	// catalog file is configured.
	cat := catalog.Default()
	if path := config.AppConfig.CatalogFile; path != "" {
		var err error
		cat, err = catalog.LoadFile(path)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to load catalog file: %v", err)
		}
		logger.Sugar().Infof("main: loaded %d catalog items from %s", cat.Len(), path)
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// services.
	toolService := rental.NewToolService(cat, config.AppConfig.Currency, config.AppConfig.DeliveryFee)

	// handlers.
	toolHandler := handlers.NewToolHandler(toolService, logger)
	catalogHandler := handlers.NewCatalogHandler(cat, config.AppConfig.Currency)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CheckAvailability: toolHandler.CheckAvailability,
		GetPrice:          toolHandler.GetPrice,
		CalculatePrice:    toolHandler.CalculatePrice,
		CreateBooking:     toolHandler.CreateBooking,
		HumanHandoff:      toolHandler.HumanHandoff,
		ListCatalog:       catalogHandler.ListCatalog,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.APIKey)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
