package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/biaslens/biaslens/internal/core"
	"github.com/biaslens/biaslens/internal/di"
	"github.com/biaslens/biaslens/internal/factory"
	"github.com/biaslens/biaslens/internal/ports"
	"go.uber.org/zap"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	transport ports.Transport,
	chatRegistry *factory.ChatRegistry,
	cacheRepo core.CacheRepository,
) error {
	defer logger.Sync()

	// Start the HTTP server
	if err := transport.Start(); err != nil {
		logger.Fatal("Failed to start HTTP server", zap.Error(err))
		return err
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Shutting down...")

	// Stop the HTTP server
	if err := transport.Stop(); err != nil {
		logger.Error("Failed to stop HTTP server", zap.Error(err))
	}

	// Close chat provider clients
	if err := chatRegistry.Close(); err != nil {
		logger.Error("Failed to close chat clients", zap.Error(err))
	}

	// Stop the cache if needed
	if stopper, ok := cacheRepo.(interface{ Stop() }); ok {
		stopper.Stop()
	}

	logger.Info("Shutdown complete")
	return nil
}
