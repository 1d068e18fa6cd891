// Package main implements the tic-tac-toe API server with optional analysis
// persistence and web UI serving.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tictactoe/internal/service"
	"tictactoe/internal/storage"
	"tictactoe/internal/transport/http"
	"tictactoe/internal/webserver"
)

const (
	gracefulShutdownTimeout = time.Second * 5
)

func main() {
	// Command-line flags
	var (
		// API server flags
		apiHost     = flag.String("api-host", "localhost", "API server host")
		apiPort     = flag.Int("api-port", 8080, "API server port")
		dev         = flag.Bool("dev", false, "Development mode (relaxed rate limits)")
		storagePath = flag.String("storage-path", "", "Path to SQLite database file (disables analysis persistence if empty)")

		// Web UI server flags
		serve   = flag.Bool("serve", false, "Enable web UI server")
		webHost = flag.String("web-host", "localhost", "Web UI server host")
		webPort = flag.Int("web-port", 9090, "Web UI server port")
	)
	flag.Parse()

	// 1. Initialize Storage (optional)
	var store *storage.Store
	if *storagePath != "" {
		log.Printf("Initializing analysis storage at: %s", *storagePath)
		var err error
		store, err = storage.NewStore(*storagePath, *dev)
		if err != nil {
			log.Fatalf("Failed to initialize storage: %v", err)
		}
		if err := store.InitDB(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
	} else {
		log.Printf("Analysis storage disabled (use -storage-path to enable)")
	}

	// 2. Initialize the Service with optional storage
	svc, err := service.New(store)
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}

	// 3. Initialize the Fiber App/HTTP Handler
	app := http.NewFiberApp(svc, *dev)

	// API Server configuration
	apiAddr := fmt.Sprintf("%s:%d", *apiHost, *apiPort)

	// Start API server in a goroutine
	go func() {
		log.Printf("Tic-Tac-Toe API Server starting...")
		log.Printf("API Listening on: http://%s", apiAddr)
		log.Printf("API Version: v1")
		if *dev {
			log.Printf("Rate Limit: 50 requests/second per IP (DEV MODE)")
		} else {
			log.Printf("Rate Limit: 5 requests/second per IP")
		}
		if *storagePath != "" {
			log.Printf("Storage: Enabled (%s)", *storagePath)
		} else {
			log.Printf("Storage: Disabled (analysis history unavailable)")
		}
		log.Printf("API Endpoints: http://%s/api/v1/games", apiAddr)
		log.Printf("Analysis Endpoints: http://%s/api/v1/analysis", apiAddr)
		log.Printf("Health: http://%s/health", apiAddr)

		if err := app.Listen(apiAddr); err != nil {
			log.Printf("API server listen error: %v", err)
		}
	}()

	// 4. Start Web UI server (optional)
	if *serve {
		webAddr := fmt.Sprintf("%s:%d", *webHost, *webPort)
		apiURL := fmt.Sprintf("http://%s", apiAddr)

		go func() {
			log.Printf("Web UI Server starting...")
			log.Printf("Web UI Listening on: http://%s", webAddr)
			log.Printf("Web UI API target: %s", apiURL)

			if err := webserver.Start(*webHost, *webPort, apiURL); err != nil {
				log.Printf("Web UI server error: %v", err)
			}
		}()
	}

	// Wait for an interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down servers...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer shutdownCancel()

	// Graceful shutdown of HTTP server with timeout
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Service close drains the storage write queue
	if err := svc.Close(); err != nil {
		log.Printf("Service shutdown error: %v", err)
	}

	log.Println("Servers exited")
}
