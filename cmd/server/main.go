/*
main.go - HTTP server entry point

PURPOSE:
  Serves the attendance analyzer over HTTP for frontend tooling.
  One roster per server process; POST /api/reset starts a new session.

STARTUP SEQUENCE:
  1. Load optional .env, parse command-line flags
  2. Create the handler (empty roster)
  3. Configure the chi router
  4. Start the server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080, or PORT from the environment)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/warp/attendance-engine/api"
)

func main() {
	_ = godotenv.Load()

	defaultPort := 8080
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			defaultPort = n
		}
	}
	port := flag.Int("port", defaultPort, "HTTP server port")
	flag.Parse()

	handler := api.NewHandler()
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("attendance analyzer listening on http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("stopped")
}
