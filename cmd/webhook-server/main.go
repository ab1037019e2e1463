/**
 * @description
 * This is the entry point for the webhook server: a small HTTP service that
 * registers its own public URL as the Monobank webhook on startup and then
 * receives pushed statement events.
 *
 * Key features:
 * - Loads configuration from environment variables or a local .env file.
 * - Registers {WEBHOOK_BASE_URL}/{token} through the API client on startup.
 * - Optionally relays received statement events to RabbitMQ.
 * - Graceful shutdown that closes the client and the broker connection.
 *
 * @dependencies
 * - github.com/go-chi/chi/v5: HTTP routing (inside internal/api).
 * - github.com/joho/godotenv: .env loading for local development.
 */
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/monobank-go/monobank/internal/api"
	"github.com/monobank-go/monobank/internal/config"
	"github.com/monobank-go/monobank/pkg/monoclient"
	"github.com/monobank-go/monobank/pkg/rabbitmq"
)

func main() {
	// Load .env file for local development.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	if cfg.MonobankToken == "" {
		log.Fatal("MONOBANK_TOKEN is required")
	}
	if cfg.WebhookBaseURL == "" {
		log.Fatal("WEBHOOK_BASE_URL is required")
	}

	client, err := monoclient.NewPersonalClient(cfg.MonobankToken)
	if err != nil {
		log.Fatalf("invalid token: %v", err)
	}
	defer client.Close()

	var publisher api.EventPublisher
	if cfg.RabbitMQURL != "" {
		producer, err := rabbitmq.NewProducer(cfg.RabbitMQURL, cfg.StatementExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer producer.Close()
		publisher = producer
		log.Println("RabbitMQ producer connected")
	}

	handler := api.NewWebhookHandler(cfg.MonobankToken, publisher)
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: api.WebhookRoutes(handler),
	}

	go func() {
		log.Printf("Webhook server listening on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Register the webhook once the listener is up. The API validates the
	// URL with a GET probe before accepting it.
	registerCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := client.SetWebhook(registerCtx, cfg.WebhookBaseURL+"/"+cfg.MonobankToken); err != nil {
		log.Printf("Failed to register webhook: %v", err)
	} else {
		log.Println("Webhook registered")
	}
	cancel()

	// Wait for a termination signal, then drain in-flight deliveries.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
}
