package commands

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"bookstore/internal/database"
	"bookstore/internal/middleware"
	"bookstore/internal/server"
	"bookstore/internal/services"
	"bookstore/pkg/rabbitmq"

	"github.com/spf13/cobra"
)

const limiterSweepInterval = time.Minute

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API. The schema is migrated and the book formats are seeded
before the server accepts requests. When RABBITMQ_URL is set, domain events
are published to the configured exchange and logged by a consumer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// A nil interface, not a nil *rabbitmq.Client, disables publication.
	var events services.Publisher
	if cfg.EventsEnabled() {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.Events.RabbitMQURL,
			Exchange: cfg.Events.Exchange,
			Queue:    cfg.Events.Queue,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		defer mqClient.Close()
		events = mqClient

		if err := mqClient.ConsumeEvents(rabbitmq.LogEvent); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	} else {
		log.Println("RABBITMQ_URL not set, domain events are disabled")
	}

	srv := server.New(cfg, db, events)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sweepLimiter(ctx, srv.Limiter)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s", cfg.HTTP.Port)
		errCh <- srv.App.Listen(cfg.HTTP.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	if err := srv.App.ShutdownWithTimeout(cfg.HTTP.ShutdownTimeout); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
	return nil
}

func sweepLimiter(ctx context.Context, limiter *middleware.RateLimiter) {
	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Sweep()
		}
	}
}
