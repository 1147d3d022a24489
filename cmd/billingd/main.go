package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/plumline/billingd/pkg/api"
	"github.com/plumline/billingd/pkg/billing"
	"github.com/plumline/billingd/pkg/config"
	"github.com/plumline/billingd/pkg/middleware"
	"github.com/plumline/billingd/pkg/observability"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		log.SetLevel(level)
	}

	db, dialect, err := openDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := billing.EnsureSchema(ctx, db, dialect); err != nil {
		cancel()
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	cancel()
	log.WithField("driver", cfg.Database.Driver).Info("database ready")

	service := billing.NewSQLService(db, dialect)
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	health := observability.NewHealthChecker(db)

	server := api.NewServer(service, middleware.AcceptAnyChecker{}, log, health, metrics)

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      server,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("billingd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Shutdown error: %v", err)
	}
}

// openDatabase opens the configured relational store and verifies the
// connection
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, billing.Dialect, error) {
	switch cfg.Driver {
	case "sqlite3":
		db, err := sql.Open("sqlite3", cfg.SQLitePath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return db, billing.DialectSQLite, nil

	case "postgres":
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			return nil, "", fmt.Errorf("failed to connect to postgres: %w", err)
		}

		db.SetMaxOpenConns(cfg.PostgresMaxConns)
		db.SetMaxIdleConns(cfg.PostgresMinConns)
		db.SetConnMaxLifetime(1 * time.Hour)
		db.SetConnMaxIdleTime(10 * time.Minute)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.PostgresTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, "", fmt.Errorf("failed to ping postgres: %w", err)
		}
		return db, billing.DialectPostgres, nil
	}

	return nil, "", fmt.Errorf("unsupported database driver: %s", cfg.Driver)
}
