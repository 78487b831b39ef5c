package simddb

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"simdshare.ubdc.ac.uk/internal/appconf"
	"simdshare.ubdc.ac.uk/internal/logging"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed schema.sql
var ddl string

// Client wraps the SQLite mirror of the zones table.
type Client struct {
	config        Config
	DB            *sql.DB
	logger        *slog.Logger
	importRuntime atomic.Int64
}

// NewClient opens the database and applies the schema.
func NewClient(config Config, logger *slog.Logger) (*Client, error) {
	logger = logging.ForComponent(logger, "simddb")

	db, err := createDB(config)
	if err != nil {
		return nil, err
	}

	if config.verbose {
		logging.LogOperation(logger, "zone_database_created",
			slog.String("path", config.DBPath))
	}

	return &Client{
		config: config,
		DB:     db,
		logger: logger,
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

func createDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && !config.inMemory() {
		return nil, errors.New("test database must use in-memory storage, got " + config.DBPath)
	}

	path := config.DBPath
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Each connection to ":memory:" is a separate database.
	if config.inMemory() {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
	}
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := performDatabaseMigration(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error performing database migration: %w", err)
	}

	return db, nil
}

func performDatabaseMigration(ctx context.Context, db *sql.DB) error {
	statements := strings.Split(ddl, "-- migrate")
	for _, stmt := range statements {
		trimmedStmt := strings.TrimSpace(stmt)
		if trimmedStmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, trimmedStmt); err != nil {
			return fmt.Errorf("error executing DDL statement [%s]: %w", trimmedStmt, err)
		}
	}
	return nil
}

// ImportRuntime reports how long the last ImportTable took.
func (c *Client) ImportRuntime() time.Duration {
	return time.Duration(c.importRuntime.Load())
}
