package models

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	sqlitecloud "github.com/sqlitecloud/sqlitecloud-go"
)

// Upstream bodies can be large HTML error pages; only the head is kept.
const maxStoredBodyLen = 4096

// Database stores gateway failure diagnostics in SQLite Cloud
type Database struct {
	db *sqlitecloud.SQCloud
}

// NewDatabase creates a new database connection
func NewDatabase(dsn string) (*Database, error) {
	log.Printf("Connecting to SQLite Cloud database: %s", maskConnectionString(dsn))

	db, err := sqlitecloud.Connect(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite Cloud: %w", err)
	}

	database := &Database{
		db: db,
	}

	if err := database.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	return database, nil
}

// maskConnectionString hides the API key in logs for security
func maskConnectionString(connStr string) string {
	if strings.Contains(connStr, "apikey=") {
		parts := strings.Split(connStr, "apikey=")
		if len(parts) > 1 {
			return parts[0] + "apikey=***"
		}
	}
	return connStr
}

func (d *Database) createTables() error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS gateway_failures (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			request_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			op TEXT NOT NULL,
			status INTEGER NOT NULL DEFAULT 0,
			message TEXT NOT NULL,
			upstream_body TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_gateway_failures_kind ON gateway_failures(kind)`,
	}

	for _, table := range tables {
		if err := d.db.Execute(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// RecordFailure stores one failure record.
// The driver has no context support, so ctx is only checked before the write.
func (d *Database) RecordFailure(ctx context.Context, rec FailureRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	sql := `INSERT INTO gateway_failures (request_id, kind, op, status, message, upstream_body, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`

	args := []interface{}{
		rec.RequestID,
		rec.Kind,
		rec.Op,
		rec.Status,
		rec.Message,
		truncate(rec.UpstreamBody, maxStoredBodyLen),
		rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if err := d.db.ExecuteArray(sql, args); err != nil {
		return fmt.Errorf("failed to store failure record: %w", err)
	}
	return nil
}

// Close closes the database connection
func (d *Database) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
