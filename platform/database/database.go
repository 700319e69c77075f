// Package database opens the sql connection pool.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Open opens a pool for driver and pings it within pingTimeout
func Open(ctx context.Context, driver, url string, pingTimeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, pingTimeout)
	defer dbCancel()
	if err := db.PingContext(dbCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	return db, nil
}
