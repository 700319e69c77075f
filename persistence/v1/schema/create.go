package schema

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-app/sys"
)

// Create creates the notes table
func Create(ctx context.Context) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	if _, err := db.ExecContext(dbCtx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}
