package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-app/sys"
	"time"
)

// Update replaces title and content of the note with the given id.
// It returns false when no note has that id.
func Update(ctx context.Context, id uint64, upd NewNote) (bool, error) {
	db := sys.R.Database

	n := time.Now().UTC().Truncate(time.Second)

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "UPDATE notes SET title = ?, content = ?, updatedAt = ? WHERE id = ?")
	if err != nil {
		return false, fmt.Errorf("failed to prepare update stmt: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(dbCtx, upd.Title, upd.Content, n.Format(timestampLayout), id)
	if err != nil {
		return false, fmt.Errorf("failed to exec update stmt: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read updated rows: %w", err)
	}

	evict(ctx, id)
	return affected > 0, nil
}
