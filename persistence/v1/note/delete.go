package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-app/sys"
)

// Delete removes the note with the given id. It returns false when no note has that id.
func Delete(ctx context.Context, id uint64) (bool, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "DELETE FROM notes WHERE id = ?")
	if err != nil {
		return false, fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(dbCtx, id)
	if err != nil {
		return false, fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read deleted rows: %w", err)
	}

	evict(ctx, id)
	return affected > 0, nil
}

func evict(ctx context.Context, id uint64) {
	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := sys.R.Cache.Del(tcCtx, fmt.Sprintf(noteKey, id)).Err(); err != nil {
		sys.R.Log.Error("failure to evict note ", id, " from cache: ", err.Error())
	}
}
