package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-app/sys"
	"time"
)

// Insert stores a new note and returns it with the id assigned by the database
func Insert(ctx context.Context, newN NewNote) (Note, error) {
	db := sys.R.Database

	n := time.Now().UTC().Truncate(time.Second)

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "INSERT INTO notes (title, content, updatedAt, createdAt) VALUES (?, ?, ?, ?)")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(dbCtx, newN.Title, newN.Content, n.Format(timestampLayout), n.Format(timestampLayout))
	if err != nil {
		return Note{}, fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Note{}, fmt.Errorf("failed to read inserted id: %w", err)
	}

	return Note{
		Id:        uint64(id),
		Title:     newN.Title,
		Content:   newN.Content,
		UpdatedAt: n,
		CreatedAt: n,
	}, nil
}
