package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-app/persistence/v1/note"
)

// Delete removes the note id or returns ErrNotFound
func Delete(ctx context.Context, id uint64) error {
	found, err := note.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	return nil
}
