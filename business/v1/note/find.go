package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-app/persistence/v1/note"
)

// Find returns the note with the given id or ErrNotFound
func Find(ctx context.Context, id uint64) (Note, error) {
	find, err := note.Find(ctx, id)
	if err != nil {
		return Note{}, err
	}
	if find.Id == 0 {
		return Note{}, fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	return Note(find), nil
}

// List returns every note in id order
func List(ctx context.Context) ([]Note, error) {
	all, err := note.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	notes := make([]Note, 0, len(all))
	for _, n := range all {
		notes = append(notes, Note(n))
	}
	return notes, nil
}
