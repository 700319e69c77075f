package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-app/persistence/v1/note"
)

// Create validates and stores a new note, the returned note carries its id
func Create(ctx context.Context, newN NewNote) (Note, error) {
	if err := Validate(newN.Title, newN.Content); err != nil {
		return Note{}, err
	}

	taken, err := note.TitleTaken(ctx, newN.Title, 0)
	if err != nil {
		return Note{}, err
	}
	if taken {
		return Note{}, fmt.Errorf("title %q: %w", newN.Title, ErrTitleTaken)
	}

	created, err := note.Insert(ctx, note.NewNote(newN))
	if err != nil {
		return Note{}, err
	}
	return Note(created), nil
}
