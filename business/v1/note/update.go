package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-app/persistence/v1/note"
)

// Update replaces title and content of the note id. The id in upd is ignored.
func Update(ctx context.Context, id uint64, upd UpdateNote) (Note, error) {
	if err := Validate(upd.Title, upd.Content); err != nil {
		return Note{}, err
	}

	taken, err := note.TitleTaken(ctx, upd.Title, id)
	if err != nil {
		return Note{}, err
	}
	if taken {
		return Note{}, fmt.Errorf("title %q: %w", upd.Title, ErrTitleTaken)
	}

	found, err := note.Update(ctx, id, note.NewNote{Title: upd.Title, Content: upd.Content})
	if err != nil {
		return Note{}, err
	}
	if !found {
		return Note{}, fmt.Errorf("note %d: %w", id, ErrNotFound)
	}

	return Find(ctx, id)
}
