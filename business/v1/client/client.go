// Package client keeps a user's edit session in sync with the notes api.
//
// A Client owns the selected note id and drives a View (the note list and the
// title and content fields). Every operation performs at most one mutating
// request followed by a reload of the list. Operations are not serialized:
// callers may run them concurrently and the last response to arrive wins.
package client

import (
	"context"
	"errors"
	"fmt"
	"github.com/ribgsilva/note-app/business/v1/note"
	"go.uber.org/zap"
	"strings"
	"sync"
)

// API is the notes REST api as seen by the client
type API interface {
	List(ctx context.Context) ([]note.Note, error)
	Create(ctx context.Context, newN note.NewNote) (note.Note, error)
	Update(ctx context.Context, upd note.UpdateNote) error
	Delete(ctx context.Context, id uint64) error
}

// View is what the user sees and edits
type View interface {
	// RenderList replaces the visible list, one selectable item per note
	RenderList(notes []note.Note)
	SetFields(title, content string)
	Fields() (title, content string)
	// Notify tells the user about a success or a refused action
	Notify(message string)
}

var (
	// ErrEmptyFields is returned by Save when title or content is blank
	ErrEmptyFields = errors.New("title and content must not be empty")

	// ErrNoSelection is returned by Delete when no note is selected
	ErrNoSelection = errors.New("no note selected")
)

// Placeholder values of a note created by CreateNew
const (
	PlaceholderTitle   = "New note"
	PlaceholderContent = "Enter text..."
)

// Messages shown through View.Notify
const (
	MsgFillFields = "Fill in the title and the text before saving!"
	MsgUpdated    = "Note updated!"
	MsgCreated    = "New note created!"
	MsgNoSelected = "Select a note to delete!"
	MsgDeleted    = "Note deleted!"
)

// Client drives a View from the notes api and remembers which note is selected
type Client struct {
	api  API
	view View
	log  *zap.SugaredLogger

	mu         sync.Mutex
	selected   uint64
	isSelected bool
}

// New returns a Client with nothing selected. Failed requests are logged on log.
func New(api API, view View, log *zap.SugaredLogger) *Client {
	return &Client{
		api:  api,
		view: view,
		log:  log,
	}
}

// Selected returns the id of the selected note
func (c *Client) Selected() (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected, c.isSelected
}

// Load replaces the list with the notes of the api and selects the first one,
// or clears the selection when there are none. On failure nothing changes.
func (c *Client) Load(ctx context.Context) error {
	notes, err := c.api.List(ctx)
	if err != nil {
		c.log.Errorw("load notes", "ERROR", err)
		return fmt.Errorf("load notes: %w", err)
	}

	c.view.RenderList(notes)
	if len(notes) > 0 {
		c.Select(notes[0])
		return nil
	}
	c.clear()
	return nil
}

// Select makes n the edited note
func (c *Client) Select(n note.Note) {
	c.mu.Lock()
	c.selected, c.isSelected = n.Id, true
	c.mu.Unlock()

	c.view.SetFields(n.Title, n.Content)
}

// Save updates the selected note with the field values, or creates a new note
// from them when nothing is selected. A created note stays selected after the reload.
func (c *Client) Save(ctx context.Context) error {
	title, content := c.view.Fields()
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if title == "" || content == "" {
		c.view.Notify(MsgFillFields)
		return ErrEmptyFields
	}

	if id, ok := c.Selected(); ok {
		upd := note.UpdateNote{Id: id, Title: title, Content: content}
		if err := c.api.Update(ctx, upd); err != nil {
			c.log.Errorw("update note", "id", id, "ERROR", err)
			return fmt.Errorf("update note %d: %w", id, err)
		}
		c.view.Notify(MsgUpdated)
		return c.Load(ctx)
	}

	created, err := c.api.Create(ctx, note.NewNote{Title: title, Content: content})
	if err != nil {
		c.log.Errorw("create note", "ERROR", err)
		return fmt.Errorf("create note: %w", err)
	}
	c.view.Notify(MsgCreated)
	return c.reloadAndSelect(ctx, created)
}

// Delete removes the selected note. Selection and fields are cleared only once
// the api confirmed the deletion.
func (c *Client) Delete(ctx context.Context) error {
	id, ok := c.Selected()
	if !ok {
		c.view.Notify(MsgNoSelected)
		return ErrNoSelection
	}

	if err := c.api.Delete(ctx, id); err != nil {
		c.log.Errorw("delete note", "id", id, "ERROR", err)
		return fmt.Errorf("delete note %d: %w", id, err)
	}

	c.view.Notify(MsgDeleted)
	c.clear()
	return c.Load(ctx)
}

// CreateNew creates a placeholder note and selects it once the list is reloaded
func (c *Client) CreateNew(ctx context.Context) error {
	created, err := c.api.Create(ctx, note.NewNote{Title: PlaceholderTitle, Content: PlaceholderContent})
	if err != nil {
		c.log.Errorw("create new note", "ERROR", err)
		return fmt.Errorf("create new note: %w", err)
	}
	c.log.Infow("create new note", "id", created.Id)
	return c.reloadAndSelect(ctx, created)
}

// reloadAndSelect selects created even when the reload fails, it exists on the api either way.
func (c *Client) reloadAndSelect(ctx context.Context, created note.Note) error {
	err := c.Load(ctx)
	c.Select(created)
	return err
}

func (c *Client) clear() {
	c.mu.Lock()
	c.selected, c.isSelected = 0, false
	c.mu.Unlock()

	c.view.SetFields("", "")
}
