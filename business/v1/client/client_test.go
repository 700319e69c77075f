package client

import (
	"context"
	"errors"
	"github.com/ribgsilva/note-app/business/v1/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"testing"
)

type call struct {
	method string
	body   any
}

type fakeAPI struct {
	notes   []note.Note
	created note.Note
	calls   []call

	listErr, createErr, updateErr, deleteErr error
}

func (f *fakeAPI) List(ctx context.Context) ([]note.Note, error) {
	f.calls = append(f.calls, call{method: "GET"})
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]note.Note(nil), f.notes...), nil
}

func (f *fakeAPI) Create(ctx context.Context, newN note.NewNote) (note.Note, error) {
	f.calls = append(f.calls, call{method: "POST", body: newN})
	if f.createErr != nil {
		return note.Note{}, f.createErr
	}
	f.notes = append(f.notes, f.created)
	return f.created, nil
}

func (f *fakeAPI) Update(ctx context.Context, upd note.UpdateNote) error {
	f.calls = append(f.calls, call{method: "PUT", body: upd})
	return f.updateErr
}

func (f *fakeAPI) Delete(ctx context.Context, id uint64) error {
	f.calls = append(f.calls, call{method: "DELETE", body: id})
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.notes[:0]
	for _, n := range f.notes {
		if n.Id != id {
			kept = append(kept, n)
		}
	}
	f.notes = kept
	return nil
}

func (f *fakeAPI) methods() []string {
	m := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		m = append(m, c.method)
	}
	return m
}

type fakeView struct {
	list           []string
	title, content string
	notices        []string
}

func (v *fakeView) RenderList(notes []note.Note) {
	v.list = v.list[:0]
	for _, n := range notes {
		v.list = append(v.list, n.Title)
	}
}

func (v *fakeView) SetFields(title, content string) { v.title, v.content = title, content }

func (v *fakeView) Fields() (string, string) { return v.title, v.content }

func (v *fakeView) Notify(message string) { v.notices = append(v.notices, message) }

func setup(api *fakeAPI) (*Client, *fakeView, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	view := &fakeView{}
	return New(api, view, zap.New(core).Sugar()), view, logs
}

var (
	noteA = note.Note{Id: 1, Title: "A", Content: "a content"}
	noteB = note.Note{Id: 2, Title: "B", Content: "b content"}
	noteC = note.Note{Id: 3, Title: "C", Content: "c content"}
)

func TestLoadReplacesList(t *testing.T) {
	api := &fakeAPI{notes: []note.Note{noteA, noteB, noteC}}
	c, view, _ := setup(api)
	view.list = []string{"stale"}

	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, []string{"A", "B", "C"}, view.list)
	assert.Equal(t, "A", view.title)
	assert.Equal(t, "a content", view.content)
	id, ok := c.Selected()
	assert.True(t, ok)
	assert.EqualValues(t, 1, id)
}

func TestLoadEmptyClearsSelection(t *testing.T) {
	api := &fakeAPI{}
	c, view, _ := setup(api)
	c.Select(noteB)

	require.NoError(t, c.Load(context.Background()))

	assert.Empty(t, view.list)
	assert.Empty(t, view.title)
	assert.Empty(t, view.content)
	_, ok := c.Selected()
	assert.False(t, ok)

	err := c.Delete(context.Background())
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, []string{MsgNoSelected}, view.notices)
}

func TestSelectIsLocal(t *testing.T) {
	api := &fakeAPI{}
	c, view, _ := setup(api)

	c.Select(noteC)

	assert.Empty(t, api.calls)
	assert.Equal(t, "C", view.title)
	assert.Equal(t, "c content", view.content)
	id, _ := c.Selected()
	assert.EqualValues(t, 3, id)
}

func TestSaveCreates(t *testing.T) {
	created := note.Note{Id: 7, Title: "T", Content: "C"}
	api := &fakeAPI{notes: []note.Note{noteA}, created: created}
	c, view, _ := setup(api)
	view.SetFields("  T ", "C\n")

	require.NoError(t, c.Save(context.Background()))

	require.Equal(t, []string{"POST", "GET"}, api.methods())
	assert.Equal(t, note.NewNote{Title: "T", Content: "C"}, api.calls[0].body)
	assert.Equal(t, []string{MsgCreated}, view.notices)
	assert.Equal(t, []string{"A", "T"}, view.list)

	id, ok := c.Selected()
	assert.True(t, ok)
	assert.EqualValues(t, 7, id)
	assert.Equal(t, "T", view.title)
}

func TestSaveUpdates(t *testing.T) {
	edited := note.Note{Id: 7, Title: "T", Content: "C"}
	api := &fakeAPI{notes: []note.Note{noteA, edited}}
	c, view, _ := setup(api)
	c.Select(edited)
	view.SetFields("T2", "C2")

	require.NoError(t, c.Save(context.Background()))

	require.Equal(t, []string{"PUT", "GET"}, api.methods())
	assert.Equal(t, note.UpdateNote{Id: 7, Title: "T2", Content: "C2"}, api.calls[0].body)
	assert.Equal(t, []string{MsgUpdated}, view.notices)

	// the reload selects the first note, not the edited one
	id, _ := c.Selected()
	assert.EqualValues(t, 1, id)
}

func TestSaveRequiresFields(t *testing.T) {
	tests := []struct {
		name           string
		title, content string
	}{
		{name: "empty title", title: "", content: "C"},
		{name: "blank content", title: "T", content: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			c, view, _ := setup(api)
			view.SetFields(tt.title, tt.content)

			err := c.Save(context.Background())

			assert.ErrorIs(t, err, ErrEmptyFields)
			assert.Empty(t, api.calls)
			assert.Equal(t, []string{MsgFillFields}, view.notices)
		})
	}
}

func TestSaveFailureKeepsState(t *testing.T) {
	boom := errors.New("boom")
	api := &fakeAPI{updateErr: boom}
	c, view, logs := setup(api)
	c.Select(noteB)
	view.SetFields("B2", "edited")

	err := c.Save(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"PUT"}, api.methods())
	assert.Empty(t, view.notices)
	assert.Equal(t, "B2", view.title)
	id, _ := c.Selected()
	assert.EqualValues(t, 2, id)
	assert.Equal(t, 1, logs.FilterMessage("update note").Len())
}

func TestSaveCreateFailureKeepsState(t *testing.T) {
	boom := errors.New("boom")
	api := &fakeAPI{createErr: boom}
	c, view, logs := setup(api)
	view.SetFields("Fresh", "fresh content")

	err := c.Save(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"POST"}, api.methods())
	assert.Empty(t, view.notices)
	assert.Equal(t, "Fresh", view.title)
	assert.Equal(t, "fresh content", view.content)
	_, ok := c.Selected()
	assert.False(t, ok)

	created := logs.FilterMessage("create note")
	require.Equal(t, 1, created.Len())
	assert.Equal(t, zapcore.ErrorLevel, created.All()[0].Level)
}

func TestSaveUpdatesNoteWithZeroID(t *testing.T) {
	zero := note.Note{Id: 0, Title: "Z", Content: "zero content"}
	api := &fakeAPI{notes: []note.Note{zero}}
	c, view, _ := setup(api)
	c.Select(zero)
	view.SetFields("Z2", "zero edited")

	require.NoError(t, c.Save(context.Background()))

	require.Equal(t, []string{"PUT", "GET"}, api.methods())
	assert.Equal(t, note.UpdateNote{Id: 0, Title: "Z2", Content: "zero edited"}, api.calls[0].body)
}

func TestDelete(t *testing.T) {
	target := note.Note{Id: 7, Title: "T", Content: "C"}
	api := &fakeAPI{notes: []note.Note{target}}
	c, view, _ := setup(api)
	c.Select(target)

	require.NoError(t, c.Delete(context.Background()))

	require.Equal(t, []string{"DELETE", "GET"}, api.methods())
	assert.EqualValues(t, 7, api.calls[0].body)
	assert.Equal(t, []string{MsgDeleted}, view.notices)
	assert.Empty(t, view.title)
	assert.Empty(t, view.content)
	_, ok := c.Selected()
	assert.False(t, ok)
}

func TestDeleteRequiresSelection(t *testing.T) {
	api := &fakeAPI{}
	c, view, _ := setup(api)

	assert.ErrorIs(t, c.Delete(context.Background()), ErrNoSelection)
	assert.Empty(t, api.calls)
	assert.Equal(t, []string{MsgNoSelected}, view.notices)
}

func TestDeleteFailureKeepsSelection(t *testing.T) {
	boom := errors.New("boom")
	api := &fakeAPI{deleteErr: boom}
	c, view, logs := setup(api)
	c.Select(noteA)

	assert.ErrorIs(t, c.Delete(context.Background()), boom)

	assert.Equal(t, []string{"DELETE"}, api.methods())
	assert.Empty(t, view.notices)
	assert.Equal(t, "A", view.title)
	id, ok := c.Selected()
	assert.True(t, ok)
	assert.EqualValues(t, 1, id)
	assert.Equal(t, 1, logs.FilterMessage("delete note").Len())
}

func TestLoadFailureKeepsState(t *testing.T) {
	api := &fakeAPI{notes: []note.Note{noteA, noteB}}
	c, view, logs := setup(api)
	require.NoError(t, c.Load(context.Background()))
	c.Select(noteB)

	api.listErr = errors.New("connection refused")
	err := c.Load(context.Background())

	assert.Error(t, err)
	assert.Equal(t, []string{"A", "B"}, view.list)
	assert.Equal(t, "B", view.title)
	id, _ := c.Selected()
	assert.EqualValues(t, 2, id)

	entries := logs.FilterMessage("load notes").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}

func TestCreateNew(t *testing.T) {
	created := note.Note{Id: 9, Title: PlaceholderTitle, Content: PlaceholderContent}
	api := &fakeAPI{notes: []note.Note{noteA}, created: created}
	c, view, _ := setup(api)

	require.NoError(t, c.CreateNew(context.Background()))

	require.Equal(t, []string{"POST", "GET"}, api.methods())
	assert.Equal(t, note.NewNote{Title: PlaceholderTitle, Content: PlaceholderContent}, api.calls[0].body)
	assert.Equal(t, []string{"A", PlaceholderTitle}, view.list)
	assert.Equal(t, PlaceholderTitle, view.title)
	id, _ := c.Selected()
	assert.EqualValues(t, 9, id)
}

func TestCreateNewFailure(t *testing.T) {
	api := &fakeAPI{createErr: errors.New("500 Internal Server Error")}
	c, view, logs := setup(api)

	assert.Error(t, c.CreateNew(context.Background()))
	assert.Equal(t, []string{"POST"}, api.methods())
	assert.Empty(t, view.list)
	_, ok := c.Selected()
	assert.False(t, ok)
	assert.Equal(t, 1, logs.FilterMessage("create new note").Len())
}

func TestCreatedStaysSelectedWhenReloadFails(t *testing.T) {
	created := note.Note{Id: 4, Title: "T", Content: "C"}
	api := &fakeAPI{created: created, listErr: errors.New("timeout")}
	c, view, _ := setup(api)
	view.SetFields("T", "C")

	assert.Error(t, c.Save(context.Background()))

	id, ok := c.Selected()
	assert.True(t, ok)
	assert.EqualValues(t, 4, id)
	assert.Equal(t, []string{MsgCreated}, view.notices)
}
