package note

import "time"

// Note is a persisted note. Id is assigned by the api, zero means not persisted.
type Note struct {
	Id        uint64    `json:"id,omitempty" example:"1"`
	Title     string    `json:"title" example:"my note"`
	Content   string    `json:"content" example:"my note content"`
	UpdatedAt time.Time `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

// Persisted reports if the note carries an api assigned id
func (n Note) Persisted() bool {
	return n.Id != 0
}

// NewNote is the body of a create request
type NewNote struct {
	Title   string `json:"title" example:"my note"`
	Content string `json:"content" example:"my note content"`
}

// UpdateNote is the body of an update request
type UpdateNote struct {
	Id      uint64 `json:"id" example:"1"`
	Title   string `json:"title" example:"my note"`
	Content string `json:"content" example:"my note content"`
}

// Event is a note change received through messaging
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Event types
const (
	EventCreate = "create"
	EventUpdate = "update"
	EventDelete = "delete"
)
