package note

import "time"

const noteKey = "notes.%d"

const columns = "id, title, content, updatedAt, createdAt"

// timestampLayout formats TIMESTAMP arguments with an explicit offset, both mysql and ramsql parse it
const timestampLayout = "2006-01-02T15:04:05-07:00"

type Note struct {
	Id        uint64
	Title     string
	Content   string
	UpdatedAt time.Time
	CreatedAt time.Time
}

type NewNote struct {
	Title   string
	Content string
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (Note, error) {
	var n Note
	if err := row.Scan(&n.Id, &n.Title, &n.Content, &n.UpdatedAt, &n.CreatedAt); err != nil {
		return Note{}, err
	}
	return n, nil
}
