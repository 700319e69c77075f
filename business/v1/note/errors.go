package note

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when no note has the requested id
	ErrNotFound = errors.New("note not found")

	// ErrTitleTaken is returned when another note already uses the title
	ErrTitleTaken = errors.New("note with this title already exists")
)

// ValidationError lists the invalid fields of a request and why
type ValidationError struct {
	Fields map[string]string
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v.Fields[k]))
	}
	return "invalid note: " + strings.Join(parts, ", ")
}
