package note

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	titleMin   = 3
	titleMax   = 100
	contentMin = 5
	contentMax = 500
)

// Validate checks title and content lengths, returning a *ValidationError
func Validate(title, content string) error {
	fields := make(map[string]string)
	if msg := checkLength(title, titleMin, titleMax); msg != "" {
		fields["title"] = msg
	}
	if msg := checkLength(content, contentMin, contentMax); msg != "" {
		fields["content"] = msg
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func checkLength(value string, min, max int) string {
	if strings.TrimSpace(value) == "" {
		return "must not be blank"
	}
	if n := utf8.RuneCountInString(value); n < min || n > max {
		return fmt.Sprintf("must have between %d and %d characters", min, max)
	}
	return ""
}
