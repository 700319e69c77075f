// Package rest is the http client of the notes api.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ribgsilva/note-app/business/v1/note"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// StatusError is returned when the api answers with a non 2xx status
type StatusError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.Status, e.Body)
}

// errMissingID means a create response did not carry the assigned id
var errMissingID = errors.New("created note has no id")

// Notes talks to the collection endpoint (eg http://localhost:8080/api/notes) and its per note endpoints
type Notes struct {
	base *url.URL
	http *http.Client
}

// New returns a Notes for the collection endpoint baseURL. A nil hc uses http.DefaultClient.
func New(baseURL string, hc *http.Client) (*Notes, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("api url %q must be absolute", baseURL)
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Notes{base: base, http: hc}, nil
}

// List returns every note in the order of the api
func (n *Notes) List(ctx context.Context) ([]note.Note, error) {
	var notes []note.Note
	if err := n.do(ctx, http.MethodGet, n.base.String(), nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Create posts newN and returns the note created by the api
func (n *Notes) Create(ctx context.Context, newN note.NewNote) (note.Note, error) {
	var created note.Note
	if err := n.do(ctx, http.MethodPost, n.base.String(), newN, &created); err != nil {
		return note.Note{}, err
	}
	if !created.Persisted() {
		return note.Note{}, errMissingID
	}
	return created, nil
}

// Update puts upd on the endpoint of upd.Id, the response body is ignored
func (n *Notes) Update(ctx context.Context, upd note.UpdateNote) error {
	return n.do(ctx, http.MethodPut, n.noteURL(upd.Id), upd, nil)
}

// Delete removes the note id
func (n *Notes) Delete(ctx context.Context, id uint64) error {
	return n.do(ctx, http.MethodDelete, n.noteURL(id), nil, nil)
}

func (n *Notes) noteURL(id uint64) string {
	return n.base.JoinPath(strconv.FormatUint(id, 10)).String()
}

func (n *Notes) do(ctx context.Context, method, target string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, target, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, target, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{Method: method, URL: target, Status: resp.StatusCode, Body: string(bytes.TrimSpace(msg))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, target, err)
	}
	return nil
}
