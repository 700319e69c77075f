// Package view renders the notes client on a line oriented terminal.
package view

import (
	"bufio"
	"context"
	"fmt"
	"github.com/ribgsilva/note-app/business/v1/client"
	"github.com/ribgsilva/note-app/business/v1/note"
	"io"
	"strconv"
	"strings"
	"sync"
)

const prompt = "notes> "

const usage = `Commands
	list			- Reload the notes
	select N		- Edit note number N of the list
	title TEXT		- Set the title field
	content TEXT		- Set the content field
	show			- Print the fields and the selected note
	save			- Save the fields (update the selected note or create one)
	delete			- Delete the selected note
	new			- Create a placeholder note
	help			- Print the commands available
	quit			- Leave`

// TraceFunc wraps the execution of a command, end is called once it is done
type TraceFunc func(ctx context.Context, command string) (traced context.Context, end func())

// Terminal holds the list and the form fields and implements client.View
type Terminal struct {
	out   io.Writer
	trace TraceFunc

	mu             sync.Mutex
	notes          []note.Note
	title, content string
}

// New returns a Terminal writing to out. A nil trace runs commands untraced.
func New(out io.Writer, trace TraceFunc) *Terminal {
	if trace == nil {
		trace = func(ctx context.Context, _ string) (context.Context, func()) {
			return ctx, func() {}
		}
	}
	return &Terminal{out: out, trace: trace}
}

func (t *Terminal) RenderList(notes []note.Note) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.notes = append(t.notes[:0], notes...)
	if len(notes) == 0 {
		fmt.Fprintln(t.out, "(no notes)")
		return
	}
	for i, n := range notes {
		fmt.Fprintf(t.out, "%3d. %s\n", i+1, n.Title)
	}
}

func (t *Terminal) SetFields(title, content string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.title, t.content = title, content
}

func (t *Terminal) Fields() (string, string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.title, t.content
}

func (t *Terminal) Notify(message string) {
	fmt.Fprintf(t.out, "! %s\n", message)
}

// Run loads the notes then executes the commands read from in until quit or EOF.
// Operation errors are not printed: refused actions were notified and failed requests logged by the client.
func (t *Terminal) Run(ctx context.Context, in io.Reader, c *client.Client) error {
	t.exec(ctx, c, "list", "")

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(t.out, prompt)

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(t.out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(t.out)
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			line = strings.TrimSpace(l)
		}

		if line == "" {
			continue
		}
		command, arg, _ := strings.Cut(line, " ")
		if command == "quit" || command == "exit" {
			return nil
		}
		t.exec(ctx, c, command, strings.TrimSpace(arg))
	}
}

func (t *Terminal) exec(ctx context.Context, c *client.Client, command, arg string) {
	ctx, end := t.trace(ctx, command)
	defer end()

	switch command {
	case "list":
		_ = c.Load(ctx)
	case "select":
		n, ok := t.item(arg)
		if !ok {
			fmt.Fprintf(t.out, "no note number %q\n", arg)
			return
		}
		c.Select(n)
		t.show(c)
	case "title":
		t.mu.Lock()
		t.title = arg
		t.mu.Unlock()
	case "content":
		t.mu.Lock()
		t.content = arg
		t.mu.Unlock()
	case "show":
		t.show(c)
	case "save":
		_ = c.Save(ctx)
	case "delete":
		_ = c.Delete(ctx)
	case "new":
		_ = c.CreateNew(ctx)
	case "help":
		fmt.Fprintln(t.out, usage)
	default:
		fmt.Fprintf(t.out, "unknown command %q\n", command)
		fmt.Fprintln(t.out, usage)
	}
}

func (t *Terminal) item(arg string) (note.Note, bool) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return note.Note{}, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if i < 1 || i > len(t.notes) {
		return note.Note{}, false
	}
	return t.notes[i-1], true
}

func (t *Terminal) show(c *client.Client) {
	title, content := t.Fields()
	if id, ok := c.Selected(); ok {
		fmt.Fprintf(t.out, "note %d\n", id)
	} else {
		fmt.Fprintln(t.out, "new note")
	}
	fmt.Fprintf(t.out, "title: %s\ncontent: %s\n", title, content)
}
