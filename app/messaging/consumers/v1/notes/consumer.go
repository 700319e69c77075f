package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ribgsilva/note-app/business/v1/note"
	"github.com/ribgsilva/note-app/sys"
	"gocloud.dev/pubsub"
	"sync"
)

// Consume receives note events from sub until ctx is done, handling at most maxWorkers at a time.
// Every message is acked, events that cannot be applied are only logged.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	workers := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- struct{}{}
		wg.Add(1)
		go func(m *pubsub.Message) {
			defer wg.Done()
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %s", string(m.Body))
			if err := Handle(ctx, m.Body); err != nil {
				logger.Errorw("handle message", "body", string(m.Body), "ERROR", err)
			}
		}(message)
	}

	wg.Wait()

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// Handle applies one json encoded note.Event
func Handle(ctx context.Context, body []byte) error {
	var e note.Event
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}

	data, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("failed to read event data: %w", err)
	}

	switch e.Type {
	case note.EventCreate:
		var c note.NewNote
		if err := json.Unmarshal(data, &c); err != nil {
			return fmt.Errorf("failed to parse create data: %w", err)
		}
		created, err := note.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("failed to create %+v: %w", c, err)
		}
		sys.R.Log.Infow("create note", "id", created.Id)
	case note.EventUpdate:
		var u note.UpdateNote
		if err := json.Unmarshal(data, &u); err != nil {
			return fmt.Errorf("failed to parse update data: %w", err)
		}
		if _, err := note.Update(ctx, u.Id, u); err != nil {
			return fmt.Errorf("failed to update %+v: %w", u, err)
		}
		sys.R.Log.Infow("update note", "id", u.Id)
	case note.EventDelete:
		var d struct {
			Id uint64 `json:"id"`
		}
		if err := json.Unmarshal(data, &d); err != nil {
			return fmt.Errorf("failed to parse delete data: %w", err)
		}
		if err := note.Delete(ctx, d.Id); err != nil {
			return fmt.Errorf("failed to delete %d: %w", d.Id, err)
		}
		sys.R.Log.Infow("delete note", "id", d.Id)
	default:
		return fmt.Errorf("unknown event type: %q", e.Type)
	}
	return nil
}
