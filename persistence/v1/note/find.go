package note

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/note-app/sys"
	"strings"
)

// Find returns the note with the given id, reading through the cache.
// A zero Note and no error means it does not exist.
func Find(ctx context.Context, id uint64) (Note, error) {
	logger := sys.R.Log
	cache := sys.R.Cache
	db := sys.R.Database

	key := fmt.Sprintf(noteKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := cache.Get(tcCtx, key).Result()
	if err != nil && err != redis.Nil {
		logger.Error("failure to get note ", id, " from cache: ", err.Error())
	}
	if get != "" {
		var note Note
		if err := json.Unmarshal([]byte(get), &note); err != nil {
			logger.Errorf("error parsing cached response for key %s: %s", key, err)
		} else {
			return note, nil
		}
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT "+columns+" FROM notes WHERE id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer stmt.Close()

	note, err := scan(stmt.QueryRowContext(dbCtx, id))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, nil
	case err != nil:
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	}

	if data, err := json.Marshal(note); err != nil {
		logger.Errorf("error parsing data to cache for key %s: %s", key, err)
	} else {
		setCtx, setCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
		defer setCancel()

		if err := cache.Set(setCtx, key, string(data), sys.Configs.Cache.CacheTTL).Err(); err != nil {
			logger.Error("failure to set note ", id, " into cache: ", err.Error())
		}
	}

	return note, nil
}

// FindAll returns every note ordered by id
func FindAll(ctx context.Context) ([]Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	rows, err := db.QueryContext(dbCtx, "SELECT "+columns+" FROM notes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query find all: %w", err)
	}
	defer rows.Close()

	notes := make([]Note, 0)
	for rows.Next() {
		n, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate find all: %w", err)
	}

	return notes, nil
}

// TitleTaken reports if a note other than exceptID already uses title, ignoring case
func TitleTaken(ctx context.Context, title string, exceptID uint64) (bool, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	rows, err := db.QueryContext(dbCtx, "SELECT id, title FROM notes")
	if err != nil {
		return false, fmt.Errorf("failed to query titles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uint64
		var t string
		if err := rows.Scan(&id, &t); err != nil {
			return false, fmt.Errorf("error parsing db data: %w", err)
		}
		if id != exceptID && strings.EqualFold(t, title) {
			return true, nil
		}
	}

	return false, rows.Err()
}
