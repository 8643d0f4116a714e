package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/clubcompass/clubcompass/internal/quiz"
)

// SaveResult caches the latest quiz result locally so the result view can
// restore it after the in-memory copy is gone.
func (s *Store) SaveResult(ctx context.Context, result *quiz.Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quiz_result (id, payload, created_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			payload = excluded.payload,
			created_at = excluded.created_at`,
		string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// LastResult returns the cached quiz result, or nil if none is stored.
func (s *Store) LastResult(ctx context.Context) (*quiz.Result, error) {
	row := s.db.QueryRowContext(ctx, `SELECT payload FROM quiz_result WHERE id = 1`)

	var payload string
	err := row.Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result quiz.Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("decode cached result: %w", err)
	}
	return &result, nil
}

// ClearResult drops the cached quiz result.
func (s *Store) ClearResult(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM quiz_result WHERE id = 1`)
	return err
}
