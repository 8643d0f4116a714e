package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/clubcompass/clubcompass/internal/api"
)

// Credential is a saved sign-in: the bearer token plus the account it
// belongs to, so the UI can greet the user without a network round trip.
type Credential struct {
	Token   string
	User    api.User
	SavedAt time.Time
}

// SaveCredential stores the session credential, replacing any previous one.
func (s *Store) SaveCredential(ctx context.Context, token string, user api.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credential (id, token, user_id, user_name, user_email, user_role, verified, saved_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			user_id = excluded.user_id,
			user_name = excluded.user_name,
			user_email = excluded.user_email,
			user_role = excluded.user_role,
			verified = excluded.verified,
			saved_at = excluded.saved_at`,
		token, user.ID, user.Name, user.Email, user.Role, user.Verified,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Credential returns the saved sign-in, or nil if signed out.
func (s *Store) Credential(ctx context.Context) (*Credential, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT token, user_id, user_name, user_email, user_role, verified, saved_at
		FROM credential WHERE id = 1`)

	var c Credential
	var savedAt string
	err := row.Scan(&c.Token, &c.User.ID, &c.User.Name, &c.User.Email, &c.User.Role, &c.User.Verified, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if t, perr := time.Parse(time.RFC3339, savedAt); perr == nil {
		c.SavedAt = t
	}
	return &c, nil
}

// ClearCredential signs the user out locally.
func (s *Store) ClearCredential(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credential WHERE id = 1`)
	return err
}
