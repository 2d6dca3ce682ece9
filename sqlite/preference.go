package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/docsite"
)

// Compile-time interface verification.
var _ docsite.PreferenceService = (*PreferenceService)(nil)

// PreferenceService implements docsite.PreferenceService using SQLite.
type PreferenceService struct {
	db *DB
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(db *DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// FindTheme returns the stored theme for clientID, or docsite.DefaultTheme.
func (s *PreferenceService) FindTheme(ctx context.Context, clientID string) (docsite.Theme, error) {
	var theme string
	err := s.db.QueryRowContext(ctx, `
		SELECT theme FROM preferences WHERE client_id = ?
	`, clientID).Scan(&theme)

	if errors.Is(err, sql.ErrNoRows) {
		return docsite.DefaultTheme, nil
	}
	if err != nil {
		return "", err
	}

	if t := docsite.Theme(theme); t.Valid() {
		return t, nil
	}
	return docsite.DefaultTheme, nil
}

// SetTheme stores theme for clientID, replacing any previous value.
func (s *PreferenceService) SetTheme(ctx context.Context, clientID string, theme docsite.Theme) error {
	if clientID == "" {
		return docsite.Errorf(docsite.EINVALID, "client id required")
	}
	if !theme.Valid() {
		return docsite.Errorf(docsite.EINVALID, "unsupported theme %q", theme)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (client_id, theme, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(client_id) DO UPDATE SET theme = excluded.theme, updated_at = excluded.updated_at
	`, clientID, string(theme), time.Now().UTC().Format(time.RFC3339))
	return err
}
