// README: Saved itinerary store backed by PostgreSQL.
package archive

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, it *SavedItinerary) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO saved_itineraries (
			id, session_id, filename, content, created_at
		) VALUES ($1, $2, $3, $4, $5)`,
		it.ID,
		it.SessionID,
		it.Filename,
		it.Content,
		it.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id string) (*SavedItinerary, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, session_id, filename, content, created_at
		FROM saved_itineraries
		WHERE id = $1`, id,
	)

	var it SavedItinerary
	err := row.Scan(&it.ID, &it.SessionID, &it.Filename, &it.Content, &it.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *Store) ListBySession(ctx context.Context, sessionID string) ([]SavedItinerary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, session_id, filename, content, created_at
		FROM saved_itineraries
		WHERE session_id = $1
		ORDER BY created_at`, sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedItinerary
	for rows.Next() {
		var it SavedItinerary
		if err := rows.Scan(&it.ID, &it.SessionID, &it.Filename, &it.Content, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
