// README: Archive service; persists finished itineraries to disk and database.
package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Service saves itineraries. The file write is authoritative; the database
// row is an index over it and is skipped when no database is configured.
type Service struct {
	writer *FileWriter
	store  *Store
}

// NewService wires the archive. store may be nil for disk-only deployments.
func NewService(writer *FileWriter, store *Store) *Service {
	return &Service{writer: writer, store: store}
}

func (s *Service) Save(ctx context.Context, sessionID, filename, content string) error {
	path, err := s.writer.Write(filename, content)
	if err != nil {
		return err
	}
	log.Debug("itinerary written", "path", path, "session_id", sessionID)

	if s.store == nil {
		return nil
	}
	it := &SavedItinerary{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Filename:  filename,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.store.Insert(ctx, it); err != nil {
		return fmt.Errorf("index saved itinerary: %w", err)
	}
	return nil
}
