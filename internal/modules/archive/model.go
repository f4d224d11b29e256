// README: Saved itinerary records and errors.
package archive

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("saved itinerary not found")

// SavedItinerary is one archived plan: the file on disk plus, when a database
// is configured, a row keyed by id.
type SavedItinerary struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Filename  string    `json:"filename"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
