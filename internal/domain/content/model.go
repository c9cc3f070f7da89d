package content

import (
	"errors"

	"lifeboard/internal/domain/timestamp"
)

// Status constants
const (
	StatusIdea      = "idea"
	StatusDrafting  = "drafting"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
)

// ValidStatuses contains all valid status values.
var ValidStatuses = []string{StatusIdea, StatusDrafting, StatusScheduled, StatusPublished}

// Domain errors
var (
	ErrEmptyTitle    = errors.New("title is required")
	ErrInvalidStatus = errors.New("status must be one of: idea, drafting, scheduled, published")
)

// Item is one entry on the content calendar.
type Item struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Platform  string            `json:"platform"` // e.g. "youtube", "newsletter"
	Status    string            `json:"status"`
	SendDate  *timestamp.Millis `json:"send_date"` // nil until scheduled
	CreatedAt timestamp.Millis  `json:"created_at"`
	UpdatedAt timestamp.Millis  `json:"updated_at"`
}

// Validate checks if the Item has valid data.
// PRE: Item struct is populated
// POST: Returns nil if valid, error otherwise
func (i *Item) Validate() error {
	if i.Title == "" {
		return ErrEmptyTitle
	}
	if !isValidStatus(i.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// SetDefaultStatus assigns the idea status if none is set.
// PRE: Item struct is populated
// POST: Status field is set to default if empty
func (i *Item) SetDefaultStatus() {
	if i.Status == "" {
		i.Status = StatusIdea
	}
}

func isValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}
