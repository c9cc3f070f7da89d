package script

import (
	"errors"

	"lifeboard/internal/domain/timestamp"
)

// Status constants
const (
	StatusIdea     = "idea"
	StatusDrafted  = "drafted"
	StatusRecorded = "recorded"
)

// ValidStatuses contains all valid status values.
var ValidStatuses = []string{StatusIdea, StatusDrafted, StatusRecorded}

// Domain errors
var (
	ErrEmptyTitle    = errors.New("title is required")
	ErrInvalidStatus = errors.New("status must be one of: idea, drafted, recorded")
)

// Script is a short-video script idea. Body holds markdown; the preview
// endpoint renders it server-side.
type Script struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Hook      string           `json:"hook"` // the opening line
	Body      string           `json:"body"` // markdown
	Status    string           `json:"status"`
	CreatedAt timestamp.Millis `json:"created_at"`
	UpdatedAt timestamp.Millis `json:"updated_at"`
}

// Validate checks if the Script has valid data.
// PRE: Script struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Script) Validate() error {
	if s.Title == "" {
		return ErrEmptyTitle
	}
	if !isValidStatus(s.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// SetDefaultStatus assigns the idea status if none is set.
// PRE: Script struct is populated
// POST: Status field is set to default if empty
func (s *Script) SetDefaultStatus() {
	if s.Status == "" {
		s.Status = StatusIdea
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
