package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrMemoryIncomplete = errors.New("domain: date, place, title and story are required")

// Memory is a shared story. UserID is empty for anonymous submissions.
type Memory struct {
	ID        string
	Date      string
	Place     string
	Title     string
	Story     string
	UserID    string
	CreatedAt time.Time
}

// Normalize trims every text field and reports ErrMemoryIncomplete when one
// of them ends up empty.
func (m Memory) Normalize() (Memory, error) {
	m.Date = strings.TrimSpace(m.Date)
	m.Place = strings.TrimSpace(m.Place)
	m.Title = strings.TrimSpace(m.Title)
	m.Story = strings.TrimSpace(m.Story)

	if m.Date == "" || m.Place == "" || m.Title == "" || m.Story == "" {
		return m, ErrMemoryIncomplete
	}
	return m, nil
}
