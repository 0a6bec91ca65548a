package journal

import (
	"context"
	"time"

	"codeberg.org/mutker/faultctl/internal/condition"
)

// Recorder defines the core domain interface
type Recorder interface {
	Record(ctx context.Context, entry *Entry) error
	Close() error
}

// Repository defines the interface for fault entry storage
type Repository interface {
	Record(entry *Entry) error
	Close() error
}

// Entry records one raised condition
type Entry struct {
	Timestamp time.Time
	Value     int
	Category  string
	Name      string
	Message   string
	Origin    string
}

// NewEntry builds a journal entry for a raised condition
func NewEntry(cond condition.Condition, origin string) *Entry {
	return &Entry{
		Timestamp: time.Now().UTC(),
		Value:     cond.Value(),
		Category:  cond.Category().Name(),
		Name:      condition.Errc(cond.Value()).String(),
		Message:   cond.Message(),
		Origin:    origin,
	}
}
