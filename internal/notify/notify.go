// Package notify carries success/failure notifications from the record
// workflows to whatever surface renders them. The core only dictates
// the three-field payload (title, description, severity), never the
// rendering.
package notify

import "github.com/google/uuid"

// Severity selects how a toast should be presented.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityDestructive
)

// Toast is one notification.
type Toast struct {
	ID          string
	Title       string
	Description string
	Severity    Severity
}

// New builds a toast with a fresh instance id.
func New(title, description string, severity Severity) Toast {
	return Toast{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Severity:    severity,
	}
}

// Feed is a bounded, newest-last list of toasts.
type Feed struct {
	toasts []Toast
	limit  int
}

// NewFeed returns a feed keeping at most limit toasts.
func NewFeed(limit int) *Feed {
	if limit <= 0 {
		limit = 5
	}
	return &Feed{limit: limit}
}

// Push appends a toast, evicting the oldest past the limit.
func (f *Feed) Push(t Toast) {
	f.toasts = append(f.toasts, t)
	if len(f.toasts) > f.limit {
		f.toasts = f.toasts[len(f.toasts)-f.limit:]
	}
}

// Latest returns the most recent toast, if any.
func (f *Feed) Latest() (Toast, bool) {
	if len(f.toasts) == 0 {
		return Toast{}, false
	}
	return f.toasts[len(f.toasts)-1], true
}

// Dismiss removes the toast with the given id. Unknown ids are ignored.
func (f *Feed) Dismiss(id string) {
	for i, t := range f.toasts {
		if t.ID == id {
			f.toasts = append(f.toasts[:i], f.toasts[i+1:]...)
			return
		}
	}
}

// Toasts returns the current toasts, oldest first.
func (f *Feed) Toasts() []Toast {
	out := make([]Toast, len(f.toasts))
	copy(out, f.toasts)
	return out
}
