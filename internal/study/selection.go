package study

import "time"

// DefaultSelectionTTL is how long a remembered subject stays valid.
const DefaultSelectionTTL = 30 * time.Minute

// SelectionContext remembers the subject a learner last worked on. It is
// passed around explicitly and stops being valid after its TTL.
type SelectionContext struct {
	SubjectID  string        `yaml:"subject_id"`
	SelectedAt time.Time     `yaml:"selected_at"`
	TTL        time.Duration `yaml:"ttl"`
}

// NewSelectionContext selects subjectID at now. A non-positive ttl means
// DefaultSelectionTTL.
func NewSelectionContext(subjectID string, now time.Time, ttl time.Duration) SelectionContext {
	if ttl <= 0 {
		ttl = DefaultSelectionTTL
	}
	return SelectionContext{SubjectID: subjectID, SelectedAt: now, TTL: ttl}
}

// ExpiresAt returns the first instant the selection is no longer valid.
func (c SelectionContext) ExpiresAt() time.Time {
	return c.SelectedAt.Add(c.TTL)
}

// SubjectAt returns the selected subject if the selection is still valid
// at now.
func (c SelectionContext) SubjectAt(now time.Time) (string, bool) {
	if c.SubjectID == "" || c.SelectedAt.IsZero() {
		return "", false
	}
	if !now.Before(c.ExpiresAt()) {
		return "", false
	}
	return c.SubjectID, true
}
