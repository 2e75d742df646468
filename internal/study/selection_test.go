package study

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSelectionContext_SubjectAt(t *testing.T) {
	selectedAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		selection SelectionContext
		at        time.Time
		want      string
		wantOK    bool
	}{
		{
			name:      "valid within ttl",
			selection: NewSelectionContext("s1", selectedAt, time.Hour),
			at:        selectedAt.Add(59 * time.Minute),
			want:      "s1",
			wantOK:    true,
		},
		{
			name:      "expired at ttl",
			selection: NewSelectionContext("s1", selectedAt, time.Hour),
			at:        selectedAt.Add(time.Hour),
		},
		{
			name:      "default ttl",
			selection: NewSelectionContext("s1", selectedAt, 0),
			at:        selectedAt.Add(DefaultSelectionTTL - time.Second),
			want:      "s1",
			wantOK:    true,
		},
		{
			name:      "empty selection",
			selection: SelectionContext{},
			at:        selectedAt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.selection.SubjectAt(tt.at)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
