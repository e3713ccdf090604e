package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"mid year", time.Date(2026, 4, 1, 2, 0, 0, 0, time.UTC), "2026-03"},
		{"january rolls to december", time.Date(2026, 1, 2, 2, 0, 0, 0, time.UTC), "2025-12"},
		{"end of long month", time.Date(2026, 3, 31, 23, 0, 0, 0, time.UTC), "2026-02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, previousMonth(tt.now))
		})
	}
}
