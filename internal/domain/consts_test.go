package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStart(t *testing.T) {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "Should return the same Monday at midnight",
			in:   time.Date(2026, 9, 7, 18, 45, 0, 0, time.UTC),
			want: monday,
		},
		{
			name: "Should return the preceding Monday for a Wednesday",
			in:   time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC),
			want: monday,
		},
		{
			name: "Should keep a Sunday in the week of the preceding Monday",
			in:   time.Date(2026, 9, 13, 23, 59, 0, 0, time.UTC),
			want: monday,
		},
		{
			name: "Should normalize non-UTC times to UTC",
			in:   time.Date(2026, 9, 9, 12, 0, 0, 0, time.FixedZone("UTC+5", 5*3600)),
			want: monday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.in))
		})
	}
}

func TestNextWeekStart(t *testing.T) {
	friday := time.Date(2026, 9, 11, 17, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), NextWeekStart(friday))
}
