package timezone_test

import (
	"hotelgen/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty uses UTC", input: "", expected: "UTC"},
		{name: "known location", input: "Asia/Kolkata", expected: "Asia/Kolkata"},
		{name: "unknown location falls back to UTC", input: "Mars/Olympus_Mons", expected: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := timezone.Init(tt.input)

			assert.Equal(t, tt.expected, loc.String())
			assert.Equal(t, tt.expected, timezone.GetLocation().String())
		})
	}
}

func TestNow(t *testing.T) {
	timezone.Init("UTC")

	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, time.UTC, now.Location())
}

func TestFormat(t *testing.T) {
	timezone.Init("Asia/Kolkata")
	t.Cleanup(func() { timezone.Init("UTC") })

	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-01-01T05:30:00+05:30", timezone.Format(ts, time.RFC3339))
}
