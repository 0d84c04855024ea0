package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{
			name:  "utc with Z",
			input: "2025-01-06T09:00:00Z",
			want:  time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "milliseconds",
			input: "2025-01-06T09:00:00.000Z",
			want:  time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "offset is converted to utc",
			input: "2025-01-06T11:00:00+02:00",
			want:  time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "no offset treated as utc",
			input: "2025-01-06T09:00",
			want:  time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
		},
		{
			name:    "empty",
			input:   "  ",
			wantErr: ErrEmptyInstant,
		},
		{
			name:    "garbage",
			input:   "tomorrow morning",
			wantErr: ErrInvalidInstant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstant(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestFormatInstant(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2025, 1, 6, 12, 30, 0, 0, loc)

	assert.Equal(t, "2025-01-06T09:30:00.000Z", FormatInstant(ts))
}

func TestAddMinutesAndMinutesBetween(t *testing.T) {
	start := time.Date(2025, 1, 6, 23, 45, 0, 0, time.UTC)
	end := AddMinutes(start, 45)

	assert.Equal(t, time.Date(2025, 1, 7, 0, 30, 0, 0, time.UTC), end)
	assert.Equal(t, 45, MinutesBetween(start, end))
}
