package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatParseUTC(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"Whole seconds", time.Date(2024, 1, 1, 20, 15, 0, 0, time.UTC), "2024-01-01T20:15:00Z"},
		{"Fractional", time.Date(2024, 1, 1, 20, 15, 0, 123456789, time.UTC), "2024-01-01T20:15:00.123456789Z"},
		{"Non-UTC input", time.Date(2024, 1, 1, 15, 15, 0, 0, time.FixedZone("EST", -5*3600)), "2024-01-01T20:15:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FormatUTC(tt.in)
			assert.Equal(t, tt.want, s)

			back, err := ParseUTC(s)
			require.NoError(t, err)
			assert.True(t, back.Equal(tt.in))
			assert.Equal(t, time.UTC, back.Location())
		})
	}
}

func TestParseUTC(t *testing.T) {
	t.Run("Sentinel", func(t *testing.T) {
		got, err := ParseUTC(EpochSentinel)
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Unix(0, 0)))
	})

	t.Run("Offset converted", func(t *testing.T) {
		got, err := ParseUTC("2024-01-01T15:15:00-05:00")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01T20:15:00Z", FormatUTC(got))
		assert.Equal(t, time.UTC, got.Location())
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseUTC("yesterday")
		assert.Error(t, err)
	})
}

func TestParseUTCPtr(t *testing.T) {
	got, err := ParseUTCPtr(nil)
	assert.NoError(t, err)
	assert.Nil(t, got)

	empty := ""
	got, err = ParseUTCPtr(&empty)
	assert.NoError(t, err)
	assert.Nil(t, got)

	s := "2024-01-01T20:15:00Z"
	got, err = ParseUTCPtr(&s)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2024, got.Year())
}
