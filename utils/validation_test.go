package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinatesValid(t *testing.T) {
	cases := []struct {
		in       string
		lat, lng float64
	}{
		{"20.5937,78.9629", 20.5937, 78.9629},
		{"20.5937, 78.9629", 20.5937, 78.9629},
		{" -33.86 , 151.21 ", -33.86, 151.21},
		{"0,0", 0, 0},
	}
	for _, tc := range cases {
		lat, lng, err := ParseCoordinates(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.lat, lat)
		assert.Equal(t, tc.lng, lng)
	}
}

func TestParseCoordinatesInvalid(t *testing.T) {
	cases := []string{
		"",
		"20.5937",
		"20.5937,78.9629,12",
		"lat,lng",
		"20.5937;78.9629",
		"20.5937,",
		",78.9629",
		"NaN,78.9629",
		"Inf,78.9629",
	}
	for _, tc := range cases {
		_, _, err := ParseCoordinates(tc)
		assert.ErrorIs(t, err, ErrInvalidCoordinates, "input %q", tc)
	}
}
