package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseExpiry(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"7d", 7 * 24 * time.Hour},
		{"1d", 24 * time.Hour},
		{"30d", 30 * 24 * time.Hour},
		{"168h", 168 * time.Hour},
		{"15m", 15 * time.Minute},
		{" 7d ", 7 * 24 * time.Hour},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, parseExpiry(tc.in), "entrada %q", tc.in)
	}
}

func TestParseExpiryInvalidFallsBack(t *testing.T) {
	def := 7 * 24 * time.Hour
	for _, in := range []string{"", "abc", "-3d", "0d", "-5h", "d"} {
		assert.Equal(t, def, parseExpiry(in), "entrada %q", in)
	}
}
