package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"₹1,299", 1299},
		{"$19.99", 19.99},
		{"€5", 5},
		{"£1,000.50", 1000.5},
		{" 42 ", 42},
		{"0", 0},
	}

	for _, tc := range cases {
		got := ParsePrice(tc.in)
		require.NotNil(t, got, tc.in)
		assert.Equal(t, tc.want, *got, tc.in)
	}
}

func TestParsePrice_Unknown(t *testing.T) {
	for _, in := range []string{"", "   ", "₹", "abc", "N/A", "1.2.3"} {
		assert.Nil(t, ParsePrice(in), in)
	}
}

func TestParseRating(t *testing.T) {
	got := ParseRating("4.2")
	require.NotNil(t, got)
	assert.Equal(t, 4.2, *got)

	assert.Nil(t, ParseRating("Get"))
	assert.Nil(t, ParseRating(""))
	assert.Nil(t, ParseRating("FREE"))
}
