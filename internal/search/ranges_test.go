package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberRange(t *testing.T) {
	min, max, ok := parseNumberRange("2-5")
	require.True(t, ok)
	assert.Equal(t, 2.0, min)
	assert.Equal(t, 5.0, max)

	min, max, ok = parseNumberRange(" 1.5-3.5 ")
	require.True(t, ok)
	assert.Equal(t, 1.5, min)
	assert.Equal(t, 3.5, max)

	_, _, ok = parseNumberRange("5")
	assert.False(t, ok)
	_, _, ok = parseNumberRange("a-b")
	assert.False(t, ok)
	_, _, ok = parseNumberRange("")
	assert.False(t, ok)
}

func TestParseDateWindowCommaForm(t *testing.T) {
	from, to, ok := parseDateWindow("2023-01-01,2023-12-31")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), to)

	from, to, ok = parseDateWindow(" 2023-01-01 , 2023-12-31 ")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), to)
}

func TestParseDateWindowLegacyDashForm(t *testing.T) {
	from, to, ok := parseDateWindow("2023-01-01-2023-12-31")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), to)
}

func TestParseDateWindowRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"2023-01-01",
		"2023-01-01,не дата",
		"01.01.2023,31.12.2023",
		"2023-01-01-2023-12",
		"a-b-c-d-e-f",
	}
	for _, raw := range cases {
		_, _, ok := parseDateWindow(raw)
		assert.False(t, ok, "ожидался отказ для %q", raw)
	}
}
