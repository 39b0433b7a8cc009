package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateCivil(t *testing.T) {
	got, ok := ParseDate("2024-10-10")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateRFC3339DropsTime(t *testing.T) {
	got, ok := ParseDate("2024-10-10T15:04:05Z")
	require.True(t, ok)
	assert.Equal(t, "2024-10-10", FormatDate(got))
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, ok := ParseDate("")
	assert.False(t, ok)
	_, ok = ParseDate("10/10/2024")
	assert.False(t, ok)
}
