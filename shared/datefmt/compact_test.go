package datefmt_test

import (
	"testing"
	"time"

	"friendlydate/shared/datefmt"

	"github.com/stretchr/testify/assert"
)

func TestToCompactYMD(t *testing.T) {
	ts := time.Date(2024, 1, 9, 7, 5, 0, 0, kst)

	assert.Equal(t, "2024-01-09", datefmt.ToCompactYMD(ts, "-"))
	assert.Equal(t, "20240109", datefmt.ToCompactYMD(ts))
	assert.Equal(t, "20240109", datefmt.ToCompactYMD(ts, ""))
	assert.Equal(t, "2024.01.09", datefmt.ToCompactYMD(ts, ".", "-"))
}

func TestToCompactYMDH(t *testing.T) {
	tests := []struct {
		name     string
		ts       time.Time
		sep      []string
		expected string
	}{
		{name: "padded fields", ts: time.Date(2024, 1, 9, 7, 0, 0, 0, kst), expected: "2024010907"},
		{name: "with separator", ts: time.Date(2024, 1, 9, 7, 0, 0, 0, kst), sep: []string{"/"}, expected: "2024/01/09/07"},
		{name: "two digit fields unchanged", ts: time.Date(2024, 12, 31, 23, 59, 0, 0, kst), sep: []string{"-"}, expected: "2024-12-31-23"},
		{name: "midnight", ts: time.Date(2024, 10, 10, 0, 0, 0, 0, kst), expected: "2024101000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, datefmt.ToCompactYMDH(tt.ts, tt.sep...))
		})
	}
}

func TestToCompactYM(t *testing.T) {
	ts := time.Date(2024, 1, 9, 7, 0, 0, 0, kst)

	assert.Equal(t, "2024-01", datefmt.ToCompactYM(ts, "-"))
	assert.Equal(t, "202401", datefmt.ToCompactYM(ts))
}

func TestCompactUsesOwnLocation(t *testing.T) {
	instant := time.Date(2024, 1, 9, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-09-20", datefmt.ToCompactYMDH(instant, "-"))
	assert.Equal(t, "2024-01-10-05", datefmt.ToCompactYMDH(instant.In(kst), "-"))
}

func TestCompactZeroTime(t *testing.T) {
	assert.Equal(t, "10101", datefmt.ToCompactYMD(time.Time{}))
}
