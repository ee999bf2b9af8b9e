// file: internals/helpers/month_test.go
package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonthOf(t *testing.T) {
	d := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	require.Equal(t, "2025-03", MonthOf(d))
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("2025-03")
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseMonth("2025-3")
	require.Error(t, err)
	_, err = ParseMonth("2025-03-01")
	require.Error(t, err)
}

func TestFirstDayOfMonth(t *testing.T) {
	require.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), FirstDayOfMonth("2025-12"))
	require.True(t, FirstDayOfMonth("asdf").IsZero())
}

func TestNextPrevMonth(t *testing.T) {
	cases := []struct {
		in, next, prev string
	}{
		{"2025-03", "2025-04", "2025-02"},
		{"2025-12", "2026-01", "2025-11"},
		{"2025-01", "2025-02", "2024-12"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.next, NextMonth(tc.in))
		require.Equal(t, tc.prev, PrevMonth(tc.in))
	}
}

func TestMonthEndExclusive(t *testing.T) {
	require.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), MonthEndExclusive("2025-03"))
	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), MonthEndExclusive("2025-12"))

	// 월 내 모든 날짜는 exclusive 경계보다 앞선다
	last := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	require.True(t, last.Before(MonthEndExclusive("2025-03")))
}
