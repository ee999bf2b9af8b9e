// file: internals/helpers/month.go
package helper

import (
	"fmt"
	"time"
)

// 월 라벨 포맷: "2006-01"
const MonthLayout = "2006-01"

// MonthOf: 날짜 → "YYYY-MM" 라벨
func MonthOf(t time.Time) string {
	return t.Format(MonthLayout)
}

// ParseMonth: "YYYY-MM" → 해당 월 1일 00:00 UTC
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("잘못된 월 형식 %q (YYYY-MM 필요): %w", s, err)
	}
	return t, nil
}

// FirstDayOfMonth: "YYYY-MM" → 1일 (파싱 실패 시 zero time)
func FirstDayOfMonth(s string) time.Time {
	t, err := ParseMonth(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// NextMonth: "YYYY-MM" → 다음 달 라벨
func NextMonth(s string) string {
	t, err := ParseMonth(s)
	if err != nil {
		return s
	}
	return t.AddDate(0, 1, 0).Format(MonthLayout)
}

// PrevMonth: "YYYY-MM" → 이전 달 라벨
func PrevMonth(s string) string {
	t, err := ParseMonth(s)
	if err != nil {
		return s
	}
	return t.AddDate(0, -1, 0).Format(MonthLayout)
}

// MonthEndExclusive: 해당 월의 다음 달 1일 (point 누적 잔액 cutoff 비교용)
func MonthEndExclusive(s string) time.Time {
	t, err := ParseMonth(s)
	if err != nil {
		return time.Time{}
	}
	return t.AddDate(0, 1, 0)
}
