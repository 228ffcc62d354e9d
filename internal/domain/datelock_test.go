package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDaysBetween(t *testing.T) {
	t.Run("HalfOpenRange", func(t *testing.T) {
		days := DaysBetween(day("2024-06-01"), day("2024-06-03"))
		assert.Equal(t, []time.Time{day("2024-06-01"), day("2024-06-02")}, days)
	})

	t.Run("SingleDay", func(t *testing.T) {
		days := DaysBetween(day("2024-06-01"), day("2024-06-02"))
		assert.Equal(t, []time.Time{day("2024-06-01")}, days)
	})

	t.Run("EmptyRange", func(t *testing.T) {
		assert.Nil(t, DaysBetween(day("2024-06-01"), day("2024-06-01")))
	})

	t.Run("InvertedRange", func(t *testing.T) {
		assert.Nil(t, DaysBetween(day("2024-06-03"), day("2024-06-01")))
	})

	t.Run("MonthBoundary", func(t *testing.T) {
		days := DaysBetween(day("2024-06-29"), day("2024-07-02"))
		assert.Equal(t, []time.Time{day("2024-06-29"), day("2024-06-30"), day("2024-07-01")}, days)
	})
}

func TestMergeDays(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Nil(t, MergeDays(nil))
	})

	t.Run("SingleRun", func(t *testing.T) {
		ranges := MergeDays([]time.Time{day("2024-06-01"), day("2024-06-02"), day("2024-06-03")})
		assert.Equal(t, []DayRange{{From: day("2024-06-01"), To: day("2024-06-03")}}, ranges)
	})

	t.Run("GapSplitsRanges", func(t *testing.T) {
		ranges := MergeDays([]time.Time{
			day("2024-06-01"), day("2024-06-02"),
			day("2024-06-05"),
			day("2024-06-07"), day("2024-06-08"),
		})
		assert.Equal(t, []DayRange{
			{From: day("2024-06-01"), To: day("2024-06-02")},
			{From: day("2024-06-05"), To: day("2024-06-05")},
			{From: day("2024-06-07"), To: day("2024-06-08")},
		}, ranges)
	})
}
