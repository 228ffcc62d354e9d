package domain

import "time"

// DayFormat is the wire and storage format for calendar days.
const DayFormat = "2006-01-02"

// DateLock is one exclusive claim on one calendar day of one vehicle. At most
// one lock may exist per (vehicle, day); it lives only while its owning
// reservation is in a blocking status.
type DateLock struct {
	VehicleID     int32     `json:"vehicle_id"`
	Day           time.Time `json:"day"`
	ReservationID int32     `json:"reservation_id"`
}

// DayRange is a merged run of consecutive blocked days, inclusive on both
// ends. It is the shape the booking calendar consumes.
type DayRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Day truncates t to a UTC calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a UTC calendar day.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// DaysBetween expands the half-open range [start, end) into individual
// calendar days. An empty or inverted range yields nil.
func DaysBetween(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	if !start.Before(end) {
		return nil
	}
	var days []time.Time
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MergeDays collapses a sorted list of locked days into inclusive ranges.
func MergeDays(days []time.Time) []DayRange {
	if len(days) == 0 {
		return nil
	}
	ranges := []DayRange{{From: days[0], To: days[0]}}
	for _, d := range days[1:] {
		last := &ranges[len(ranges)-1]
		if d.Equal(last.To.AddDate(0, 0, 1)) {
			last.To = d
			continue
		}
		ranges = append(ranges, DayRange{From: d, To: d})
	}
	return ranges
}
