package report

import (
	"strings"
	"time"
)

// MaxDailyRangeDays caps a daily breakdown
const MaxDailyRangeDays = 366

// DailyFilter is the raw daily breakdown request
type DailyFilter struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

// DailyPoint is one day of a daily breakdown
type DailyPoint struct {
	Date    string  `json:"date"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// ResolveDaily parses both dates and bounds the range
func ResolveDaily(f DailyFilter) (DateRange, error) {
	start, err := parseDate("start", f.Start)
	if err != nil {
		return DateRange{}, err
	}
	end, err := parseDate("end", f.End)
	if err != nil {
		return DateRange{}, err
	}
	if end.Before(start) {
		return DateRange{}, InvalidFilter("end", "%s is before start %s", f.End, f.Start)
	}
	r := NewDateRange(start, end)
	if r.Days() > MaxDailyRangeDays {
		return DateRange{}, InvalidFilter("end", "range spans %d days, at most %d allowed", r.Days(), MaxDailyRangeDays)
	}
	return r, nil
}

// AssembleDaily converts cents to currency for the wire
func AssembleDaily(days []DailySales) []DailyPoint {
	points := make([]DailyPoint, 0, len(days))
	for _, d := range days {
		points = append(points, DailyPoint{
			Date:    d.Date.Format(DateLayout),
			Orders:  d.Orders,
			Revenue: centsToFloat(d.Revenue),
		})
	}
	return points
}

func parseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, InvalidFilter(field, "date is required")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, InvalidFilter(field, "%q must be YYYY-MM-DD", s)
	}
	return t, nil
}
