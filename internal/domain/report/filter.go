package report

import (
	"strconv"
	"strings"
	"time"
)

// FilterAll is the wildcard value for every filter field
const FilterAll = "all"

const (
	minYear = 1970
	maxYear = 9999
)

// Filter is the raw report request
type Filter struct {
	Month    string `form:"month"`
	Year     string `form:"year"`
	Category string `form:"category"`
}

// Resolve validates the filter and turns it into a date range plus an
// optional bucket. A concrete month without a concrete year uses defaultYear.
func Resolve(f Filter, defaultYear int) (Criteria, error) {
	month, err := parseMonth(f.Month)
	if err != nil {
		return Criteria{}, err
	}
	year, err := parseYear(f.Year)
	if err != nil {
		return Criteria{}, err
	}
	if defaultYear < minYear || defaultYear > maxYear {
		return Criteria{}, InvalidFilter("year", "default year %d out of range", defaultYear)
	}

	var criteria Criteria
	if !isAll(f.Category) {
		bucket, ok := ParseBucket(f.Category)
		if !ok {
			return Criteria{}, InvalidFilter("category", "%q is not one of phone, tablet, laptop, watch, accessories", f.Category)
		}
		criteria.Bucket = &bucket
	}

	if year == 0 {
		year = defaultYear
	}

	if month != 0 {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		criteria.Range = DateRange{Start: start, End: start.AddDate(0, 1, -1)}
		return criteria, nil
	}

	criteria.Range = DateRange{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	return criteria, nil
}

// parseMonth returns 0 for "all"
func parseMonth(s string) (int, error) {
	if isAll(s) {
		return 0, nil
	}
	s = strings.TrimSpace(s)
	if len(s) > 2 || !isDigits(s) {
		return 0, InvalidFilter("month", "%q must be 1-12 or all", s)
	}
	m, _ := strconv.Atoi(s)
	if m < 1 || m > 12 {
		return 0, InvalidFilter("month", "%q must be 1-12 or all", s)
	}
	return m, nil
}

// parseYear returns 0 for "all"
func parseYear(s string) (int, error) {
	if isAll(s) {
		return 0, nil
	}
	s = strings.TrimSpace(s)
	if len(s) != 4 || !isDigits(s) {
		return 0, InvalidFilter("year", "%q must be a four-digit year or all", s)
	}
	y, _ := strconv.Atoi(s)
	if y < minYear {
		return 0, InvalidFilter("year", "%q is before %d", s, minYear)
	}
	return y, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func isAll(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, FilterAll)
}
