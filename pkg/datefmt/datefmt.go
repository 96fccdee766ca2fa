package datefmt

import (
	"regexp"
	"strconv"

	"github.com/dmitrymomot/cartkit/pkg/validator"
)

const (
	// InputLayout describes accepted input.
	InputLayout = "YYYY-MM-DD"
	// OutputLayout describes produced output.
	OutputLayout = "DD-MM-YYYY"
)

var separators = regexp.MustCompile(`^.{4}-.{2}-.{2}$`)

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Convert reorders a YYYY-MM-DD date into DD-MM-YYYY. The components keep
// their original zero padding.
func Convert(date string) (string, error) {
	if err := validator.First(
		validator.Len("date", date, len(InputLayout)),
		validator.MatchesPattern("date", date, separators, InputLayout),
	); err != nil {
		return "", err
	}

	year, month, day := date[0:4], date[5:7], date[8:10]
	if err := validator.First(
		validator.Digits("year", year),
		validator.Digits("month", month),
		validator.Digits("day", day),
	); err != nil {
		return "", err
	}

	// Digits guarantees the conversions succeed.
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)

	if err := validator.First(
		validator.Month("month", m),
		validator.DayOfMonth("day", d, DaysIn(y, m)),
	); err != nil {
		return "", err
	}

	return day + "-" + month + "-" + year, nil
}

// ConvertValue is Convert for untyped input. Non-string values fail with
// validator.ErrInvalidType.
func ConvertValue(date any) (string, error) {
	s, err := validator.String("date", date)
	if err != nil {
		return "", err
	}
	return Convert(s)
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in month of year, or 0 if month is not
// in 1..12.
func DaysIn(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysInMonth[month]
}
