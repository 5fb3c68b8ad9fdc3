package racetime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned by Parse when a time string does not match the
// "(hours:)(minutes:)seconds.tenth" format or a component is out of range.
var ErrInvalidFormat = errors.New("invalid time format")

// Parse converts a race time string to the total time in tenths of a second.
//
// The input uses the format "(hours:)(minutes:)seconds.tenth", e.g. "1:02:33.4",
// "2:05.1" or "59.9". Hours and minutes segments are optional; the tenths
// segment is a single digit.
func Parse(timeStr string) (int, error) {
	parts := strings.Split(timeStr, ":")

	var hours, minutes int
	var secondsTenth string
	var err error

	switch len(parts) {
	case 3:
		hours, err = strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("%w: hours %q is not a number", ErrInvalidFormat, parts[0])
		}
		minutes, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("%w: minutes %q is not a number", ErrInvalidFormat, parts[1])
		}
		secondsTenth = parts[2]
	case 2:
		minutes, err = strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("%w: minutes %q is not a number", ErrInvalidFormat, parts[0])
		}
		secondsTenth = parts[1]
	case 1:
		secondsTenth = parts[0]
	default:
		return 0, fmt.Errorf("%w: expected at most 3 colon-separated segments, got %d", ErrInvalidFormat, len(parts))
	}

	secondTenthParts := strings.Split(secondsTenth, ".")
	if len(secondTenthParts) != 2 {
		return 0, fmt.Errorf("%w: seconds segment %q must be seconds.tenth", ErrInvalidFormat, secondsTenth)
	}

	seconds, err := strconv.Atoi(secondTenthParts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: seconds %q is not a number", ErrInvalidFormat, secondTenthParts[0])
	}
	tenth, err := strconv.Atoi(secondTenthParts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: tenths %q is not a number", ErrInvalidFormat, secondTenthParts[1])
	}

	if seconds < 0 || seconds >= 60 || tenth < 0 || tenth >= 10 {
		return 0, fmt.Errorf("%w: seconds must be between 0 and 59 and tenths between 0 and 9", ErrInvalidFormat)
	}
	if minutes < 0 || minutes >= 60 {
		return 0, fmt.Errorf("%w: minutes must be between 0 and 59", ErrInvalidFormat)
	}
	if hours < 0 {
		return 0, fmt.Errorf("%w: hours cannot be negative", ErrInvalidFormat)
	}

	return hours*36000 + minutes*600 + seconds*10 + tenth, nil
}

// Format converts a total time in tenths of a second back to a string in the
// format "(minutes:)seconds.tenth".
//
// Hours are never reconstructed, so the minutes segment may exceed 59: a time
// parsed from "1:02:33.4" formats back as "62:33.4". Negative input is
// undefined behavior.
func Format(totalTenths int) string {
	minutes := totalTenths / 600
	seconds := (totalTenths % 600) / 10
	tenth := totalTenths % 10

	if minutes > 0 {
		return fmt.Sprintf("%d:%02d.%d", minutes, seconds, tenth)
	}
	return fmt.Sprintf("%d.%d", seconds, tenth)
}
