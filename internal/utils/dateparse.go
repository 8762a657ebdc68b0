package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseFlexibleDate attempts to parse various date formats and natural language
func ParseFlexibleDate(input string, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date input")
	}

	now := time.Now().In(loc)

	switch input {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	case "yesterday":
		y := now.AddDate(0, 0, -1)
		return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, loc), nil
	case "now":
		return now, nil
	}

	if strings.HasPrefix(input, "last ") {
		switch strings.TrimPrefix(input, "last ") {
		case "week":
			return now.AddDate(0, 0, -7), nil
		case "month":
			return now.AddDate(0, -1, 0), nil
		case "year":
			return now.AddDate(-1, 0, 0), nil
		case "day":
			return now.AddDate(0, 0, -1), nil
		}
	}

	if strings.HasPrefix(input, "this ") {
		switch strings.TrimPrefix(input, "this ") {
		case "week":
			weekday := int(now.Weekday())
			if weekday == 0 { // Sunday
				weekday = 7
			}
			start := now.AddDate(0, 0, -(weekday - 1))
			return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc), nil
		case "month":
			return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc), nil
		case "year":
			return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc), nil
		}
	}

	// "N days/weeks/months" patterns
	re := regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks|month|months)$`)
	if matches := re.FindStringSubmatch(input); matches != nil {
		num, _ := strconv.Atoi(matches[1])
		switch matches[2] {
		case "day", "days":
			return now.AddDate(0, 0, -num), nil
		case "week", "weeks":
			return now.AddDate(0, 0, -7*num), nil
		case "month", "months":
			return now.AddDate(0, -num, 0), nil
		}
	}

	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"01/02/2006",
		"02.01.2006",
		"Jan 2, 2006",
		"2 Jan 2006",
		"2006-01-02 15:04",
		time.RFC3339,
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, input, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", input)
}
