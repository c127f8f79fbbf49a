package utils

import (
	"strconv"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseTimestamp parses an ISO-8601 timestamp (RFC3339)
func ParseTimestamp(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}
