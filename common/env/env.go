package env

import (
	"os"
	"strconv"
	"strings"
)

// String returns the trimmed value of env or defaultValue when it is unset or blank.
func String(env string, defaultValue string) string {
	v := strings.TrimSpace(os.Getenv(env))
	if v == "" {
		return defaultValue
	}
	return v
}

// Int parses env as an integer, falling back to defaultValue on absence or parse failure.
func Int(env string, defaultValue int) int {
	v := String(env, "")
	if v == "" {
		return defaultValue
	}
	num, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return num
}

// Bool accepts "true"/"1"/"yes" (case-insensitive) as true and "false"/"0"/"no" as false.
func Bool(env string, defaultValue bool) bool {
	v := String(env, "")
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}

// List splits a comma-separated env value, trimming entries and dropping blanks.
func List(env string) []string {
	return SplitList(os.Getenv(env))
}

// SplitList splits raw on commas, trims whitespace and drops empty entries.
func SplitList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		candidate := strings.TrimSpace(part)
		if candidate == "" {
			continue
		}
		items = append(items, candidate)
	}
	return items
}
