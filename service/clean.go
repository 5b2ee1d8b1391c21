package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	// Embedded zone database so day bucketing does not depend on the
	// host's tzdata
	_ "time/tzdata"
)

// TimestampLayout is the format used for created_at values written by
// this backend
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// referenceTZ is the fixed timezone used for all "today" and "N days
// ago" boundaries, regardless of where the user or the server runs.
var referenceTZ *time.Location

func init() {
	loc, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		loc = time.FixedZone("CET", 3600)
	}
	referenceTZ = loc
}

// ReferenceTZ returns the fixed reference timezone
func ReferenceTZ() *time.Location {
	return referenceTZ
}

// Now returns the current time in the reference timezone
func Now() time.Time {
	return time.Now().In(referenceTZ)
}

// StartOfDay truncates t to 00:00:00 in the reference timezone
func StartOfDay(t time.Time) time.Time {
	t = t.In(referenceTZ)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, referenceTZ)
}

// SafeParseTimestamp parses a stored timestamp that may or may not carry
// fractional seconds or a zone suffix. The wall-clock part is read as UTC
// and converted to the reference timezone. Unparseable input falls back
// to the current time, so a single malformed row can never fail a report.
func SafeParseTimestamp(value string) time.Time {
	base := value
	if i := strings.IndexAny(base, ".+Z"); i >= 0 {
		base = base[:i]
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", base, time.UTC)
	if err != nil {
		return Now()
	}
	return t.In(referenceTZ)
}

// DayBucket returns the reference-timezone calendar date (YYYY-MM-DD)
// the stored timestamp falls into
func DayBucket(value string) string {
	return SafeParseTimestamp(value).Format("2006-01-02")
}

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// CleanToInt coerces any stored value to an int. Strings are stripped of
// non-numeric characters before parsing ("250kcal" -> 250); anything
// unparseable becomes 0.
func CleanToInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case nil:
		return 0
	}

	cleaned := nonNumeric.ReplaceAllString(toString(value), "")
	if cleaned == "" {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// CleanToFloat coerces any stored value to a float64. The literal
// "невідомо" marker the AI uses for unknown macros becomes 0.
func CleanToFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case nil:
		return 0
	}

	raw := toString(value)
	if strings.ToLower(raw) == "невідомо" {
		return 0
	}
	cleaned := nonNumeric.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}

func toString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// IsInvalidUser reports whether a user id is one of the junk values the
// mobile client sends when nobody is logged in
func IsInvalidUser(userID string) bool {
	s := strings.ToLower(strings.TrimSpace(userID))
	switch s {
	case "", "null", "undefined", "none":
		return true
	}
	return false
}
