package provider

import (
	"strconv"
	"strings"
)

// ExtractValue normalizes a stat value from various API response formats.
//
// BDL mostly returns flat numbers but has served numeric strings and, for
// some endpoints, nested {"total": n} objects. This handles all of them.
//
// Returns the scalar float64 value, and ok=false if not extractable.
func ExtractValue(val interface{}) (float64, bool) {
	if val == nil {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, true
		}
		return 0, false
	case map[string]interface{}:
		for _, key := range []string{"total", "all", "count", "average"} {
			if inner, exists := v[key]; exists && inner != nil {
				return ExtractValue(inner)
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

// ParseMinutes reads a minutes-played string such as "34", "34:12" or
// "34.5" and returns whole minutes. ok is false for empty or malformed input.
func ParseMinutes(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if whole, _, found := strings.Cut(s, ":"); found {
		s = whole
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return int(f), true
}

// Fraction converts a shooting percentage to [0,1], accepting either a
// fraction (0.512) or a percent (51.2).
func Fraction(v float64) float64 {
	if v > 1 {
		v /= 100
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
