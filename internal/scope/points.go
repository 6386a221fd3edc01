package scope

import (
	"strconv"
	"strings"
)

// ExtractPoints resolves the point value for one ticket. The second return
// value reports whether the ticket genuinely carries an estimate, as opposed
// to defaulting to zero for a null or unparseable value.
//
// An empty or whitespace-only field identifier means points are not tracked:
// every ticket is then estimated at zero, so the extrapolation divisor stays
// equal to the remaining item count and no phantom points are projected.
func ExtractPoints(fields map[string]any, pointsField string) (int, bool) {
	if strings.TrimSpace(pointsField) == "" {
		return 0, true
	}

	raw, ok := fields[pointsField]
	if !ok || raw == nil {
		return 0, false
	}

	value, ok := NumericValue(raw)
	if !ok || value < 0 {
		return 0, false
	}
	return int(value), true
}

// NumericValue resolves the tagged union a custom field value can take:
// number | numeric string | object with a value/count/total sub-key | null.
func NumericValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	case map[string]any:
		for _, key := range []string{"value", "count", "total"} {
			if nested, ok := v[key]; ok {
				return NumericValue(nested)
			}
		}
	}
	return 0, false
}
