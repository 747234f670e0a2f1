package costs

import (
	"strconv"
	"strings"
)

// coerceAmount converts an untrusted amount value to a float64. The research
// generator has been observed to emit plain numbers, numeric strings with
// thousands separators and currency symbols, and nested {amount: ...} maps.
// Malformed input coerces to 0.0 rather than raising.
func coerceAmount(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0.0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		cleaned := strings.TrimSpace(v)
		cleaned = strings.NewReplacer(",", "", "$", "", "€", "", "£", "", "¥", "", "₹", "", " ", "").Replace(cleaned)
		if cleaned == "" {
			return 0.0
		}
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0.0
		}
		return parsed
	case map[string]any:
		for _, key := range []string{"amount", "value", "mid"} {
			if inner, ok := v[key]; ok {
				return coerceAmount(inner)
			}
		}
		return 0.0
	default:
		return 0.0
	}
}
