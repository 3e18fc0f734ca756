package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts a property value to int using explicit type switching.
// Floats must hold a whole number (count measures are exported as 4. rather than 4);
// strings must hold an integer or a whole-valued decimal.
func ToInt(val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case int16:
		return int(v), nil
	case int8:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint64:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint8:
		return int(v), nil
	case float64:
		return wholeFloat(v)
	case float32:
		return wholeFloat(float64(v))
	case string:
		return parseIntString(v)
	case []byte:
		return parseIntString(string(v))
	case nil:
		return 0, fmt.Errorf("no value")
	default:
		return 0, fmt.Errorf("cannot convert %T to int", val)
	}
}

// ToString converts a property value to its display form.
// Whole floats drop the decimal part so 12. and 12 both read "12".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func wholeFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%v is not a whole number", f)
	}
	return int(f), nil
}

func parseIntString(s string) (int, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return wholeFloat(f)
}
