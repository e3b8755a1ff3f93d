package optics

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/profunctor"
)

// Prism focuses on the values of S that match narrows to an A.
// match returns Unfocused with the original value when it does not apply;
// such values pass through the optic untouched and the wrapped rule never
// sees them. build turns an updated focus back into an S.
//
// Prisms need the Left capability, which only Transform provides. Extracting
// through a prism with View fails with UNSUPPORTED_CAPABILITY; use Preview.
func Prism[S, A any](match func(S) functional.Either[A, S], build func(A) S) Optic[S, A] {
	return func(p profunctor.P[A, A]) profunctor.P[S, S] {
		return profunctor.Dimap(profunctor.Left[A, A, S](p),
			match,
			func(e functional.Either[A, S]) S {
				return functional.Fold(e, build, functional.Identity[S])
			},
		)
	}
}

// TextPrism focuses on strings that parse as an A. Strings that fail to parse
// are returned verbatim.
func TextPrism[A any](parse func(string) (A, error), format func(A) string) Optic[string, A] {
	return Prism(
		func(s string) functional.Either[A, string] {
			a, err := parse(s)
			if err != nil {
				return functional.Unfocused[A](s)
			}
			return functional.Focused[A, string](a)
		},
		format,
	)
}

// ValuePrism focuses on untyped values that convert to an A. Converted
// values are rendered back with render, so an update may change the dynamic
// type of the value (a float64 becomes its text form, for example).
func ValuePrism[A any](convert func(any) (A, bool), render func(A) any) Optic[any, A] {
	return Prism(
		func(v any) functional.Either[A, any] {
			if a, ok := convert(v); ok {
				return functional.Focused[A, any](a)
			}
			return functional.Unfocused[A](v)
		},
		render,
	)
}

// FloatText focuses on strings holding a float.
func FloatText() Optic[string, float64] {
	return TextPrism(parseFloat, formatFloat)
}

// IntText focuses on strings holding a base-10 integer.
func IntText() Optic[string, int] {
	return TextPrism(strconv.Atoi, strconv.Itoa)
}

// BoolText focuses on strings holding a boolean.
func BoolText() Optic[string, bool] {
	return TextPrism(strconv.ParseBool, strconv.FormatBool)
}

// Float focuses on values that are numbers or text holding a float.
// Updated values are rendered as text.
func Float() Optic[any, float64] {
	return ValuePrism(toFloat, func(f float64) any { return formatFloat(f) })
}

// Int focuses on integral numbers and text holding an integer.
// Updated values are rendered as text.
func Int() Optic[any, int] {
	return ValuePrism(toInt, func(n int) any { return strconv.Itoa(n) })
}

// Bool focuses on booleans and text holding a boolean.
// Updated values are rendered as text.
func Bool() Optic[any, bool] {
	return ValuePrism(toBool, func(b bool) any { return strconv.FormatBool(b) })
}

// Duration focuses on durations and text such as "1m30s".
// Updated values are rendered as text.
func Duration() Optic[any, time.Duration] {
	return ValuePrism(toDuration, func(d time.Duration) any { return d.String() })
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		f, err := parseFloat(val)
		return f, err == nil
	default:
		return 0, false
	}
}

func toInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int8:
		return int(val), true
	case int16:
		return int(val), true
	case int32:
		return int(val), true
	case int64:
		if val < math.MinInt || val > math.MaxInt {
			return 0, false
		}
		return int(val), true
	case uint8:
		return int(val), true
	case uint16:
		return int(val), true
	case uint32:
		return int(val), true
	case uint64:
		if val > math.MaxInt {
			return 0, false
		}
		return int(val), true
	case uint:
		if val > math.MaxInt {
			return 0, false
		}
		return int(val), true
	case float64:
		return floatToInt(val)
	case float32:
		return floatToInt(float64(val))
	case json.Number:
		n, err := strconv.Atoi(val.String())
		return n, err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		return n, err == nil
	default:
		return 0, false
	}
}

// floatToInt accepts only integral values that fit in an int.
func floatToInt(f float64) (int, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int(f), true
}

func toBool(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		return b, err == nil
	default:
		return false, false
	}
}

func toDuration(v any) (time.Duration, bool) {
	switch val := v.(type) {
	case time.Duration:
		return val, true
	case string:
		d, err := time.ParseDuration(strings.TrimSpace(val))
		return d, err == nil
	default:
		return 0, false
	}
}
