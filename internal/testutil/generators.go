// Package testutil provides rapid generators for property tests.
package testutil

import (
	"strconv"

	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/record"
	"pgregory.net/rapid"
)

// EitherGen generates Either[L, R] values.
func EitherGen[L, R any](focusedGen *rapid.Generator[L], unfocusedGen *rapid.Generator[R]) *rapid.Generator[functional.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) functional.Either[L, R] {
		if rapid.Bool().Draw(t, "isFocused") {
			return functional.Focused[L, R](focusedGen.Draw(t, "focused"))
		}
		return functional.Unfocused[L](unfocusedGen.Draw(t, "unfocused"))
	})
}

// PairGen generates Pair[A, B] values.
func PairGen[A, B any](firstGen *rapid.Generator[A], secondGen *rapid.Generator[B]) *rapid.Generator[functional.Pair[A, B]] {
	return rapid.Custom(func(t *rapid.T) functional.Pair[A, B] {
		return functional.NewPair(
			firstGen.Draw(t, "first"),
			secondGen.Draw(t, "second"),
		)
	})
}

// FieldNameGen generates short lower-case field names.
func FieldNameGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z][a-z0-9_]{0,7}`)
}

// ScalarGen generates the scalar values documents carry.
func ScalarGen() *rapid.Generator[any] {
	return rapid.OneOf(
		rapid.Map(rapid.Int(), func(v int) any { return v }),
		rapid.Map(rapid.Float64Range(-1e9, 1e9), func(v float64) any { return v }),
		rapid.Map(rapid.String(), func(v string) any { return v }),
		rapid.Map(rapid.Bool(), func(v bool) any { return v }),
	)
}

// RecordGen generates flat Records with up to maxFields scalar fields.
func RecordGen(maxFields int) *rapid.Generator[record.Record] {
	return rapid.Custom(func(t *rapid.T) record.Record {
		fields := rapid.MapOfN(FieldNameGen(), ScalarGen(), 0, maxFields).Draw(t, "fields")
		return record.New(fields)
	})
}

// RecordWithFieldGen generates Records that contain field name holding an int.
func RecordWithFieldGen(name string, maxFields int) *rapid.Generator[record.Record] {
	return rapid.Custom(func(t *rapid.T) record.Record {
		r := RecordGen(maxFields).Draw(t, "base")
		return r.With(name, rapid.Int().Draw(t, name))
	})
}

// NumericTextGen generates strings that parse as float64 and format back unchanged.
func NumericTextGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		whole := rapid.IntRange(-100000, 100000).Draw(t, "whole")
		frac := rapid.IntRange(1, 9).Draw(t, "frac")
		return rapid.SampledFrom([]string{
			strconv.Itoa(whole),
			strconv.Itoa(whole) + "." + strconv.Itoa(frac),
		}).Draw(t, "text")
	})
}

// NonNumericTextGen generates strings that never parse as a number.
func NonNumericTextGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[g-z]{1,10}`)
}
