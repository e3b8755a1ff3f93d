package optics_test

import (
	"testing"
	"time"

	"github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/internal/testutil"
	"github.com/authcorp/optics/optics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func double(x float64) float64 { return x * 2.0 }

func TestFloatTextPrism(t *testing.T) {
	prism := optics.FloatText()

	t.Run("parses, transforms and renders", func(t *testing.T) {
		out, err := optics.Over(prism, "1.2", double)
		require.NoError(t, err)
		assert.Equal(t, "2.4", out)
	})

	t.Run("non-numeric input passes through", func(t *testing.T) {
		out, err := optics.Over(prism, "kissa", double)
		require.NoError(t, err)
		assert.Equal(t, "kissa", out)
	})
}

// TestPrismRoundTrip verifies that an identity transform renders numeric text back unchanged.
func TestPrismRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := testutil.NumericTextGen().Draw(t, "text")
		out, err := optics.Over(optics.FloatText(), text, functional.Identity[float64])
		if err != nil {
			t.Fatal(err)
		}
		if out != text {
			t.Fatalf("round trip changed %q into %q", text, out)
		}
	})
}

// TestPrismFallback verifies that unparseable input is returned verbatim and never reaches the rule.
func TestPrismFallback(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := testutil.NonNumericTextGen().Draw(t, "text")
		called := false
		out, err := optics.Over(optics.FloatText(), text, func(x float64) float64 {
			called = true
			return x + 1
		})
		if err != nil {
			t.Fatal(err)
		}
		if out != text || called {
			t.Fatalf("fallback violated: %q -> %q (rule called: %v)", text, out, called)
		}
	})
}

func TestIntAndBoolTextPrisms(t *testing.T) {
	out, err := optics.Over(optics.IntText(), "41", func(n int) int { return n + 1 })
	require.NoError(t, err)
	assert.Equal(t, "42", out)

	out, err = optics.Over(optics.IntText(), "4.1", func(n int) int { return n + 1 })
	require.NoError(t, err)
	assert.Equal(t, "4.1", out)

	out, err = optics.Over(optics.BoolText(), "true", func(b bool) bool { return !b })
	require.NoError(t, err)
	assert.Equal(t, "false", out)
}

func TestValuePrisms(t *testing.T) {
	cases := []struct {
		name string
		run  func(any) (any, error)
		in   any
		want any
	}{
		{"float from float64", overFloat, 3.14, "6.28"},
		{"float from text", overFloat, "1.2", "2.4"},
		{"float from int", overFloat, 21, "42"},
		{"float passes text through", overFloat, "kissa", "kissa"},
		{"float passes bool through", overFloat, true, true},
		{"int from integral float", overInt, 41.0, "42"},
		{"int rejects fractional float", overInt, 4.5, 4.5},
		{"int from text", overInt, " 7 ", "8"},
		{"bool from bool", overBool, false, "true"},
		{"bool passes number through", overBool, 1, 1},
		{"duration from text", overDuration, "1m", "2m0s"},
		{"duration from value", overDuration, time.Second, "2s"},
		{"duration passes nil through", overDuration, nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.run(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func overFloat(v any) (any, error) { return optics.Over(optics.Float(), v, double) }

func overInt(v any) (any, error) {
	return optics.Over(optics.Int(), v, func(n int) int { return n + 1 })
}

func overBool(v any) (any, error) {
	return optics.Over(optics.Bool(), v, func(b bool) bool { return !b })
}

func overDuration(v any) (any, error) {
	return optics.Over(optics.Duration(), v, func(d time.Duration) time.Duration { return d * 2 })
}

func TestViewThroughPrismFailsFast(t *testing.T) {
	_, err := optics.View(optics.FloatText(), "1.2")
	assert.ErrorIs(t, err, errors.ErrUnsupportedCapability)

	// Also when the optic could not have focused.
	_, err = optics.View(optics.FloatText(), "kissa")
	assert.ErrorIs(t, err, errors.ErrUnsupportedCapability)
}

func TestPreview(t *testing.T) {
	got, ok, err := optics.Preview(optics.FloatText(), "1.5")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1.5, got)

	got, ok, err = optics.Preview(optics.FloatText(), "kissa")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestPrismComposition(t *testing.T) {
	// A prism onto the Focused branch of an Either, composed with a text prism.
	focused := optics.Prism(
		func(e functional.Either[string, int]) functional.Either[string, functional.Either[string, int]] {
			return functional.Fold(e,
				functional.Focused[string, functional.Either[string, int]],
				func(int) functional.Either[string, functional.Either[string, int]] {
					return functional.Unfocused[string](e)
				},
			)
		},
		functional.Focused[string, int],
	)
	composed := optics.Compose(focused, optics.IntText())
	inc := func(n int) int { return n + 1 }

	out, err := optics.Over(composed, functional.Focused[string, int]("41"), inc)
	require.NoError(t, err)
	assert.Equal(t, functional.Focused[string, int]("42"), out)

	out, err = optics.Over(composed, functional.Focused[string, int]("abc"), inc)
	require.NoError(t, err)
	assert.Equal(t, functional.Focused[string, int]("abc"), out)

	out, err = optics.Over(composed, functional.Unfocused[string](7), inc)
	require.NoError(t, err)
	assert.Equal(t, functional.Unfocused[string](7), out)
}
