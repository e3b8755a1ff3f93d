package record_test

import (
	"testing"

	"github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/record"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRecordWithLeavesReceiverUnchanged(t *testing.T) {
	original := record.Of("counter", 0, "name", "kissa")
	updated := original.With("counter", 1)

	got, _ := original.Get("counter")
	assert.Equal(t, 0, got)
	got, _ = updated.Get("counter")
	assert.Equal(t, 1, got)
	name, _ := updated.Get("name")
	assert.Equal(t, "kissa", name)
}

func TestRecordWithout(t *testing.T) {
	r := record.Of("a", 1, "b", 2)
	out := r.Without("a")

	assert.False(t, out.Has("a"))
	assert.True(t, r.Has("a"))
	assert.Equal(t, []string{"b"}, out.Names())
}

func TestRecordNestedMapsBecomeRecords(t *testing.T) {
	r := record.New(map[string]any{
		"substate": map[string]any{"counter": 10},
		"items":    []any{map[string]any{"id": 1}},
	})

	sub, ok := r.Get("substate")
	require.True(t, ok)
	require.IsType(t, record.Record{}, sub)
	assert.Equal(t, "{counter: 10}", sub.(record.Record).String())

	items, _ := r.Get("items")
	require.IsType(t, record.Record{}, items.([]any)[0])

	assert.Equal(t, map[string]any{
		"substate": map[string]any{"counter": 10},
		"items":    []any{map[string]any{"id": 1}},
	}, r.ToMap())
}

func TestRecordNewCopiesInput(t *testing.T) {
	fields := map[string]any{"counter": 1}
	r := record.New(fields)
	fields["counter"] = 2

	got, _ := r.Get("counter")
	assert.Equal(t, 1, got)
}

func TestRecordString(t *testing.T) {
	r := record.Of("b", "6.28", "a", record.Of("c", 1))
	assert.Equal(t, `{a: {c: 1}, b: "6.28"}`, r.String())
	assert.Equal(t, "{}", record.Record{}.String())
}

func TestRecordOfPanicsOnOddArguments(t *testing.T) {
	assert.Panics(t, func() { record.Of("a") })
	assert.Panics(t, func() { record.Of(1, 2) })
}

func TestRecordEqualWithCmp(t *testing.T) {
	a := record.Of("x", 1, "y", record.Of("z", "w"))
	b := record.New(map[string]any{"y": map[string]any{"z": "w"}, "x": 1})

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("records differ (-a +b):\n%s", diff)
	}
	assert.False(t, a.Equal(a.With("x", 2)))
	assert.True(t, record.Record{}.Equal(record.New(nil)))
}

// TestRecordWithProperties checks With against a plain map model.
func TestRecordWithProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		model := rapid.MapOf(rapid.StringMatching(`[a-z]{1,6}`), rapid.Int()).Draw(t, "fields")
		name := rapid.StringMatching(`[a-z]{1,6}`).Draw(t, "name")
		value := rapid.Int().Draw(t, "value")

		fields := make(map[string]any, len(model))
		for k, v := range model {
			fields[k] = v
		}
		r := record.New(fields)
		out := r.With(name, value)

		if got, _ := out.Get(name); got != value {
			t.Fatalf("With(%q) = %v, want %d", name, got, value)
		}
		for k, v := range model {
			if k == name {
				continue
			}
			if got, _ := out.Get(k); got != v {
				t.Fatalf("field %q changed: %v -> %v", k, v, got)
			}
		}
		if !r.Equal(record.New(fields)) {
			t.Fatal("receiver was modified")
		}
	})
}

func TestCodecRoundTrip(t *testing.T) {
	r := record.Of("counter", 3.14, "name", "kissa", "substate", record.Of("enabled", true))

	for _, format := range record.Formats {
		t.Run(string(format), func(t *testing.T) {
			data, err := record.NewCodec(format).WithPretty().Encode(r)
			require.NoError(t, err)

			decoded, err := record.Decode(format, data)
			require.NoError(t, err)

			name, _ := decoded.Get("name")
			assert.Equal(t, "kissa", name)
			counter, _ := decoded.Get("counter")
			assert.InDelta(t, 3.14, counter, 1e-12)
			sub, ok := decoded.Get("substate")
			require.True(t, ok)
			enabled, _ := sub.(record.Record).Get("enabled")
			assert.Equal(t, true, enabled)
		})
	}
}

func TestCodecDecodeErrors(t *testing.T) {
	_, err := record.Decode(record.FormatJSON, []byte("{not json"))
	assert.ErrorIs(t, err, errors.ErrDecode)

	_, err = record.Decode(record.Format("xml"), []byte("<a/>"))
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestCodecEncodeErrors(t *testing.T) {
	_, err := record.Encode(record.FormatJSON, record.Of("events", make(chan int)))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrEncode)

	code, ok := errors.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeEncode, code)
}

func TestRecordGetCopiesSlices(t *testing.T) {
	r := record.Of("xs", []any{1, 2, []any{3}})

	v, ok := r.Get("xs")
	require.True(t, ok)
	xs := v.([]any)
	xs[0] = 99
	xs[2].([]any)[0] = 99

	assert.Equal(t, "{xs: [1 2 [3]]}", r.String())
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]record.Format{
		"json": record.FormatJSON,
		"YAML": record.FormatYAML,
		"yml":  record.FormatYAML,
		"toml": record.FormatTOML,
		"mpk":  record.FormatMsgpack,
	} {
		got, err := record.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := record.ParseFormat("ini")
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}
