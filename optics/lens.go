package optics

import (
	"fmt"

	"github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/profunctor"
	"github.com/authcorp/optics/record"
)

// Lens focuses on one part of S through typed accessors. set receives the
// structure by value and returns the updated copy.
func Lens[S, A any](get func(S) A, set func(S, A) S) Optic[S, A] {
	return func(p profunctor.P[A, A]) profunctor.P[S, S] {
		return profunctor.Dimap(profunctor.First[A, A, S](p),
			func(s S) functional.Pair[A, S] { return functional.NewPair(get(s), s) },
			func(q functional.Pair[A, S]) S { return set(q.Second, q.First) },
		)
	}
}

// Field focuses on the field name of a Record.
//
// Construction never fails. Applying the optic fails with MISSING_FIELD when
// the field is absent and with FIELD_TYPE when its value is not an A. A nil
// value is accepted only when A is an interface type.
func Field[A any](name string) Optic[record.Record, A] {
	return func(p profunctor.P[A, A]) profunctor.P[record.Record, record.Record] {
		return profunctor.DimapE(profunctor.First[A, A, record.Record](p),
			func(r record.Record) (functional.Pair[A, record.Record], error) {
				v, ok := r.Get(name)
				if !ok {
					return functional.Pair[A, record.Record]{}, errors.MissingField(name)
				}
				a, ok := cast[A](v)
				if !ok {
					return functional.Pair[A, record.Record]{}, errors.FieldType(name, typeName[A](), v)
				}
				return functional.NewPair(a, r), nil
			},
			func(q functional.Pair[A, record.Record]) record.Record {
				return q.Second.With(name, q.First)
			},
		)
	}
}

// Path focuses on a nested Record field: Path[int]("a", "b") is
// Compose(Field[record.Record]("a"), Field[int]("b")).
func Path[A any](first string, rest ...string) Optic[record.Record, A] {
	if len(rest) == 0 {
		return Field[A](first)
	}
	o := Field[record.Record](first)
	for _, name := range rest[:len(rest)-1] {
		o = Compose(o, Field[record.Record](name))
	}
	return Compose(o, Field[A](rest[len(rest)-1]))
}

// Key focuses on the value stored under key in a map. Updates copy the map.
func Key[K comparable, V any](key K) Optic[map[K]V, V] {
	return func(p profunctor.P[V, V]) profunctor.P[map[K]V, map[K]V] {
		return profunctor.DimapE(profunctor.First[V, V, map[K]V](p),
			func(m map[K]V) (functional.Pair[V, map[K]V], error) {
				v, ok := m[key]
				if !ok {
					return functional.Pair[V, map[K]V]{}, errors.MissingField(fmt.Sprint(key))
				}
				return functional.NewPair(v, m), nil
			},
			func(q functional.Pair[V, map[K]V]) map[K]V {
				result := make(map[K]V, len(q.Second))
				for k, v := range q.Second {
					result[k] = v
				}
				result[key] = q.First
				return result
			},
		)
	}
}

// Index focuses on element i of a slice. Updates copy the slice.
func Index[T any](i int) Optic[[]T, T] {
	return func(p profunctor.P[T, T]) profunctor.P[[]T, []T] {
		return profunctor.DimapE(profunctor.First[T, T, []T](p),
			func(s []T) (functional.Pair[T, []T], error) {
				if i < 0 || i >= len(s) {
					return functional.Pair[T, []T]{}, errors.New(errors.ErrCodeMissingField, "index out of range").
						WithDetail("index", i).
						WithDetail("len", len(s))
				}
				return functional.NewPair(s[i], s), nil
			},
			func(q functional.Pair[T, []T]) []T {
				result := make([]T, len(q.Second))
				copy(result, q.Second)
				result[i] = q.First
				return result
			},
		)
	}
}

// Iso focuses through a lossless change of representation.
func Iso[S, A any](get func(S) A, reverse func(A) S) Optic[S, A] {
	return func(p profunctor.P[A, A]) profunctor.P[S, S] {
		return profunctor.Dimap(p, get, reverse)
	}
}

func cast[A any](v any) (A, bool) {
	if a, ok := v.(A); ok {
		return a, true
	}
	// A boxed zero is nil only for interface types.
	var zero A
	return zero, v == nil && any(zero) == nil
}

func typeName[A any]() string {
	return fmt.Sprintf("%T", (*A)(nil))[1:]
}
