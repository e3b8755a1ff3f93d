package profunctor

import "github.com/authcorp/optics/functional"

// transform wraps a total function. Panics raised by it are not recovered.
type transform struct {
	run rule
}

func (t transform) Dimap(pre, post rule) Profunctor {
	return transform{run: func(x any) (any, error) {
		a, err := pre(x)
		if err != nil {
			return nil, err
		}
		b, err := t.run(a)
		if err != nil {
			return nil, err
		}
		return post(b)
	}}
}

func (t transform) First() Profunctor {
	return transform{run: func(x any) (any, error) {
		in := x.(pair)
		b, err := t.run(in.first)
		if err != nil {
			return nil, err
		}
		return pair{first: b, second: in.second}, nil
	}}
}

func (t transform) Left() Profunctor {
	return transform{run: func(x any) (any, error) {
		in := x.(sum)
		if !in.focused {
			return in, nil
		}
		b, err := t.run(in.value)
		if err != nil {
			return nil, err
		}
		return sum{value: b, focused: true}, nil
	}}
}

// Transform wraps run as an updating profunctor.
func Transform[A, B any](run func(A) B) P[A, B] {
	return P[A, B]{impl: transform{run: func(x any) (any, error) {
		return run(as[A](x)), nil
	}}}
}

// Setter is the Transform that replaces every focus with v.
func Setter[A any](v A) P[A, A] {
	return Transform(functional.Const[A](v))
}

// Run applies a Transform to a.
func Run[A, B any](p P[A, B], a A) (B, error) {
	var zero B
	t, ok := p.impl.(transform)
	if !ok {
		return zero, kindMismatch(KindTransform, p.impl)
	}
	out, err := t.run(a)
	if err != nil {
		return zero, err
	}
	return as[B](out), nil
}
