package profunctor

import (
	"fmt"

	"github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/functional"
)

// accumulator wraps an extraction rule. It never produces a B-typed value,
// so Dimap drops the output adapter and First drops the second component.
// err is set once an unsupported capability has been requested; every later
// run fails with it before any rule executes.
type accumulator struct {
	run rule
	err error
}

func (a accumulator) Dimap(pre, _ rule) Profunctor {
	if a.err != nil {
		return a
	}
	return accumulator{run: func(x any) (any, error) {
		v, err := pre(x)
		if err != nil {
			return nil, err
		}
		return a.run(v)
	}}
}

func (a accumulator) First() Profunctor {
	if a.err != nil {
		return a
	}
	return accumulator{run: func(x any) (any, error) {
		return a.run(x.(pair).first)
	}}
}

// Left is not available: an accumulator has no value to report for the
// unfocused branch.
func (a accumulator) Left() Profunctor {
	if a.err != nil {
		return a
	}
	return accumulator{err: errors.UnsupportedCapability(string(KindAccumulator), "left")}
}

// Accumulator wraps run as an extracting profunctor with result type R.
// B is phantom.
func Accumulator[R, A, B any](run func(A) R) P[A, B] {
	return P[A, B]{impl: accumulator{run: func(x any) (any, error) {
		return run(as[A](x)), nil
	}}}
}

// Getter is the identity Accumulator.
func Getter[A any]() P[A, A] {
	return Accumulator[A, A, A](functional.Identity[A])
}

// Collect runs an Accumulator on a and returns its result.
func Collect[R, A, B any](p P[A, B], a A) (R, error) {
	var zero R
	acc, ok := p.impl.(accumulator)
	if !ok {
		return zero, kindMismatch(KindAccumulator, p.impl)
	}
	if acc.err != nil {
		return zero, acc.err
	}
	out, err := acc.run(a)
	if err != nil {
		return zero, err
	}
	if out == nil {
		return zero, nil
	}
	r, ok := out.(R)
	if !ok {
		return zero, errors.New(errors.ErrCodeKindMismatch, "accumulator result has unexpected type").
			WithDetail("want", fmt.Sprintf("%T", zero)).
			WithDetail("got", fmt.Sprintf("%T", out))
	}
	return r, nil
}

func kindMismatch(want Kind, got Profunctor) error {
	return errors.KindMismatch(string(want), string(kindOf(got)))
}
