// Package functional provides the small algebraic carriers the optics
// packages are built from: Either for sum types, Pair for product types,
// and plain function combinators.
package functional

// Identity returns its argument.
func Identity[T any](v T) T {
	return v
}

// Const returns a function that ignores its input and returns v.
func Const[A, B any](v B) func(A) B {
	return func(A) B { return v }
}

// ComposeFunc composes two functions left to right: ComposeFunc(f, g)(x) == g(f(x)).
func ComposeFunc[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
