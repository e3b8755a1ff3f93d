package functional

// Either holds exactly one of two values.
// Focused carries a successfully narrowed value; Unfocused carries the
// original value a narrowing could not handle.
type Either[L, R any] struct {
	focused   L
	unfocused R
	isFocused bool
}

// Focused creates an Either holding a narrowed value.
func Focused[L, R any](value L) Either[L, R] {
	return Either[L, R]{focused: value, isFocused: true}
}

// Unfocused creates an Either holding the original value.
func Unfocused[L, R any](value R) Either[L, R] {
	return Either[L, R]{unfocused: value}
}

// IsFocused returns true if Either holds the Focused variant.
func (e Either[L, R]) IsFocused() bool {
	return e.isFocused
}

// Match executes one of two functions based on the variant.
func (e Either[L, R]) Match(onFocused func(L), onUnfocused func(R)) {
	if e.isFocused {
		onFocused(e.focused)
	} else {
		onUnfocused(e.unfocused)
	}
}

// Fold eliminates an Either into a single value. Both branches are required.
func Fold[L, R, U any](e Either[L, R], onFocused func(L) U, onUnfocused func(R) U) U {
	if e.isFocused {
		return onFocused(e.focused)
	}
	return onUnfocused(e.unfocused)
}

// MapFocused applies fn to a Focused value and leaves Unfocused values untouched.
func MapFocused[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	if e.isFocused {
		return Focused[U, R](fn(e.focused))
	}
	return Unfocused[U](e.unfocused)
}

// Swap exchanges the variants.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isFocused {
		return Unfocused[R](e.focused)
	}
	return Focused[R, L](e.unfocused)
}
