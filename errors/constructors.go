package errors

import "fmt"

// New creates a new OpticError with the given code and message.
func New(code ErrorCode, message string) *OpticError {
	return &OpticError{
		Code:    code,
		Message: message,
	}
}

// MissingField reports a field name absent from a structure.
func MissingField(name string) *OpticError {
	return New(ErrCodeMissingField, "missing field").WithDetail("field", name)
}

// FieldType reports a field whose value does not have the type the optic focuses on.
func FieldType(name, want string, got any) *OpticError {
	return New(ErrCodeFieldType, "field has unexpected type").
		WithDetail("field", name).
		WithDetail("want", want).
		WithDetail("got", fmt.Sprintf("%T", got))
}

// UnsupportedCapability reports a capability a profunctor kind does not provide.
func UnsupportedCapability(kind, capability string) *OpticError {
	return New(ErrCodeUnsupportedCapability, capability+" is not supported by "+kind).
		WithDetail("kind", kind).
		WithDetail("capability", capability)
}

// KindMismatch reports a terminal operation applied to the wrong profunctor kind.
func KindMismatch(want, got string) *OpticError {
	return New(ErrCodeKindMismatch, "expected "+want+" profunctor").
		WithDetail("want", want).
		WithDetail("got", got)
}

// InvalidPath reports a malformed optic path expression.
func InvalidPath(path, reason string) *OpticError {
	return New(ErrCodeInvalidPath, reason).WithDetail("path", path)
}

// InvalidArgument reports a bad argument to a tooling operation.
func InvalidArgument(message string) *OpticError {
	return New(ErrCodeInvalidArgument, message)
}

// Decode wraps a document decoding failure.
func Decode(format string, cause error) *OpticError {
	return New(ErrCodeDecode, "decode failed").WithDetail("format", format).WithCause(cause)
}

// Encode wraps a document encoding failure.
func Encode(format string, cause error) *OpticError {
	return New(ErrCodeEncode, "encode failed").WithDetail("format", format).WithCause(cause)
}
