// Package query compiles path expressions such as "substate.counter:float"
// into optics over records and evaluates them.
//
// A path is a dot-separated list of field names, optionally followed by a
// colon and a prism name selecting how the focused value is read.
package query

import (
	"strings"

	"github.com/authcorp/optics/errors"
	"github.com/authcorp/optics/optics"
	"github.com/authcorp/optics/record"
)

// Focus names the prism a query reads its value through.
type Focus string

// Focus kinds. FocusValue reads the field as is.
const (
	FocusValue    Focus = ""
	FocusFloat    Focus = "float"
	FocusInt      Focus = "int"
	FocusBool     Focus = "bool"
	FocusDuration Focus = "duration"
	FocusText     Focus = "text"
)

var foci = map[string]Focus{
	"float":    FocusFloat,
	"int":      FocusInt,
	"bool":     FocusBool,
	"duration": FocusDuration,
	"text":     FocusText,
}

// Query is a parsed path expression.
type Query struct {
	Fields []string
	Focus  Focus
}

// Parse parses a path expression.
func Parse(expr string) (Query, error) {
	fieldPart, prism, hasPrism := strings.Cut(expr, ":")
	if strings.TrimSpace(fieldPart) == "" {
		return Query{}, errors.InvalidPath(expr, "empty path")
	}

	fields := strings.Split(fieldPart, ".")
	for _, f := range fields {
		if f == "" {
			return Query{}, errors.InvalidPath(expr, "empty field name")
		}
	}

	q := Query{Fields: fields}
	if hasPrism {
		focus, ok := foci[strings.ToLower(prism)]
		if !ok {
			return Query{}, errors.InvalidPath(expr, "unknown prism").WithDetail("prism", prism)
		}
		q.Focus = focus
	}
	return q, nil
}

// MustParse is Parse for expressions known to be valid. It panics otherwise.
func MustParse(expr string) Query {
	return errors.Must(Parse(expr))
}

// String renders q back into path syntax.
func (q Query) String() string {
	s := strings.Join(q.Fields, ".")
	if q.Focus != FocusValue {
		s += ":" + string(q.Focus)
	}
	return s
}

// Value is the optic onto the raw field value.
func (q Query) Value() optics.Optic[record.Record, any] {
	return optics.Path[any](q.Fields[0], q.Fields[1:]...)
}

// Text is the optic onto the field as a string. Applying it fails with
// FIELD_TYPE when the field holds something else.
func (q Query) Text() optics.Optic[record.Record, string] {
	return optics.Path[string](q.Fields[0], q.Fields[1:]...)
}
