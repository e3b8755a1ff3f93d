// Package record provides Record, an immutable structure with named fields.
//
// A Record is never modified in place. With and Without return a new Record
// that shares nothing mutable with the receiver, so a Record can be handed to
// any number of goroutines and optics without coordination.
package record

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Record is an immutable mapping from field names to values.
// Nested maps are held as nested Records. The zero value is an empty Record.
type Record struct {
	fields map[string]any
}

// New builds a Record from fields. The map is copied; nested
// map[string]any values (also inside slices) become Records.
func New(fields map[string]any) Record {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = normalize(v)
	}
	return Record{fields: out}
}

// Of builds a Record from alternating name/value arguments.
// It panics on an odd argument count or a non-string name.
func Of(kv ...any) Record {
	if len(kv)%2 != 0 {
		panic("record.Of: odd number of arguments")
	}
	fields := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("record.Of: field name %v is %T, not string", kv[i], kv[i]))
		}
		fields[name] = kv[i+1]
	}
	return New(fields)
}

func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return New(val)
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			m[fmt.Sprint(k)] = item
		}
		return New(m)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}

// Get returns the value of a field. Slices are returned as copies.
func (r Record) Get(name string) (any, bool) {
	v, ok := r.fields[name]
	return detach(v), ok
}

// detach copies the slices of v. Records need no copy.
func detach(v any) any {
	val, ok := v.([]any)
	if !ok {
		return v
	}
	out := make([]any, len(val))
	for i, item := range val {
		out[i] = detach(item)
	}
	return out
}

// Has reports whether the field exists.
func (r Record) Has(name string) bool {
	_, ok := r.fields[name]
	return ok
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// Names returns the field names in sorted order.
func (r Record) Names() []string {
	names := make([]string, 0, len(r.fields))
	for k := range r.fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// With returns a copy of r with field name set to value. Every other field
// is carried over unchanged.
func (r Record) With(name string, value any) Record {
	out := make(map[string]any, len(r.fields)+1)
	for k, v := range r.fields {
		out[k] = v
	}
	out[name] = normalize(value)
	return Record{fields: out}
}

// Without returns a copy of r lacking field name.
func (r Record) Without(name string) Record {
	out := make(map[string]any, len(r.fields))
	for k, v := range r.fields {
		if k != name {
			out[k] = v
		}
	}
	return Record{fields: out}
}

// ToMap converts r into plain nested maps suitable for encoders.
func (r Record) ToMap() map[string]any {
	out := make(map[string]any, len(r.fields))
	for k, v := range r.fields {
		out[k] = denormalize(v)
	}
	return out
}

func denormalize(v any) any {
	switch val := v.(type) {
	case Record:
		return val.ToMap()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = denormalize(item)
		}
		return out
	default:
		return v
	}
}

// Equal reports whether r and other hold the same fields with deeply equal values.
func (r Record) Equal(other Record) bool {
	return reflect.DeepEqual(r.ToMap(), other.ToMap())
}

// String renders r as {name: value, ...} with fields sorted by name.
func (r Record) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range r.Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		v := r.fields[name]
		if s, ok := v.(string); ok {
			fmt.Fprintf(&b, "%s: %q", name, s)
		} else {
			fmt.Fprintf(&b, "%s: %v", name, v)
		}
	}
	b.WriteByte('}')
	return b.String()
}
