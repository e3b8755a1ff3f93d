package record

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/authcorp/optics/errors"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

// Supported document formats.
const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatMsgpack Format = "msgpack"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatMsgpack}

// ParseFormat parses a format name. "yml" and "mpk" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "msgpack", "mpk":
		return FormatMsgpack, nil
	default:
		return "", errors.InvalidArgument("unknown document format").WithDetail("format", s)
	}
}

// Codec encodes and decodes Records in one format.
type Codec struct {
	Format Format
	Pretty bool
	Indent int
}

// NewCodec creates a codec with two-space indentation.
func NewCodec(format Format) *Codec {
	return &Codec{Format: format, Indent: 2}
}

// WithPretty enables pretty printing where the format supports it.
func (c *Codec) WithPretty() *Codec {
	c.Pretty = true
	return c
}

// Decode parses a document whose top level is a mapping.
func (c *Codec) Decode(data []byte) (Record, error) {
	var (
		fields map[string]any
		err    error
	)
	switch c.Format {
	case FormatJSON:
		err = json.Unmarshal(data, &fields)
	case FormatYAML:
		err = yaml.Unmarshal(data, &fields)
	case FormatTOML:
		err = toml.Unmarshal(data, &fields)
	case FormatMsgpack:
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.UseLooseInterfaceDecoding(true)
		err = dec.Decode(&fields)
	default:
		return Record{}, errors.InvalidArgument("unknown document format").WithDetail("format", string(c.Format))
	}
	if err != nil {
		return Record{}, errors.Decode(string(c.Format), err)
	}
	return New(fields), nil
}

// Encode serializes r.
func (c *Codec) Encode(r Record) ([]byte, error) {
	m := r.ToMap()
	var buf bytes.Buffer
	switch c.Format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		if c.Pretty {
			enc.SetIndent("", strings.Repeat(" ", c.Indent))
		}
		if err := enc.Encode(m); err != nil {
			return nil, errors.Encode(string(c.Format), err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(c.Indent)
		if err := enc.Encode(m); err != nil {
			return nil, errors.Encode(string(c.Format), err)
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Encode(string(c.Format), err)
		}
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		enc.Indent = strings.Repeat(" ", c.Indent)
		if err := enc.Encode(m); err != nil {
			return nil, errors.Encode(string(c.Format), err)
		}
	case FormatMsgpack:
		enc := msgpack.NewEncoder(&buf)
		enc.SetSortMapKeys(true)
		if err := enc.Encode(m); err != nil {
			return nil, errors.Encode(string(c.Format), err)
		}
	default:
		return nil, errors.InvalidArgument("unknown document format").WithDetail("format", string(c.Format))
	}
	return buf.Bytes(), nil
}

// Decode is a convenience wrapper around NewCodec(format).Decode.
func Decode(format Format, data []byte) (Record, error) {
	return NewCodec(format).Decode(data)
}

// Encode is a convenience wrapper around NewCodec(format).Encode.
func Encode(format Format, r Record) ([]byte, error) {
	return NewCodec(format).Encode(r)
}
