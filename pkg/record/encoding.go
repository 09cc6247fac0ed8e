package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fieldDoc is the wire shape of a field in JSON and YAML schema documents.
type fieldDoc struct {
	Name     string `json:"name" yaml:"name"`
	Kind     Kind   `json:"kind" yaml:"kind"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
}

// UnmarshalYAML decodes a field mapping by hand: an unquoted null kind
// resolves to the YAML null tag and would never reach Kind.UnmarshalText.
func (f *fieldDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: field must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "name":
			if err := val.Decode(&f.Name); err != nil {
				return err
			}
		case "required":
			if err := val.Decode(&f.Required); err != nil {
				return err
			}
		case "kind":
			if val.ShortTag() == "!!null" {
				f.Kind = KindNull
				continue
			}
			k, err := ParseKind(val.Value)
			if err != nil {
				return fmt.Errorf("line %d: %w", val.Line, err)
			}
			f.Kind = k
		default:
			return fmt.Errorf("line %d: unknown field key %q", key.Line, key.Value)
		}
	}
	return nil
}

// UnmarshalJSON maps a null kind to KindNull, matching the YAML form.
// Unknown keys are rejected.
func (f *fieldDoc) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name     string          `json:"name"`
		Kind     json.RawMessage `json:"kind"`
		Required bool            `json:"required"`
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	f.Name, f.Required = raw.Name, raw.Required
	switch {
	case len(raw.Kind) == 0:
		f.Kind = KindUnknown
	case bytes.Equal(bytes.TrimSpace(raw.Kind), []byte("null")):
		f.Kind = KindNull
	default:
		if err := json.Unmarshal(raw.Kind, &f.Kind); err != nil {
			return err
		}
	}
	return nil
}

type schemaDoc struct {
	Fields []fieldDoc `json:"fields" yaml:"fields"`
}

func (s *Schema) doc() schemaDoc {
	d := schemaDoc{Fields: make([]fieldDoc, 0, s.Len())}
	for _, f := range s.Fields() {
		d.Fields = append(d.Fields, fieldDoc{Name: f.Name, Kind: f.Kind, Required: f.Required})
	}
	return d
}

func (d schemaDoc) schema() (*Schema, error) {
	specs := make([]FieldSpec, len(d.Fields))
	for i, f := range d.Fields {
		specs[i] = FieldSpec{Name: f.Name, Kind: f.Kind, Required: f.Required}
	}
	return NewSchema(specs...)
}

func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.doc())
}

func (s *Schema) UnmarshalJSON(b []byte) error {
	parsed, err := ParseJSON(b)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

func (s *Schema) MarshalYAML() (any, error) {
	return s.doc(), nil
}

func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	var d schemaDoc
	if err := node.Decode(&d); err != nil {
		return errors.Join(ErrInvalidSchema, err)
	}
	parsed, err := d.schema()
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

// ParseJSON decodes a schema document. Unknown keys are rejected.
func ParseJSON(b []byte) (*Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	var d schemaDoc
	if err := dec.Decode(&d); err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after schema document", ErrInvalidSchema)
	}
	return d.schema()
}

// ParseYAML decodes a schema document. Unknown keys are rejected.
func ParseYAML(b []byte) (*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var d schemaDoc
	if err := dec.Decode(&d); err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	return d.schema()
}

// Format identifies a schema document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the document format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Parse decodes a schema document in the given format.
func Parse(format Format, b []byte) (*Schema, error) {
	switch format {
	case FormatJSON:
		return ParseJSON(b)
	case FormatYAML:
		return ParseYAML(b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// LoadFile reads a schema from a .json, .yaml or .yml file.
func LoadFile(path string) (*Schema, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(format, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// DecodeJSON reads exactly one JSON object from r. Numbers are kept as
// json.Number so integers and floats remain distinguishable.
func DecodeJSON(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, errors.Join(ErrInvalidRecord, err)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidRecord)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidRecord)
	}
	return m, nil
}
