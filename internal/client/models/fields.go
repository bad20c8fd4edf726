package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrIncorrectField = errors.New("field must be name=value")

// Field is one name=value pair typed on the command line.
type Field struct {
	Name  string
	Value string
}

// FieldsFromArgs splits every arg on its first '='. Names are trimmed,
// values are kept verbatim.
func FieldsFromArgs(args []string) ([]Field, error) {
	fields := make([]Field, len(args))
	for n, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrIncorrectField, arg)
		}
		fields[n] = Field{Name: name, Value: value}
	}
	return fields, nil
}

// ApplyFields sets the JSON fields of v named in fields. A value is first
// read as a JSON literal (numbers, booleans, arrays, null) and, if that does
// not fit the field, as a plain string. Unknown names are an error.
func ApplyFields[T any](v *T, fields []Field) error {
	for _, f := range fields {
		name, err := json.Marshal(f.Name)
		if err != nil {
			return err
		}

		literal := strings.TrimSpace(f.Value)
		if literal != "" && applyRaw(v, name, []byte(literal)) == nil {
			continue
		}

		quoted, err := json.Marshal(f.Value)
		if err != nil {
			return err
		}
		if err := applyRaw(v, name, quoted); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
	}
	return nil
}

func applyRaw[T any](v *T, name, raw []byte) error {
	doc := make([]byte, 0, len(name)+len(raw)+3)
	doc = append(doc, '{')
	doc = append(doc, name...)
	doc = append(doc, ':')
	doc = append(doc, raw...)
	doc = append(doc, '}')

	// decode into a copy so a failed attempt leaves v untouched
	tmp := *v
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tmp); err != nil {
		return err
	}
	*v = tmp
	return nil
}
