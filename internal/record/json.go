package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decode parses a JSON array of flat objects, keeping field order. Anything
// else is reported as a *FormatError naming the first offending element.
func Decode(data []byte) ([]Record, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &FormatError{Size: -1, Index: -1, Shape: typeErr.Value, Want: "array of objects"}
		}
		return nil, fmt.Errorf("decode records: %w", err)
	}
	if raw == nil {
		return nil, &FormatError{Size: -1, Index: -1, Shape: "null", Want: "array of objects"}
	}

	out := make([]Record, 0, len(raw))
	for i, elem := range raw {
		rec, err := decodeObject(elem)
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				fe.Size = len(raw)
				fe.Index = i
				return nil, fe
			}
			return nil, fmt.Errorf("decode record %d of %d: %w", i, len(raw), err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Encode writes records as an indented JSON array. Non-ASCII text is kept
// as is.
func Encode(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(records)
}

func (r *Record) UnmarshalJSON(b []byte) error {
	rec, err := decodeObject(b)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, f.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		switch f.Value.Kind {
		case KindString:
			if err := writeJSONString(&buf, f.Value.Text); err != nil {
				return nil, err
			}
		case KindNumber, KindBool:
			buf.WriteString(f.Value.Text)
		default:
			buf.WriteString("null")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

func decodeObject(b []byte) (Record, error) {
	if shape := shapeOf(b); shape != "object" {
		return Record{}, &FormatError{Shape: shape, Want: "object"}
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if _, err := dec.Token(); err != nil {
		return Record{}, err
	}

	var fields []Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Record{}, err
		}
		name, ok := tok.(string)
		if !ok {
			return Record{}, fmt.Errorf("unexpected object key %v", tok)
		}

		tok, err = dec.Token()
		if err != nil {
			return Record{}, err
		}
		var value Value
		switch v := tok.(type) {
		case nil:
			value = Null()
		case string:
			value = String(v)
		case json.Number:
			value = Number(v.String())
		case bool:
			value = Bool(v)
		case json.Delim:
			shape := "object"
			if v == '[' {
				shape = "array"
			}
			return Record{}, &FormatError{Field: name, Shape: shape, Want: "scalar"}
		default:
			return Record{}, fmt.Errorf("unexpected value %v for %q", tok, name)
		}
		fields = append(fields, Field{Name: name, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return Record{}, err
	}
	return New(fields...), nil
}

func shapeOf(b []byte) string {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return "empty"
	}
	switch b[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
