// Package record holds the flat schedule record model: an ordered list of
// named scalar fields, as exported from the timetable system.
package record

import "strconv"

type Kind uint8

const (
	// KindAbsent marks a field the record does not carry. It is the zero Value.
	KindAbsent Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a scalar field value. Numbers keep their JSON text so that
// 2 and 2.0 stay distinct, the same way the source data wrote them.
type Value struct {
	Kind Kind
	Text string
}

var Absent = Value{}

func Null() Value { return Value{Kind: KindNull} }
func String(s string) Value { return Value{Kind: KindString, Text: s} }
func Number(text string) Value { return Value{Kind: KindNumber, Text: text} }

func Bool(b bool) Value {
	return Value{Kind: KindBool, Text: strconv.FormatBool(b)}
}

func (v Value) IsPresent() bool { return v.Kind != KindAbsent }

// Str returns the text of a string value. Other kinds report false.
func (v Value) Str() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.Text, true
}

type Field struct {
	Name  string
	Value Value
}

// Record is immutable once built; accessors hand out copies.
type Record struct {
	fields []Field
}

// New builds a record keeping the first position of every field name. A
// repeated name overrides the earlier value, as a JSON object would.
func New(fields ...Field) Record {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		if !f.Value.IsPresent() {
			continue
		}
		if i := indexOf(out, f.Name); i >= 0 {
			out[i].Value = f.Value
			continue
		}
		out = append(out, f)
	}
	return Record{fields: out}
}

// FromPairs builds a record of string fields from name, value pairs.
// A trailing name without a value is ignored.
func FromPairs(pairs ...string) Record {
	fields := make([]Field, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		fields = append(fields, Field{Name: pairs[i], Value: String(pairs[i+1])})
	}
	return New(fields...)
}

func (r Record) Len() int { return len(r.fields) }

func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Get returns Absent when the record has no such field.
func (r Record) Get(name string) Value {
	if i := indexOf(r.fields, name); i >= 0 {
		return r.fields[i].Value
	}
	return Absent
}

func (r Record) Has(name string) bool {
	return indexOf(r.fields, name) >= 0
}

// Str returns the string value of a field; absent, null and non-string
// values report false.
func (r Record) Str(name string) (string, bool) {
	return r.Get(name).Str()
}

func indexOf(fields []Field, name string) int {
	for i, f := range fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}
