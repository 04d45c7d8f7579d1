package pipeline

import (
	"sort"
	"strconv"
	"strings"

	"timetable/internal/record"
	"timetable/internal/util"
)

// Key is the canonical encoding of a record's comparison tuple. Two records
// are duplicates iff their keys are equal.
type Key string

type KeyMode int

const (
	// KeyAllFields compares every (name, value) pair, sorted by name.
	KeyAllFields KeyMode = iota
	// KeyNamedFields compares the values of the configured fields in order.
	KeyNamedFields
)

type KeySpec struct {
	mode   KeyMode
	fields []string
}

func AllFields() KeySpec {
	return KeySpec{mode: KeyAllFields}
}

// ByFields keys records by the given fields in order. An empty list means
// AllFields.
func ByFields(fields ...string) KeySpec {
	if len(fields) == 0 {
		return AllFields()
	}
	cp := make([]string, len(fields))
	copy(cp, fields)
	return KeySpec{mode: KeyNamedFields, fields: cp}
}

// ParseKeySpec reads a comma separated field list.
func ParseKeySpec(csv string) KeySpec {
	return ByFields(util.SplitCSV(csv)...)
}

func (s KeySpec) Mode() KeyMode { return s.mode }

func (s KeySpec) Fields() []string {
	cp := make([]string, len(s.fields))
	copy(cp, s.fields)
	return cp
}

func (s KeySpec) String() string {
	if s.mode == KeyAllFields {
		return "all fields"
	}
	return strings.Join(s.fields, ",")
}

func (s KeySpec) Extract(r record.Record) Key {
	var b strings.Builder
	if s.mode == KeyNamedFields {
		for _, name := range s.fields {
			writeValue(&b, r.Get(name))
		}
		return Key(b.String())
	}

	fields := r.Fields()
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })
	for _, f := range fields {
		writeText(&b, f.Name)
		writeValue(&b, f.Value)
	}
	return Key(b.String())
}

// Each component is written as kind, length and text so that no two
// different tuples share an encoding.
func writeValue(b *strings.Builder, v record.Value) {
	b.WriteByte('0' + byte(v.Kind))
	writeText(b, v.Text)
}

func writeText(b *strings.Builder, s string) {
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
}
