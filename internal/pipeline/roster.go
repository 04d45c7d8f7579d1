package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"timetable/internal"
	"timetable/internal/record"
)

// ContactFunc produces a contact address for a full name.
type ContactFunc func(fullName string) string

// SharedContact gives every person the same address.
func SharedContact(address string) ContactFunc {
	return func(string) string { return address }
}

// Roster maps each distinct person to the address synthesized on first
// sight. Names keep first-occurrence order until Entries sorts them.
type Roster struct {
	names  []string
	emails map[string]string
}

// BuildRoster calls synth exactly once per distinct non-empty name.
// Absent, null, non-string and blank names are skipped.
func BuildRoster(records []record.Record, nameField string, synth ContactFunc) *Roster {
	r := &Roster{emails: map[string]string{}}
	for _, rec := range records {
		name, ok := rec.Str(nameField)
		if !ok || strings.TrimSpace(name) == "" {
			continue
		}
		if _, exists := r.emails[name]; exists {
			continue
		}
		r.emails[name] = synth(name)
		r.names = append(r.names, name)
	}
	return r
}

func (r *Roster) Len() int { return len(r.names) }

func (r *Roster) Email(name string) (string, bool) {
	email, ok := r.emails[name]
	return email, ok
}

// Names returns the names in first-occurrence order.
func (r *Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

type Order int

const (
	// OrderCollate sorts with Russian collation, ties broken byte-wise.
	OrderCollate Order = iota
	// OrderBytes sorts by plain byte (code point) order.
	OrderBytes
)

func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "collate":
		return OrderCollate, nil
	case "bytes":
		return OrderBytes, nil
	default:
		return 0, fmt.Errorf("unsupported roster order: %s", s)
	}
}

func (r *Roster) Entries(order Order) []internal.RosterEntry {
	names := r.Names()
	switch order {
	case OrderBytes:
		sort.Strings(names)
	default:
		c := collate.New(language.Russian)
		sort.SliceStable(names, func(i, j int) bool {
			if cmp := c.CompareString(names[i], names[j]); cmp != 0 {
				return cmp < 0
			}
			return names[i] < names[j]
		})
	}

	out := make([]internal.RosterEntry, 0, len(names))
	for _, name := range names {
		out = append(out, internal.RosterEntry{FullName: name, Email: r.emails[name]})
	}
	return out
}
