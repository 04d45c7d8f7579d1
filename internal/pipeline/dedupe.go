package pipeline

import "timetable/internal/record"

type DedupeResult struct {
	Unique  []record.Record
	Removed int
}

// Dedupe keeps the first record of every key in input order.
func Dedupe(records []record.Record, keyFn func(record.Record) Key) DedupeResult {
	seen := make(map[Key]struct{}, len(records))
	out := make([]record.Record, 0, len(records))
	removed := 0
	for _, r := range records {
		key := keyFn(r)
		if _, exists := seen[key]; exists {
			removed++
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return DedupeResult{Unique: out, Removed: removed}
}
