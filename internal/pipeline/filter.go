package pipeline

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"timetable/internal"
	"timetable/internal/record"
)

// GroupMatcher reports whether a group label is selected. Records whose
// group field is missing or not a string are matched against "".
type GroupMatcher func(group string) bool

func GroupPrefix(prefix string) GroupMatcher {
	return func(group string) bool { return strings.HasPrefix(group, prefix) }
}

func GroupPattern(expr string) (GroupMatcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("group pattern %q: %w", expr, err)
	}
	return re.MatchString, nil
}

func GroupStream(rule StreamRule, stream string) GroupMatcher {
	return func(group string) bool { return rule.Stream(group) == stream }
}

// AllOf matches when every matcher does. No matchers match everything.
func AllOf(matchers ...GroupMatcher) GroupMatcher {
	return func(group string) bool {
		for _, m := range matchers {
			if !m(group) {
				return false
			}
		}
		return true
	}
}

func FilterByGroup(records []record.Record, groupField string, match GroupMatcher) []record.Record {
	out := make([]record.Record, 0, len(records))
	for _, r := range records {
		group, _ := r.Str(groupField)
		if match(group) {
			out = append(out, r)
		}
	}
	return out
}

// DistinctGroups returns the non-empty group labels in code point order.
func DistinctGroups(records []record.Record, groupField string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, r := range records {
		group, ok := r.Str(groupField)
		if !ok || group == "" {
			continue
		}
		if _, exists := seen[group]; exists {
			continue
		}
		seen[group] = struct{}{}
		out = append(out, group)
	}
	sort.Strings(out)
	return out
}

func GroupStreams(groups []string, rule StreamRule) []internal.GroupStream {
	out := make([]internal.GroupStream, 0, len(groups))
	for _, g := range groups {
		out = append(out, internal.GroupStream{Group: g, Stream: rule.Stream(g)})
	}
	return out
}
