package pipeline

import (
	"fmt"
	"strings"

	"timetable/internal/config"
	"timetable/internal/record"
)

func StreamRuleFromProfile(p config.StreamProfile) (StreamRule, error) {
	fallback, err := simpleRule(p.Fallback)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(p.Mode)) {
	case "", "mask":
		return MaskRule{}, nil
	case "identity":
		return IdentityRule{}, nil
	case "prefix":
		prefixes := make([]PrefixStream, 0, len(p.Prefixes))
		for _, ps := range p.Prefixes {
			prefixes = append(prefixes, PrefixStream{Prefix: ps.Prefix, Stream: ps.Stream})
		}
		return PrefixRule{Prefixes: prefixes, Fallback: fallback}, nil
	default:
		return nil, fmt.Errorf("unsupported stream mode: %s", p.Mode)
	}
}

func simpleRule(name string) (StreamRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mask":
		return MaskRule{}, nil
	case "identity":
		return IdentityRule{}, nil
	default:
		return nil, fmt.Errorf("unsupported stream fallback: %s", name)
	}
}

// ProfileGroups lists the groups a profile exports: explicit groups, then
// expanded ranges, then the schedule's groups when requested. Duplicates
// keep their first position.
func ProfileGroups(p config.ExportProfile, schedule []record.Record, groupField string) []string {
	var groups []string
	groups = append(groups, p.Groups...)
	for _, r := range p.GroupRanges {
		for i := r.From; i <= r.To; i++ {
			groups = append(groups, fmt.Sprintf(r.Format, i))
		}
	}
	if p.GroupsFromSchedule {
		groups = append(groups, DistinctGroups(schedule, groupField)...)
	}

	seen := map[string]struct{}{}
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if _, exists := seen[g]; exists {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}
