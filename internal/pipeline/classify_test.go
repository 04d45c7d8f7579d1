package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable/internal"
	"timetable/internal/config"
	"timetable/internal/record"
)

func TestClassify(t *testing.T) {
	cases := map[string]string{
		"ИП-111":   "ИП1**",
		"ИП-117":   "ИП1**",
		"ИП-17":    "ИП1*",
		"ИП-011":   "ИП0**",
		"ИП-1":     "ИП-1",
		"GROUP":    "GROUP",
		"":         "",
		"ИП_111":   "ИП1**",
		"ИВТ 21":   "ИВТ2*",
		"ИП-1111":  "ИП-1111",
		"ИП-111а":  "ИП1**",
		"ИП-11-22": "ИП-11-22",
		"111":      "1**",
		"  -- ":    "  -- ",
	}
	for in, want := range cases {
		assert.Equal(t, want, Classify(in), "Classify(%q)", in)
	}
}

func TestClassifyIsIdempotentOnStreams(t *testing.T) {
	for _, g := range []string{"ИП-111", "ИП-17", "GROUP", ""} {
		once := Classify(g)
		assert.Equal(t, once, Classify(once), "Classify(Classify(%q))", g)
	}
}

func TestPrefixRule(t *testing.T) {
	rule := PrefixRule{
		Prefixes: []PrefixStream{
			{Prefix: "ИП-0", Stream: "ИП-0**"},
			{Prefix: "ИП-", Stream: "ИП"},
		},
	}
	assert.Equal(t, "ИП-0**", rule.Stream("ИП-011"))
	assert.Equal(t, "ИП", rule.Stream("ИП-111"))
	assert.Equal(t, "ПИ2*", rule.Stream("ПИ-21"))

	rule.Fallback = IdentityRule{}
	assert.Equal(t, "ПИ-21", rule.Stream("ПИ-21"))
}

func TestStreamRuleFromProfileModes(t *testing.T) {
	for _, mode := range []string{"", "mask", "MASK"} {
		_, err := StreamRuleFromProfile(config.StreamProfile{Mode: mode})
		require.NoError(t, err, "mode %q", mode)
	}
	_, err := StreamRuleFromProfile(config.StreamProfile{Mode: "clever"})
	assert.Error(t, err)
	_, err = StreamRuleFromProfile(config.StreamProfile{Mode: "prefix", Fallback: "clever"})
	assert.Error(t, err)

	rule, err := StreamRuleFromProfile(config.StreamProfile{Mode: "identity"})
	require.NoError(t, err)
	assert.Equal(t, "ИП-111", rule.Stream("ИП-111"))
}

func groupsOf(records []record.Record) []string {
	out := []string{}
	for _, r := range records {
		g, _ := r.Str("Группа")
		out = append(out, g)
	}
	return out
}

func TestFilterByGroup(t *testing.T) {
	in := []record.Record{
		record.FromPairs("Группа", "ИП-111"),
		record.FromPairs("Группа", "ИП-211"),
		record.FromPairs("Группа", "ИП-17"),
		record.FromPairs("Дисциплина", "Матан"),
		record.New(record.Field{Name: "Группа", Value: record.Number("111")}),
	}

	got := FilterByGroup(in, "Группа", GroupPrefix("ИП-1"))
	assert.Equal(t, []string{"ИП-111", "ИП-17"}, groupsOf(got))

	stream := FilterByGroup(in, "Группа", GroupStream(MaskRule{}, "ИП1**"))
	assert.Equal(t, []string{"ИП-111"}, groupsOf(stream))

	re, err := GroupPattern(`^ИП-\d1\d$`)
	require.NoError(t, err)
	assert.Equal(t, []string{"ИП-111", "ИП-211"}, groupsOf(FilterByGroup(in, "Группа", re)))

	both := FilterByGroup(in, "Группа", AllOf(GroupPrefix("ИП-1"), re))
	assert.Equal(t, []string{"ИП-111"}, groupsOf(both))

	assert.Len(t, FilterByGroup(in, "Группа", AllOf()), len(in))

	_, err = GroupPattern("(")
	assert.Error(t, err)
}

func TestDistinctGroupsAndStreams(t *testing.T) {
	in := []record.Record{
		record.FromPairs("Группа", "ИП-112"),
		record.FromPairs("Группа", "ИП-111"),
		record.FromPairs("Группа", "ИП-112"),
		record.FromPairs("Группа", ""),
		record.New(record.Field{Name: "Группа", Value: record.Null()}),
		record.FromPairs("Группа", "ИП-17"),
	}
	groups := DistinctGroups(in, "Группа")
	assert.Equal(t, []string{"ИП-111", "ИП-112", "ИП-17"}, groups)

	assert.Equal(t, []internal.GroupStream{
		{Group: "ИП-111", Stream: "ИП1**"},
		{Group: "ИП-112", Stream: "ИП1**"},
		{Group: "ИП-17", Stream: "ИП1*"},
	}, GroupStreams(groups, MaskRule{}))

	assert.Empty(t, DistinctGroups(nil, "Группа"))
}
