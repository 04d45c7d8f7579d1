package util

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	reSpaces         = regexp.MustCompile(`\s+`)
	reSheetForbidden = regexp.MustCompile(`[\[\]:*?/\\]`)
)

// MaxSheetNameRunes is the Excel limit on worksheet names.
const MaxSheetNameRunes = 31

func NormalizeSpaces(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}

// SheetName turns a group label into a valid worksheet name.
func SheetName(input string) string {
	s := reSheetForbidden.ReplaceAllString(input, "_")
	s = strings.Trim(NormalizeSpaces(s), "'")
	if utf8.RuneCountInString(s) > MaxSheetNameRunes {
		s = string([]rune(s)[:MaxSheetNameRunes])
	}
	if s == "" {
		return "Sheet"
	}
	return s
}

// UniqueSheetName appends " (n)" until the name is not taken. Names are
// compared case-insensitively, as Excel does.
func UniqueSheetName(name string, taken map[string]struct{}) string {
	candidate := name
	for n := 2; ; n++ {
		if _, exists := taken[strings.ToLower(candidate)]; !exists {
			taken[strings.ToLower(candidate)] = struct{}{}
			return candidate
		}
		suffix := " (" + strconv.Itoa(n) + ")"
		base := []rune(name)
		if limit := MaxSheetNameRunes - utf8.RuneCountInString(suffix); len(base) > limit {
			base = base[:limit]
		}
		candidate = string(base) + suffix
	}
}

// ColumnWidth follows the usual auto-fit estimate: longest text plus two,
// scaled by 1.2.
func ColumnWidth(values []string) float64 {
	longest := 0
	for _, v := range values {
		if n := utf8.RuneCountInString(v); n > longest {
			longest = n
		}
	}
	return float64(longest+2) * 1.2
}

func SplitCSV(input string) []string {
	out := []string{}
	for _, part := range strings.Split(input, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
