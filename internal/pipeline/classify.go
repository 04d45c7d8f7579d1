package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reNonAlnum = regexp.MustCompile(`[^\p{L}\p{Nd}]+`)
	reDigitRun = regexp.MustCompile(`\p{Nd}+`)
)

// Classify maps a group label to its stream: the letters before the first
// digit run plus the leading digit, with the remaining digits masked.
// "ИП-111" becomes "ИП1**" and "ИП-17" becomes "ИП1*". Labels without a
// two or three digit run are returned unchanged.
func Classify(group string) string {
	clean := reNonAlnum.ReplaceAllString(group, "")
	loc := reDigitRun.FindStringIndex(clean)
	if loc == nil {
		return group
	}

	prefix := clean[:loc[0]]
	digits := clean[loc[0]:loc[1]]
	lead, _ := utf8.DecodeRuneInString(digits)

	switch utf8.RuneCountInString(digits) {
	case 3:
		return prefix + string(lead) + "**"
	case 2:
		return prefix + string(lead) + "*"
	default:
		return group
	}
}

type StreamRule interface {
	Stream(group string) string
}

// MaskRule applies Classify.
type MaskRule struct{}

func (MaskRule) Stream(group string) string { return Classify(group) }

// IdentityRule uses the group label as its own stream.
type IdentityRule struct{}

func (IdentityRule) Stream(group string) string { return group }

type PrefixStream struct {
	Prefix string
	Stream string
}

// PrefixRule assigns the stream of the first matching prefix. Groups that
// match no prefix go to Fallback, or to MaskRule when Fallback is nil.
type PrefixRule struct {
	Prefixes []PrefixStream
	Fallback StreamRule
}

func (r PrefixRule) Stream(group string) string {
	for _, p := range r.Prefixes {
		if strings.HasPrefix(group, p.Prefix) {
			return p.Stream
		}
	}
	if r.Fallback == nil {
		return Classify(group)
	}
	return r.Fallback.Stream(group)
}
