// Package contact derives e-mail addresses from full names.
package contact

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"timetable/internal/fakedata"
)

const DefaultDomain = "university.edu"

// FallbackProvider yields a random, syntactically valid address.
type FallbackProvider interface {
	Email() string
}

type Synthesizer struct {
	domain   string
	fallback FallbackProvider
	logger   *zap.Logger
}

func NewSynthesizer(domain string, fallback FallbackProvider, logger *zap.Logger) *Synthesizer {
	if strings.TrimSpace(domain) == "" {
		domain = DefaultDomain
	}
	if fallback == nil {
		fallback = fakedata.New(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synthesizer{domain: domain, fallback: fallback, logger: logger}
}

func (s *Synthesizer) Domain() string { return s.domain }

// SplitName splits "Last First Middle". Missing parts are empty and
// anything after the third part is ignored.
func SplitName(fullName string) (last, first, middle string) {
	parts := strings.Fields(fullName)
	if len(parts) > 0 {
		last = parts[0]
	}
	if len(parts) > 1 {
		first = parts[1]
	}
	if len(parts) > 2 {
		middle = parts[2]
	}
	return last, first, middle
}

// Deterministic builds lastname.initials@domain, e.g.
// "Петров Иван Сергеевич" -> "petrov.is@university.edu".
func (s *Synthesizer) Deterministic(fullName string) (string, error) {
	last, first, middle := SplitName(fullName)
	if last == "" {
		return "", fmt.Errorf("%w: empty last name", ErrTransliteration)
	}

	lastLat, err := Transliterate(last)
	if err != nil {
		return "", err
	}
	if lastLat == "" {
		return "", fmt.Errorf("%w: last name %q has no latin form", ErrTransliteration, last)
	}
	firstInitial, err := initial(first)
	if err != nil {
		return "", err
	}
	middleInitial, err := initial(middle)
	if err != nil {
		return "", err
	}

	return strings.ToLower(lastLat) + "." + strings.ToLower(firstInitial) + strings.ToLower(middleInitial) + "@" + s.domain, nil
}

// Synthesize never fails: names that cannot be transliterated get a random
// address from the fallback provider.
func (s *Synthesizer) Synthesize(fullName string) string {
	email, err := s.Deterministic(fullName)
	if err == nil {
		return email
	}
	email = s.fallback.Email()
	s.logger.Debug("contact fallback", zap.String("name", fullName), zap.String("email", email), zap.Error(err))
	return email
}

func initial(part string) (string, error) {
	if part == "" {
		return "", nil
	}
	r, _ := utf8.DecodeRuneInString(part)
	return Transliterate(string(r))
}
