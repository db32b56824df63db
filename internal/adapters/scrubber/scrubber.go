// Package scrubber redacts vendor contact channels from free text using
// an Aho-Corasick automaton. It wraps the petar-dambovaliev/aho-corasick
// library so many contact terms are scanned in one pass.
package scrubber

import (
	"strings"

	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Redacted replaces each matched contact term in the output text.
const Redacted = "[removed]"

// DefaultTerms are the contact channels vendors commonly embed in
// listing descriptions to route buyers off-platform.
var DefaultTerms = []string{
	"snapchat", "snap:", "telegram", "whatsapp", "signal:",
	"text me", "call me", "dm me", "hmu at",
	"@gmail.com", "@yahoo.com", "@protonmail.com",
}

// Scrubber implements privacy.TextScrubber.
type Scrubber struct {
	automaton aho.AhoCorasick
	terms     []string
}

// New builds a scrubber from the given terms; nil selects DefaultTerms.
// Matching is case-insensitive.
func New(terms []string) *Scrubber {
	if terms == nil {
		terms = DefaultTerms
	}
	lowered := make([]string, len(terms))
	for i, t := range terms {
		lowered[i] = strings.ToLower(t)
	}
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	return &Scrubber{
		automaton: builder.Build(lowered),
		terms:     lowered,
	}
}

// Scrub replaces every matched term with the redaction marker and
// reports whether anything was replaced. Non-overlapping, leftmost
// matches. The automaton scans a lowered copy of the text, so match
// offsets are mapped back to the original; lowering can change rune
// byte widths even when the terms themselves are ASCII.
func (s *Scrubber) Scrub(text string) (string, bool) {
	lower, starts := foldOffsets(text)
	matches := s.automaton.FindAll(lower)
	if len(matches) == 0 {
		return text, false
	}

	var b strings.Builder
	pos := 0  // byte offset into text
	lpos := 0 // byte offset into lower
	for _, m := range matches {
		if m.Start() < lpos {
			continue
		}
		le := m.End()
		// A match ending inside one rune's folded bytes covers the whole rune.
		for le < len(lower) && starts[le] == starts[le-1] {
			le++
		}
		b.WriteString(text[pos:starts[m.Start()]])
		b.WriteString(Redacted)
		pos = starts[le]
		lpos = le
	}
	b.WriteString(text[pos:])
	return b.String(), true
}

// foldOffsets lowers s rune by rune and records, for every byte of the
// lowered text, the starting offset of the original rune it came from.
// The extra final element is len(s), so any lowered span maps back to a
// whole-rune span of s.
func foldOffsets(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	starts := make([]int, 0, len(s)+1)
	for i, r := range s {
		low := strings.ToLower(string(r))
		b.WriteString(low)
		for j := 0; j < len(low); j++ {
			starts = append(starts, i)
		}
	}
	starts = append(starts, len(s))
	return b.String(), starts
}

// Terms returns the compiled term list.
func (s *Scrubber) Terms() []string {
	return append([]string(nil), s.terms...)
}
