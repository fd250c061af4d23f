// Package critical finds job-description terms that appear near mandatory
// language ("must have", "required", "обязательно"). Their absence from a
// resume is penalized by the scorer.
package critical

import (
	"strings"
	"unicode/utf8"

	"github.com/OneForces/effectivness/internal/terms"
)

// window is how many runes around a trigger phrase a term may appear in to be
// considered mandatory. Counting runes keeps the reach the same for Cyrillic
// and Latin text.
const window = 120

// triggers are matched case-insensitively against the raw JD text. English
// and Russian mandatory cues are both covered.
var triggers = []string{
	"must have",
	"must-have",
	"required",
	"mandatory",
	"обязательно",
	"обязателен",
	"обязательна",
	"требуется",
	"строго",
	"необходимо",
	"необходим",
}

// triggerWords are the tokens the trigger phrases are built from. They are
// mandatory-language cues, not skills, so they can never themselves become
// critical terms even when the extractor hands them in as candidates.
var triggerWords = map[string]struct{}{
	"must": {}, "have": {}, "must-have": {}, "must have": {},
	"required": {}, "mandatory": {},
	"обязательно": {}, "обязателен": {}, "обязательна": {},
	"требуется": {}, "строго": {}, "необходимо": {}, "необходим": {},
}

// Detect returns the normalized JD terms found within the proximity window of
// any trigger phrase, deduplicated in discovery order. When the JD contains
// no trigger phrase at all the result is empty: no signal, no penalty.
func Detect(jdText string, jdTerms []string) []string {
	if strings.TrimSpace(jdText) == "" || len(jdTerms) == 0 {
		return nil
	}

	lower := strings.ToLower(jdText)
	spans := triggerSpans(lower)
	if len(spans) == 0 {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	for _, term := range jdTerms {
		surface := strings.ToLower(strings.TrimSpace(term))
		normalized := terms.Canonical(term)
		if surface == "" {
			continue
		}
		if _, trig := triggerWords[surface]; trig {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		if inAnyWindow(lower, surface, spans) || (normalized != surface && inAnyWindow(lower, normalized, spans)) {
			seen[normalized] = struct{}{}
			out = append(out, normalized)
		}
	}
	return out
}

type span struct{ lo, hi int }

// triggerSpans collects the ±window ranges around every trigger occurrence.
// Trigger positions are byte offsets from strings.Index; the window bounds
// are then widened rune by rune so they never land mid-rune.
func triggerSpans(lower string) []span {
	var spans []span
	for _, trig := range triggers {
		from := 0
		for {
			i := strings.Index(lower[from:], trig)
			if i < 0 {
				break
			}
			at := from + i
			lo := backRunes(lower, at, window)
			hi := fwdRunes(lower, at+len(trig), window)
			spans = append(spans, span{lo: lo, hi: hi})
			from = at + len(trig)
		}
	}
	return spans
}

// backRunes steps at most n runes back from byte offset at.
func backRunes(s string, at, n int) int {
	for i := 0; i < n && at > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:at])
		at -= size
	}
	return at
}

// fwdRunes steps at most n runes forward from byte offset at.
func fwdRunes(s string, at, n int) int {
	for i := 0; i < n && at < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[at:])
		at += size
	}
	return at
}

func inAnyWindow(lower, term string, spans []span) bool {
	for _, s := range spans {
		if strings.Contains(lower[s.lo:s.hi], term) {
			return true
		}
	}
	return false
}
