// Package extract turns free-form job-description or resume text into a
// ranked list of normalized skill terms. Ranking is statistical and
// unsupervised (frequency, casing, sentence position and dispersion over
// single-word candidates); no model or network access is involved, so
// extraction is fully deterministic for a given input.
package extract

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// minTokenLen is the minimum length of a useful term.
const minTokenLen = 2

// Keywords returns up to topK unique normalized terms from text, most
// important first. Blank input yields an empty slice.
func Keywords(text string, topK int) []string {
	if topK <= 0 || strings.TrimSpace(text) == "" {
		return nil
	}

	lang := DetectLang(text)
	candidates := rank(text)

	// Raw scores ascend: in the underlying ranking a lower score means a
	// more important term, and that inversion is preserved here.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})

	out := make([]string, 0, topK)
	seen := make(map[string]struct{}, topK)
	for _, c := range candidates {
		t := NormalizeToken(c.term)
		if !meaningful(t, lang) {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		if len(out) >= topK {
			break
		}
	}
	return out
}

// NormalizeToken lowercases a candidate term, strips characters outside the
// allowed set (Latin and Cyrillic letters, digits, hyphen, plus, hash, period
// and space — so "c++", "c#" and ".net" survive), collapses repeated
// whitespace and trims.
func NormalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		switch {
		case unicode.IsDigit(r), r >= 'a' && r <= 'z', isCyrillic(r):
			b.WriteRune(r)
			lastSpace = false
		case r == '-' || r == '+' || r == '#' || r == '.':
			b.WriteRune(r)
			lastSpace = false
		case r == ' ' || unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

func meaningful(t string, lang Lang) bool {
	if t == "" || len([]rune(t)) < minTokenLen {
		return false
	}
	return !isStopWord(t, lang)
}

// candidate is a surface term with its raw importance score (lower = better).
type candidate struct {
	term  string
	score float64
}

// termStats accumulates per-term occurrence statistics over the document.
type termStats struct {
	surface   string // first surface form seen
	tf        int
	upper     int         // occurrences fully uppercase (acronym-like)
	capital   int         // occurrences starting with a capital mid-sentence
	sentences map[int]int // sentence index -> occurrences
	firstIdx  int         // token index of first occurrence, for stable ties
}

// rank scores every unique single-word candidate in the document. The score
// follows the YAKE family of features: terms that occur often, appear early,
// spread across sentences or carry acronym/proper casing score lower
// (= more important).
func rank(text string) []candidate {
	sentences := splitSentences(text)
	stats := make(map[string]*termStats)
	order := make([]string, 0, 64)
	tokenIdx := 0

	for si, sentence := range sentences {
		for wi, word := range strings.Fields(sentence) {
			key := NormalizeToken(word)
			if key == "" {
				tokenIdx++
				continue
			}
			st, ok := stats[key]
			if !ok {
				st = &termStats{surface: word, sentences: make(map[int]int), firstIdx: tokenIdx}
				stats[key] = st
				order = append(order, key)
			}
			st.tf++
			st.sentences[si]++
			trimmed := strings.TrimFunc(word, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
			if isAllUpper(trimmed) {
				st.upper++
			} else if wi > 0 && startsUpper(trimmed) {
				st.capital++
			}
			tokenIdx++
		}
	}

	if len(stats) == 0 {
		return nil
	}

	meanTF, stdTF := tfMoments(stats)
	total := len(sentences)

	out := make([]candidate, 0, len(stats))
	for _, key := range order {
		st := stats[key]

		caseScore := float64(max(st.upper, st.capital)) / (1 + math.Log(1+float64(st.tf)))
		posScore := math.Log(3 + float64(medianSentence(st.sentences)))
		freqScore := float64(st.tf) / (meanTF + stdTF + 1)
		spread := float64(len(st.sentences)) / float64(total)

		// Lower is more important: early position shrinks the numerator,
		// frequency/casing/dispersion grow the denominator.
		score := posScore / (1 + caseScore + freqScore + spread)
		out = append(out, candidate{term: st.surface, score: score})
	}
	return out
}

// splitSentences breaks text on sentence boundaries. A period only ends a
// sentence when followed by whitespace or end of text, so ".net" and
// "node.js" survive as single tokens.
func splitSentences(text string) []string {
	var out []string
	var b strings.Builder
	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			out = append(out, s)
		}
		b.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		switch r {
		case '\n', '!', '?', ';':
			flush()
		case '.':
			if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
				flush()
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteRune(r)
		}
	}
	flush()

	if len(out) == 0 {
		return []string{text}
	}
	return out
}

func tfMoments(stats map[string]*termStats) (mean, std float64) {
	n := float64(len(stats))
	for _, st := range stats {
		mean += float64(st.tf)
	}
	mean /= n
	for _, st := range stats {
		d := float64(st.tf) - mean
		std += d * d
	}
	std = math.Sqrt(std / n)
	return mean, std
}

func medianSentence(occ map[int]int) int {
	idxs := make([]int, 0, len(occ))
	for i := range occ {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)
	return idxs[len(idxs)/2]
}

func isAllUpper(s string) bool {
	if len([]rune(s)) < 2 {
		return false
	}
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
