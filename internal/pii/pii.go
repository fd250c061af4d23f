// Package pii strips personal data (emails, phone numbers, personal names)
// from resume text before it is shared or exported. Anonymization is
// idempotent and must not mangle technology terms that look like proper
// names.
package pii

import "regexp"

// Placeholder tokens inserted in place of detected personal data.
const (
	EmailPlaceholder = "[email hidden]"
	PhonePlaceholder = "[phone hidden]"
	NamePlaceholder  = "[name]"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\-\s()]{7,}\d`)

	// Cautious heuristic for proper names: one to three capitalized words,
	// Latin or Cyrillic. ASCII \b only helps the Latin branch; Cyrillic
	// capitals cannot start mid-word anyway.
	nameRe = regexp.MustCompile(`(?:[А-ЯЁ][а-яё]+(?:\s+[А-ЯЁ][а-яё]+){0,2}|\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2}\b)`)

	// Proper-noun-shaped tech terms that must survive anonymization.
	techSafeRe = regexp.MustCompile(`(?i)^(Python|Pandas|NumPy|SQL|Docker|Kubernetes|TensorFlow|PyTorch|LLM|NLP|XGBoost|CatBoost|LightGBM|Go|Rust|Java|Scala|Kafka|Redis|PostgreSQL|Linux|Git)$`)
)

// Anonymize replaces emails, phone numbers and likely personal names with
// fixed placeholders. Running it over already-anonymized text is a no-op.
func Anonymize(text string) string {
	if text == "" {
		return text
	}
	t := emailRe.ReplaceAllString(text, EmailPlaceholder)
	t = phoneRe.ReplaceAllString(t, PhonePlaceholder)
	t = nameRe.ReplaceAllStringFunc(t, func(s string) string {
		if techSafeRe.MatchString(s) {
			return s
		}
		return NamePlaceholder
	})
	return t
}
