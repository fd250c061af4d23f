package extract

// Lang identifies the detected document language.
type Lang string

// Supported languages. Detection is a binary heuristic, not full language ID.
const (
	LangRU Lang = "ru"
	LangEN Lang = "en"
)

// DetectLang classifies text as Russian or English. Any Cyrillic character
// (including Ё/ё) means Russian; everything else is treated as English.
// The check is side-effect-free and reproducible.
func DetectLang(text string) Lang {
	for _, r := range text {
		if isCyrillic(r) {
			return LangRU
		}
	}
	return LangEN
}

func isCyrillic(r rune) bool {
	return (r >= 'А' && r <= 'я') || r == 'Ё' || r == 'ё'
}
