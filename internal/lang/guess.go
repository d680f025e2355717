package lang

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// minGuessRunes is the shortest text Guess will try to classify. Shorter
// snippets (a button label, a single word) are too ambiguous to be useful.
const minGuessRunes = 12

// Guess identifies the language of text and returns it as a DeepL source
// code. ok is false when the text is too short, the detection is unreliable,
// or the detected language is not in the source set.
func Guess(text string) (code string, ok bool) {
	if len([]rune(strings.TrimSpace(text))) < minGuessRunes {
		return "", false
	}

	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return "", false
	}

	iso := info.Lang.Iso6391()
	if iso == "" {
		return "", false
	}

	code, err := ValidateSource(iso)
	if err != nil {
		return "", false
	}
	return code, true
}
