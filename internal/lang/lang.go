package lang

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnsupported is returned for strings that are not DeepL codes for
	// the requested direction.
	ErrUnsupported = errors.New("unsupported DeepL language code")

	// ErrTargetOnly is returned when a regional target variant is passed
	// where a source code is expected.
	ErrTargetOnly = errors.New("target-only DeepL language code")

	// ErrNoPack is returned by OCRPack for codes outside the source set.
	ErrNoPack = errors.New("no Tesseract pack for language")
)

// ocrPacks maps every DeepL source code to its Tesseract pack. Its key set is
// the source set.
var ocrPacks = map[string]string{
	"AR": "ara",
	"BG": "bul",
	"CS": "ces",
	"DA": "dan",
	"DE": "deu",
	"EL": "ell",
	"EN": "eng",
	"ES": "spa",
	"ET": "est",
	"FI": "fin",
	"FR": "fra",
	"HE": "heb",
	"HU": "hun",
	"ID": "ind",
	"IT": "ita",
	"JA": "jpn",
	"KO": "kor",
	"LT": "lit",
	"LV": "lav",
	"NB": "nor",
	"NL": "nld",
	"PL": "pol",
	"PT": "por",
	"RO": "ron",
	"RU": "rus",
	"SK": "slk",
	"SL": "slv",
	"SV": "swe",
	"TH": "tha",
	"TR": "tur",
	"UK": "ukr",
	"VI": "vie",
	"ZH": "chi_sim",
}

// targetOnly holds the regional variants DeepL accepts only as targets.
var targetOnly = map[string]bool{
	"EN-GB":   true,
	"EN-US":   true,
	"ES-419":  true,
	"PT-BR":   true,
	"PT-PT":   true,
	"ZH-HANS": true,
	"ZH-HANT": true,
}

// Normalize uppercases ASCII letters in code and maps underscores to
// hyphens. Other runes are left as they are, so they never match a code.
func Normalize(code string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r == '_':
			return '-'
		}
		return r
	}, code)
}

// ValidateSource returns the canonical form of a DeepL source code.
func ValidateSource(code string) (string, error) {
	c := Normalize(code)
	if _, ok := ocrPacks[c]; ok {
		return c, nil
	}
	if targetOnly[c] {
		return "", fmt.Errorf("%w: %q; use the base code (e.g. EN / PT / ZH) for --source-lang", ErrTargetOnly, c)
	}
	return "", fmt.Errorf("%w: source %q", ErrUnsupported, c)
}

// ValidateTarget returns the canonical form of a DeepL target code.
func ValidateTarget(code string) (string, error) {
	c := Normalize(code)
	if _, ok := ocrPacks[c]; ok {
		return c, nil
	}
	if targetOnly[c] {
		return c, nil
	}
	return "", fmt.Errorf("%w: target %q", ErrUnsupported, c)
}

// OCRPack returns the Tesseract pack for a validated source code.
func OCRPack(source string) (string, error) {
	pack, ok := ocrPacks[source]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrNoPack, source)
	}
	return pack, nil
}

// SourceCodes returns the source set, sorted.
func SourceCodes() []string {
	codes := make([]string, 0, len(ocrPacks))
	for c := range ocrPacks {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// TargetCodes returns the target set, sorted.
func TargetCodes() []string {
	codes := SourceCodes()
	for c := range targetOnly {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
