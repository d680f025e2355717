// Package output formats the OCR text and its translation for the terminal.
package output

import (
	"fmt"
	"strings"
)

// OCRLabel combines the validated source code and the Tesseract pack, e.g.
// "EN / eng".
func OCRLabel(source, pack string) string {
	return source + " / " + pack
}

// Render returns the two labeled sections printed after a successful run.
// detected is DeepL's detected source language; empty omits it from the
// translation header.
func Render(ocrLabel, ocrText, target, translation, detected string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== OCR (lang: %s) ===\n%s\n\n", ocrLabel, strings.TrimSpace(ocrText))
	if detected != "" {
		fmt.Fprintf(&b, "=== Translation → %s (detected: %s) ===\n%s\n\n", target, detected, translation)
	} else {
		fmt.Fprintf(&b, "=== Translation → %s ===\n%s\n\n", target, translation)
	}
	return b.String()
}
