package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoText is returned when recognition yields nothing after normalization.
var ErrNoText = errors.New("OCR returned no text")

// Normalize cleans raw Tesseract output into a single spaced line.
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, "\u00ad", "")
	s = strings.ReplaceAll(s, "-\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.Join(strings.Fields(s), " ")
}

// Recognize runs engine on imagePath and normalizes the result. Empty text
// after normalization is ErrNoText.
func Recognize(ctx context.Context, engine Engine, imagePath, pack string) (string, error) {
	raw, err := engine.Recognize(ctx, imagePath, pack)
	if err != nil {
		return "", err
	}

	text := Normalize(raw)
	if text == "" {
		return "", fmt.Errorf("%w: try a larger or clearer selection, or adjust --ocr-lang", ErrNoText)
	}
	return text, nil
}
