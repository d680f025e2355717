// Package ocr recognizes text in a screen capture with Tesseract and cleans
// the output up for translation.
//
// # Engines
//
// Two Engine implementations exist:
//
//   - CLI runs the tesseract executable ("tesseract <image> stdout -l <pack>").
//     This is the default and needs only the tesseract package and the
//     language data for the chosen pack.
//   - Native links libtesseract through gosseract/v2. It is compiled only
//     with the "gosseract" build tag because it requires cgo and the
//     Tesseract development headers. Without the tag NewNative returns
//     ErrNativeUnavailable.
//
// # Prerequisites
//
// Language data is required for each pack:
//   - Arch: pacman -S tesseract-data-<pack>
//   - Ubuntu/Debian: apt-get install tesseract-ocr-<pack>
//
// # Normalization
//
// Normalize turns Tesseract's line-oriented output into a single paragraph:
//
//  1. Soft hyphens (U+00AD) are removed.
//  2. A hyphen directly followed by a newline is removed together with the
//     newline, joining words split across lines.
//  3. Carriage returns are removed; newlines become spaces.
//  4. Runs of whitespace collapse to one space; the ends are trimmed.
//
// The order matters: step 2 must run before step 3 turns the newline into a
// space. Normalize is idempotent.
//
// # Error Handling
//
// Recognize returns ErrNoText when nothing is left after normalization, so
// an empty selection never reaches the translation API.
package ocr
