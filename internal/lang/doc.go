// Package lang validates DeepL language codes and maps them to Tesseract
// language packs.
//
// # Normalization
//
// Codes are compared after uppercasing ASCII letters and turning "_" into
// "-", so "en", "EN" and "en_gb" are all accepted forms of their canonical
// code. Validation is idempotent: a validated code validates to itself.
//
// # Source and Target Sets
//
// DeepL accepts a smaller set of source codes than target codes. The target
// set adds regional variants (EN-GB, EN-US, ES-419, PT-BR, PT-PT, ZH-HANS,
// ZH-HANT). Passing one of those variants as a source yields ErrTargetOnly,
// which is distinct from ErrUnsupported so the caller can tell the user which
// base code to use instead.
//
// # OCR Packs
//
// OCRPack is total over the source set. Every source code has exactly one
// Tesseract pack (for example "EN" → "eng", "ZH" → "chi_sim"). A code with no
// pack returns ErrNoPack.
//
// # Guessing
//
// Guess runs local language identification over recognized text. It is only
// a hint for logging; nothing in the pipeline changes the requested source
// language based on it.
package lang
