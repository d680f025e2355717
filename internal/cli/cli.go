// Package cli parses trein's command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ironsheep/trein/internal/lang"
)

// OCR engine names accepted by --ocr-engine.
const (
	EngineCLI    = "cli"
	EngineNative = "native"
)

// ErrHelp is returned when -h/--help was given; usage has been printed.
var ErrHelp = pflag.ErrHelp

// Options holds the parsed flags.
type Options struct {
	SourceLang  string
	TargetLang  string
	Copy        bool
	OCRLang     string
	APIKey      string
	OCREngine   string
	Preprocess  bool
	Threshold   uint8
	ShowVersion bool
}

// Parse parses args (without the program name). Usage and errors are
// written to out. lookup supplies the DEEPL_API_KEY default for
// --deepl-api-key; it may be nil.
func Parse(args []string, out io.Writer, lookup func(string) (string, bool)) (*Options, error) {
	opts := &Options{}
	fs := pflag.NewFlagSet("trein", pflag.ContinueOnError)
	// Parse errors are returned, not printed; Usage writes to out itself.
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	envKey := ""
	if lookup != nil {
		envKey, _ = lookup("DEEPL_API_KEY")
	}

	fs.StringVarP(&opts.SourceLang, "source-lang", "s", "EN", "DeepL source language code")
	fs.StringVarP(&opts.TargetLang, "target-lang", "t", "EN", "DeepL target language code")
	fs.BoolVarP(&opts.Copy, "copy", "c", false, "also copy the translation to the Wayland clipboard using wl-copy")
	fs.StringVar(&opts.OCRLang, "ocr-lang", "", "force the Tesseract pack (e.g. chi_tra); normally derived from --source-lang")
	fs.StringVar(&opts.APIKey, "deepl-api-key", envKey, "DeepL API key (falls back to $DEEPL_API_KEY, then the config file)")
	fs.StringVar(&opts.OCREngine, "ocr-engine", EngineCLI, "OCR engine: cli (tesseract executable) or native (libtesseract, needs -tags gosseract)")
	fs.BoolVar(&opts.Preprocess, "preprocess", false, "upscale, grayscale and auto-invert the capture before OCR")
	fs.Uint8Var(&opts.Threshold, "threshold", 0, "binarize the preprocessed capture at this gray level (1-255, 0 = off)")
	fs.BoolVarP(&opts.ShowVersion, "version", "v", false, "print version information")

	// The key's default comes from the environment; keep it out of --help.
	if f := fs.Lookup("deepl-api-key"); f != nil {
		f.DefValue = ""
	}

	fs.Usage = func() {
		fmt.Fprintln(out, "trein - select a screen area, OCR it, translate it with DeepL")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage: trein [options]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		fmt.Fprint(out, fs.FlagUsages())
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Source codes: %s\n", strings.Join(lang.SourceCodes(), " "))
		fmt.Fprintf(out, "Target codes: %s\n", strings.Join(lang.TargetCodes(), " "))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Environment variables:")
		fmt.Fprintln(out, "  DEEPL_API_KEY          DeepL authentication key")
		fmt.Fprintln(out, "  DEEPL_API_BASE         API base URL (default https://api-free.deepl.com)")
		fmt.Fprintln(out, "  TREIN_LOG_LEVEL=debug  enable debug logging on stderr")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	switch opts.OCREngine {
	case EngineCLI, EngineNative:
	default:
		return nil, fmt.Errorf("invalid --ocr-engine %q (want %s or %s)", opts.OCREngine, EngineCLI, EngineNative)
	}

	if opts.Threshold > 0 && !opts.Preprocess {
		return nil, errors.New("--threshold requires --preprocess")
	}

	return opts, nil
}
