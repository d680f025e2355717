// Package app composes the capture, OCR, translation and presentation stages
// into one run. Every stage is a single attempt; the first error ends the run.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/trein/internal/capture"
	"github.com/ironsheep/trein/internal/cli"
	"github.com/ironsheep/trein/internal/clipboard"
	"github.com/ironsheep/trein/internal/config"
	"github.com/ironsheep/trein/internal/imaging"
	"github.com/ironsheep/trein/internal/lang"
	"github.com/ironsheep/trein/internal/ocr"
	"github.com/ironsheep/trein/internal/output"
	"github.com/ironsheep/trein/internal/translate"
	"github.com/ironsheep/trein/internal/wayland"
)

// preparedName is the conditioned copy of the capture, written into the
// capture directory so it is removed with it.
const preparedName = "prepared.png"

// Shot is a captured image that lives until Close.
type Shot interface {
	Path() string
	Dir() string
	Close() error
}

// Screen selects a region and captures it.
type Screen interface {
	SelectRegion(ctx context.Context) (string, error)
	CaptureRegion(ctx context.Context, geometry string) (Shot, error)
}

// Translator sends text to the translation service.
type Translator interface {
	Translate(ctx context.Context, text, target, source string) (*translate.Result, error)
}

// Copier puts text on the clipboard. It reports success but never fails the
// run.
type Copier interface {
	Copy(ctx context.Context, text string) bool
}

// Pipeline runs one select, OCR, translate cycle.
type Pipeline struct {
	Screen Screen
	Engine ocr.Engine
	Copier Copier
	Env    config.Env

	// NewTranslator builds the client once the credential and base URL
	// are known.
	NewTranslator func(baseURL, authKey string) Translator

	Stdout io.Writer
}

// New returns a Pipeline wired to the real tools. engine is cli.EngineCLI or
// cli.EngineNative; userAgent is sent with every DeepL request.
func New(env config.Env, engine, userAgent string, stdout, stderr io.Writer) (*Pipeline, error) {
	var eng ocr.Engine
	switch engine {
	case cli.EngineNative:
		n, err := ocr.NewNative()
		if err != nil {
			return nil, err
		}
		eng = n
	default:
		eng = ocr.NewCLI()
	}

	copier := clipboard.New()
	copier.Warn = stderr

	return &Pipeline{
		Screen: capturerScreen{capture.New()},
		Engine: eng,
		Copier: copier,
		Env:    env,
		NewTranslator: func(baseURL, authKey string) Translator {
			c := translate.New(baseURL, authKey)
			c.UserAgent = userAgent
			return c
		},
		Stdout: stdout,
	}, nil
}

// Run executes the pipeline with the parsed flags and writes the rendered
// result to Stdout. If ctx ends while a stage is running, the returned error
// also matches ctx.Err(), whatever the stage reported.
func (p *Pipeline) Run(ctx context.Context, opts *cli.Options) error {
	err := p.run(ctx, opts)
	if err != nil && ctx.Err() != nil && !errors.Is(err, ctx.Err()) {
		return fmt.Errorf("%w: %w", ctx.Err(), err)
	}
	return err
}

func (p *Pipeline) run(ctx context.Context, opts *cli.Options) error {
	lookup := p.Env.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := wayland.Require(lookup); err != nil {
		return fmt.Errorf("precondition: %w", err)
	}

	source, err := lang.ValidateSource(opts.SourceLang)
	if err != nil {
		return fmt.Errorf("--source-lang: %w", err)
	}
	target, err := lang.ValidateTarget(opts.TargetLang)
	if err != nil {
		return fmt.Errorf("--target-lang: %w", err)
	}

	pack := strings.TrimSpace(opts.OCRLang)
	if pack == "" {
		pack, err = lang.OCRPack(source)
		if err != nil {
			return fmt.Errorf("ocr pack: %w", err)
		}
	}
	slog.Debug("languages resolved", "source", source, "target", target, "pack", pack)

	key, err := p.Env.ResolveAPIKey(opts.APIKey)
	if err != nil {
		return fmt.Errorf("credential: %w", err)
	}

	geometry, err := p.Screen.SelectRegion(ctx)
	if err != nil {
		return fmt.Errorf("select region: %w", err)
	}

	shot, err := p.Screen.CaptureRegion(ctx, geometry)
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	defer shot.Close()

	imagePath := shot.Path()
	if opts.Preprocess {
		dst := filepath.Join(shot.Dir(), preparedName)
		if _, err := imaging.Prepare(imagePath, dst, imaging.Options{
			AutoInvert: true,
			Threshold:  opts.Threshold,
		}); err != nil {
			return fmt.Errorf("preprocess: %w", err)
		}
		imagePath = dst
	}

	text, err := ocr.Recognize(ctx, p.Engine, imagePath, pack)
	if err != nil {
		return fmt.Errorf("ocr: %w", err)
	}

	if guess, ok := lang.Guess(text); ok && guess != source {
		slog.Warn("recognized text looks like a different language", "source_lang", source, "guess", guess)
	}

	res, err := p.NewTranslator(p.Env.BaseURL(), key).Translate(ctx, text, target, source)
	if err != nil {
		return fmt.Errorf("translate: %w", err)
	}

	rendered := output.Render(output.OCRLabel(source, pack), text, target, res.Text, res.DetectedSource)
	if _, err := io.WriteString(p.Stdout, rendered); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	if opts.Copy {
		p.Copier.Copy(ctx, res.Text)
	}
	return nil
}

// ExitCode maps a Run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	default:
		return 1
	}
}

// capturerScreen adapts capture.Capturer to Screen.
type capturerScreen struct {
	c *capture.Capturer
}

func (s capturerScreen) SelectRegion(ctx context.Context) (string, error) {
	return s.c.SelectRegion(ctx)
}

func (s capturerScreen) CaptureRegion(ctx context.Context, geometry string) (Shot, error) {
	shot, err := s.c.CaptureRegion(ctx, geometry)
	if err != nil {
		return nil, err
	}
	return shot, nil
}
