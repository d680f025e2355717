package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
	"strings"
)

// DefaultTesseract is the executable used by CLI when Path is empty.
const DefaultTesseract = "tesseract"

var (
	// ErrEngineMissing is returned when the tesseract executable cannot
	// be started.
	ErrEngineMissing = errors.New("tesseract not available")

	// ErrEngineFailed is returned when tesseract exits non-zero.
	ErrEngineFailed = errors.New("tesseract failed")

	// ErrNativeUnavailable is returned by NewNative in builds without the
	// "gosseract" tag.
	ErrNativeUnavailable = errors.New("native OCR engine not compiled in (rebuild with -tags gosseract)")
)

// Engine extracts raw text from an image file using a Tesseract pack such
// as "eng" or "chi_sim".
type Engine interface {
	Recognize(ctx context.Context, imagePath, pack string) (string, error)
}

// CLI is an Engine backed by the tesseract executable.
type CLI struct {
	// Path is the executable name or path; empty means DefaultTesseract.
	Path string
}

// NewCLI returns an Engine that runs tesseract from $PATH.
func NewCLI() *CLI {
	return &CLI{Path: DefaultTesseract}
}

// Recognize runs "tesseract <imagePath> stdout -l <pack>" and returns its
// standard output unmodified. On a non-zero exit the error carries the
// tool's stderr verbatim.
func (c *CLI) Recognize(ctx context.Context, imagePath, pack string) (string, error) {
	name := c.Path
	if name == "" {
		name = DefaultTesseract
	}

	cmd := exec.CommandContext(ctx, name, imagePath, "stdout", "-l", pack)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("running tesseract", "image", imagePath, "pack", pack)
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("%w: failed to run `%s` (is it installed, with language data?): %v", ErrEngineMissing, name, err)
		}
		return "", fmt.Errorf("%w: %s", ErrEngineFailed, strings.TrimRight(stderr.String(), "\n"))
	}

	return stdout.String(), nil
}
