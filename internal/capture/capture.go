// Package capture selects a screen region with slurp and rasterizes it with
// grim into a scoped temporary directory.
package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

const (
	// DefaultSelector is the interactive region selection tool.
	DefaultSelector = "slurp"

	// DefaultGrabber is the screenshot tool.
	DefaultGrabber = "grim"

	// GeometryFormat makes slurp print "x,y wxh", the form grim -g accepts.
	GeometryFormat = "%x,%y %wx%h"

	// ImageName is the file grim writes inside the capture directory.
	ImageName = "capture.png"
)

var (
	// ErrToolMissing is returned when an executable cannot be started.
	ErrToolMissing = errors.New("required tool not found")

	// ErrCancelled is returned when the selection tool exits non-zero,
	// which is what slurp does when the user presses Escape.
	ErrCancelled = errors.New("selection cancelled")

	// ErrNoGeometry is returned when the selection tool prints nothing.
	ErrNoGeometry = errors.New("no selection geometry received")

	// ErrCaptureFailed is returned when the screenshot tool exits non-zero.
	ErrCaptureFailed = errors.New("screenshot failed")
)

// Capturer runs the selection and screenshot tools.
type Capturer struct {
	// Selector and Grabber are executable names or paths. Empty values
	// fall back to DefaultSelector and DefaultGrabber.
	Selector string
	Grabber  string

	// TempDir is the parent for capture directories; empty uses os.TempDir.
	TempDir string
}

// New returns a Capturer using slurp and grim from $PATH.
func New() *Capturer {
	return &Capturer{Selector: DefaultSelector, Grabber: DefaultGrabber}
}

func (c *Capturer) selector() string {
	if c.Selector == "" {
		return DefaultSelector
	}
	return c.Selector
}

func (c *Capturer) grabber() string {
	if c.Grabber == "" {
		return DefaultGrabber
	}
	return c.Grabber
}

// SelectRegion lets the user drag a rectangle and returns its geometry as
// printed by the selection tool. The geometry is opaque to this program.
func (c *Capturer) SelectRegion(ctx context.Context) (string, error) {
	name := c.selector()
	cmd := exec.CommandContext(ctx, name, "-f", GeometryFormat)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if isNotStarted(err) {
			return "", fmt.Errorf("%w: failed to run `%s` (is it installed?): %v", ErrToolMissing, name, err)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("%w: `%s` exited: %s", ErrCancelled, name, msg)
	}

	geometry := strings.TrimSpace(string(out))
	if geometry == "" {
		return "", fmt.Errorf("%w from `%s`", ErrNoGeometry, name)
	}

	slog.Debug("region selected", "geometry", geometry)
	return geometry, nil
}

// CaptureRegion writes a screenshot of geometry into a fresh temporary
// directory. The caller owns the returned Capture and must Close it once the
// image is no longer needed. On error nothing is left on disk.
func (c *Capturer) CaptureRegion(ctx context.Context, geometry string) (*Capture, error) {
	dir, err := os.MkdirTemp(c.TempDir, "trein-*")
	if err != nil {
		return nil, fmt.Errorf("could not create temp dir: %w", err)
	}
	capture := &Capture{dir: dir, path: filepath.Join(dir, ImageName)}

	name := c.grabber()
	cmd := exec.CommandContext(ctx, name, "-g", geometry, capture.path)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		capture.Close()
		if isNotStarted(err) {
			return nil, fmt.Errorf("%w: failed to run `%s` (is it installed?): %v", ErrToolMissing, name, err)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("%w: `%s` could not capture the region: %s", ErrCaptureFailed, name, msg)
	}

	slog.Debug("region captured", "path", capture.path)
	return capture, nil
}

// Capture is a screenshot inside a directory that is removed by Close.
type Capture struct {
	dir  string
	path string

	once sync.Once
	err  error
}

// Path returns the screenshot location. It is valid until Close.
func (c *Capture) Path() string { return c.path }

// Dir returns the scoped directory. Derived files (such as a preprocessed
// copy of the image) belong here so Close removes them too.
func (c *Capture) Dir() string { return c.dir }

// Close removes the capture directory and everything in it. It is safe to
// call more than once.
func (c *Capture) Close() error {
	c.once.Do(func() {
		c.err = os.RemoveAll(c.dir)
		if c.err != nil {
			slog.Warn("failed to remove capture directory", "dir", c.dir, "error", c.err)
		}
	})
	return c.err
}

// isNotStarted reports whether err means the executable could not be
// launched at all, as opposed to running and failing.
func isNotStarted(err error) bool {
	return errors.Is(err, exec.ErrNotFound) ||
		errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission)
}
