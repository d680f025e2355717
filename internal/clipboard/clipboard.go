// Package clipboard copies text to the Wayland clipboard with wl-copy.
//
// Copying is best effort: every failure is reported as a warning and never
// as an error, so a successful translation is never turned into a failed run.
package clipboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// DefaultTool is the clipboard writer.
const DefaultTool = "wl-copy"

// Copier writes text to the clipboard tool's stdin.
type Copier struct {
	// Tool is the executable name or path; empty means DefaultTool.
	Tool string

	// Warn receives the user-facing hint when the tool cannot be
	// launched. Nil means os.Stderr.
	Warn io.Writer
}

// New returns a Copier using wl-copy and printing hints to stderr.
func New() *Copier {
	return &Copier{Tool: DefaultTool, Warn: os.Stderr}
}

// Copy sends text to the clipboard tool. It reports whether the tool ran to
// completion.
func (c *Copier) Copy(ctx context.Context, text string) bool {
	name := c.Tool
	if name == "" {
		name = DefaultTool
	}
	warn := c.Warn
	if warn == nil {
		warn = os.Stderr
	}

	cmd := exec.CommandContext(ctx, name)
	cmd.Stdin = strings.NewReader(text)

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(warn, "(Tip) %s not found, skipping clipboard copy.\n", name)
		slog.Debug("clipboard tool not started", "tool", name, "error", err)
		return false
	}

	if err := cmd.Wait(); err != nil {
		slog.Warn("clipboard copy failed", "tool", name, "error", err)
		return false
	}

	slog.Debug("translation copied to clipboard", "tool", name)
	return true
}
