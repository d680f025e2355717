package clipboard

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTool writes a script that stores its stdin in out.
func fakeTool(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wl-copy")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestCopy(t *testing.T) {
	out := filepath.Join(t.TempDir(), "clipboard.txt")
	var warn bytes.Buffer
	c := &Copier{Tool: fakeTool(t, `cat > "`+out+`"`), Warn: &warn}

	ok := c.Copy(context.Background(), "Bonjour le monde")
	assert.True(t, ok)
	assert.Empty(t, warn.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Bonjour le monde", string(data))
}

func TestCopy_ToolMissing(t *testing.T) {
	var warn bytes.Buffer
	missing := filepath.Join(t.TempDir(), "wl-copy")
	c := &Copier{Tool: missing, Warn: &warn}

	assert.NotPanics(t, func() {
		ok := c.Copy(context.Background(), "text")
		assert.False(t, ok)
	})
	assert.True(t, strings.HasPrefix(warn.String(), "(Tip) "), "hint = %q", warn.String())
	assert.Contains(t, warn.String(), "skipping clipboard copy")
}

func TestCopy_ToolFails(t *testing.T) {
	var warn bytes.Buffer
	c := &Copier{Tool: fakeTool(t, `cat >/dev/null; exit 3`), Warn: &warn}

	assert.False(t, c.Copy(context.Background(), "text"))
	assert.Empty(t, warn.String(), "a failing tool is logged, not hinted")
}

func TestNew(t *testing.T) {
	c := New()
	assert.Equal(t, DefaultTool, c.Tool)
	assert.Equal(t, os.Stderr, c.Warn)
}
