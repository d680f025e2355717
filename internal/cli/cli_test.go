package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func TestParse_Defaults(t *testing.T) {
	opts, err := Parse(nil, &bytes.Buffer{}, noEnv)
	require.NoError(t, err)

	assert.Equal(t, "EN", opts.SourceLang)
	assert.Equal(t, "EN", opts.TargetLang)
	assert.False(t, opts.Copy)
	assert.Empty(t, opts.OCRLang)
	assert.Empty(t, opts.APIKey)
	assert.Equal(t, EngineCLI, opts.OCREngine)
	assert.False(t, opts.Preprocess)
	assert.Zero(t, opts.Threshold)
}

func TestParse_AllFlags(t *testing.T) {
	opts, err := Parse([]string{
		"-s", "JA",
		"-t", "EN-GB",
		"--copy",
		"--ocr-lang", "chi_tra",
		"--deepl-api-key", "k123",
		"--ocr-engine", "native",
		"--preprocess",
		"--threshold", "140",
	}, &bytes.Buffer{}, noEnv)
	require.NoError(t, err)

	assert.Equal(t, "JA", opts.SourceLang)
	assert.Equal(t, "EN-GB", opts.TargetLang)
	assert.True(t, opts.Copy)
	assert.Equal(t, "chi_tra", opts.OCRLang)
	assert.Equal(t, "k123", opts.APIKey)
	assert.Equal(t, EngineNative, opts.OCREngine)
	assert.True(t, opts.Preprocess)
	assert.Equal(t, uint8(140), opts.Threshold)
}

func TestParse_LongForms(t *testing.T) {
	opts, err := Parse([]string{"--source-lang=de", "--target-lang=fr", "-c"}, &bytes.Buffer{}, noEnv)
	require.NoError(t, err)
	assert.Equal(t, "de", opts.SourceLang, "codes are validated later, not by the parser")
	assert.Equal(t, "fr", opts.TargetLang)
	assert.True(t, opts.Copy)
}

func TestParse_APIKeyFromEnv(t *testing.T) {
	env := func(k string) (string, bool) {
		if k == "DEEPL_API_KEY" {
			return "env-key", true
		}
		return "", false
	}

	opts, err := Parse(nil, &bytes.Buffer{}, env)
	require.NoError(t, err)
	assert.Equal(t, "env-key", opts.APIKey)

	opts, err = Parse([]string{"--deepl-api-key", "flag-key"}, &bytes.Buffer{}, env)
	require.NoError(t, err)
	assert.Equal(t, "flag-key", opts.APIKey)
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	_, err := Parse([]string{"--help"}, &out, func(k string) (string, bool) { return "secret", true })
	require.True(t, errors.Is(err, ErrHelp))

	usage := out.String()
	assert.Contains(t, usage, "--source-lang")
	assert.Contains(t, usage, "ZH-HANT")
	assert.Contains(t, usage, "DEEPL_API_BASE")
	assert.NotContains(t, usage, "secret", "env key must not leak into --help")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--nope"}},
		{"bad engine", []string{"--ocr-engine", "cloud"}},
		{"threshold without preprocess", []string{"--threshold", "100"}},
		{"threshold out of range", []string{"--preprocess", "--threshold", "300"}},
		{"positional", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args, &bytes.Buffer{}, noEnv)
			assert.Error(t, err)
		})
	}
}

func TestParse_Version(t *testing.T) {
	opts, err := Parse([]string{"-v"}, &bytes.Buffer{}, noEnv)
	require.NoError(t, err)
	assert.True(t, opts.ShowVersion)
}
