package ocr

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// writeScript creates an executable shell script and returns its path.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tesseract")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

// createImageWithText renders text with basicfont, scaled up so Tesseract
// can read it, and writes it as PNG.
func createImageWithText(t *testing.T, text string, scale int) string {
	t.Helper()

	// basicfont.Face7x13 is 7 pixels wide, 13 pixels tall per character
	width := len(text)*7 + 40
	height := 40

	small := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(20), Y: fixed.I(25)},
	}
	d.DrawString(text)

	img := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := small.At(x, y)
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.Set(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}

	path := filepath.Join(t.TempDir(), "capture.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestCLI_Recognize_Args(t *testing.T) {
	engine := &CLI{Path: writeScript(t, `printf '%s|%s|%s|%s' "$1" "$2" "$3" "$4"`)}

	got, err := engine.Recognize(context.Background(), "/tmp/x/capture.png", "chi_sim")
	if err != nil {
		t.Fatalf("Recognize failed: %v", err)
	}
	want := "/tmp/x/capture.png|stdout|-l|chi_sim"
	if got != want {
		t.Errorf("args = %q, want %q", got, want)
	}
}

func TestCLI_Recognize_RawOutput(t *testing.T) {
	engine := &CLI{Path: writeScript(t, `printf 'Hel-\nlo\n\n'`)}

	got, err := engine.Recognize(context.Background(), "img.png", "eng")
	if err != nil {
		t.Fatalf("Recognize failed: %v", err)
	}
	if got != "Hel-\nlo\n\n" {
		t.Errorf("CLI should return raw output, got %q", got)
	}
}

func TestCLI_Recognize_NonZeroExit(t *testing.T) {
	engine := &CLI{Path: writeScript(t, `echo "Error opening data file /usr/share/tessdata/xyz.traineddata" >&2
echo "Failed loading language 'xyz'" >&2
exit 1`)}

	_, err := engine.Recognize(context.Background(), "img.png", "xyz")
	if !errors.Is(err, ErrEngineFailed) {
		t.Fatalf("error = %v, want ErrEngineFailed", err)
	}
	if !strings.Contains(err.Error(), "Failed loading language 'xyz'") {
		t.Errorf("stderr not surfaced verbatim: %v", err)
	}
}

func TestCLI_Recognize_Missing(t *testing.T) {
	engine := &CLI{Path: filepath.Join(t.TempDir(), "no-tesseract")}

	_, err := engine.Recognize(context.Background(), "img.png", "eng")
	if !errors.Is(err, ErrEngineMissing) {
		t.Fatalf("error = %v, want ErrEngineMissing", err)
	}
	if !strings.Contains(err.Error(), "is it installed") {
		t.Errorf("error lacks install hint: %v", err)
	}
}

func TestCLI_RealTesseract(t *testing.T) {
	if _, err := exec.LookPath(DefaultTesseract); err != nil {
		t.Skip("Tesseract not available")
	}

	imgPath := createImageWithText(t, "HELLO WORLD", 4)
	text, err := Recognize(context.Background(), NewCLI(), imgPath, "eng")
	if err != nil {
		if strings.Contains(err.Error(), "language") {
			t.Skip("eng language data not installed")
		}
		t.Fatalf("Recognize failed: %v", err)
	}

	upper := strings.ToUpper(text)
	if !strings.Contains(upper, "HELLO") && !strings.Contains(upper, "WORLD") {
		t.Errorf("OCR result %q does not contain the rendered words", text)
	}
}

func TestNativeEngine_Availability(t *testing.T) {
	n, err := NewNative()
	if err != nil {
		if !errors.Is(err, ErrNativeUnavailable) {
			t.Fatalf("NewNative error = %v, want ErrNativeUnavailable", err)
		}
		return
	}
	if n == nil {
		t.Fatal("NewNative returned nil engine without error")
	}
}
