//go:build gosseract

package ocr

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/otiai10/gosseract/v2"
)

// Native is an Engine backed by libtesseract through gosseract.
type Native struct {
	// TessdataPrefix overrides the directory holding *.traineddata files.
	// Empty uses the library default ($TESSDATA_PREFIX or the build path).
	TessdataPrefix string
}

// NewNative returns the in-process engine.
func NewNative() (*Native, error) {
	return &Native{}, nil
}

// Recognize runs Tesseract in-process on imagePath with pack. The call is
// not interruptible once started; ctx is only checked beforehand.
func (n *Native) Recognize(ctx context.Context, imagePath, pack string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if n.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(n.TessdataPrefix); err != nil {
			return "", fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}

	if err := client.SetLanguage(pack); err != nil {
		return "", fmt.Errorf("%w: failed to set language %q: %v", ErrEngineFailed, pack, err)
	}

	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("%w: failed to set image: %v", ErrEngineFailed, err)
	}

	slog.Debug("running libtesseract", "version", client.Version(), "image", imagePath, "pack", pack)
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEngineFailed, err)
	}
	return text, nil
}
