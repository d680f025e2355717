//go:build !gosseract

package ocr

import "context"

// Native is a placeholder so callers compile without the gosseract tag.
type Native struct {
	TessdataPrefix string
}

// NewNative always returns ErrNativeUnavailable in this build.
func NewNative() (*Native, error) {
	return nil, ErrNativeUnavailable
}

// Recognize always fails in this build.
func (n *Native) Recognize(ctx context.Context, imagePath, pack string) (string, error) {
	return "", ErrNativeUnavailable
}
