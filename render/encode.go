package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: png: %w", err)
	}

	return nil
}

// EncodeWebP writes img as lossless WebP.
func EncodeWebP(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("render: webp: %w", err)
	}

	return nil
}

// WriteFile encodes img by the extension of path (.png or .webp, any case)
// and writes it, creating the parent directory when needed.
//
// Errors: ErrUnknownFormat, or a wrapped I/O or encoder error.
func WriteFile(path string, img image.Image) (err error) {
	var enc func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		enc = EncodePNG
	case ".webp":
		enc = EncodeWebP
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()

	return enc(f, img)
}
