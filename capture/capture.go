// Package capture serializes rendered signatures to image files or to
// base64-encoded strings.
package capture

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image encoding.
type Format int

const (
	PNG Format = iota
	JPEG
	BMP
	TIFF
)

// ErrUnknownFormat is returned for formats that can't be encoded.
var ErrUnknownFormat = errors.New("unknown image format")

// JPEGQuality is the quality used for JPEG output.
const JPEGQuality = 90

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// MIMEType returns the media type of the format.
func (f Format) MIMEType() string {
	return "image/" + f.String()
}

// ParseFormat parses a format name, case-insensitively. "jpg" and "tif" are
// accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tiff", "tif":
		return TIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath infers the format from a file name's extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("encode %v: %w", f, err)
	}
	return nil
}

// Base64 returns img encoded in format f as standard base64.
func Base64(img image.Image, f Format) (string, error) {
	var buf bytes.Buffer
	enc := base64.NewEncoder(base64.StdEncoding, &buf)
	if err := Encode(enc, img, f); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode base64: %w", err)
	}
	return buf.String(), nil
}

// DataURL returns img as a data URL, as used by web views.
func DataURL(img image.Image, f Format) (string, error) {
	s, err := Base64(img, f)
	if err != nil {
		return "", err
	}
	return "data:" + f.MIMEType() + ";base64," + s, nil
}

// File writes img to path in format f. The file is written to a temporary
// name in the same directory and renamed into place, so a failed capture
// doesn't leave a partial image behind.
func File(path string, img image.Image, f Format) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".capture-*")
	if err != nil {
		return fmt.Errorf("capture %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()
	if err := Encode(tmp, img, f); err != nil {
		return fmt.Errorf("capture %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("capture %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("capture %s: %w", path, err)
	}
	return nil
}
