// Package imgfile reads and writes the image files the shift driver works
// on. Decoding goes through image.Decode, so every codec registered here
// (PNG, JPEG and GIF from the standard library, BMP, TIFF and WebP from
// golang.org/x/image) is accepted.
package imgfile

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned for inputs whose header is not a known image type.
var ErrNotImage = errors.New("imgfile: not an image")

// ErrUnknownFormat is returned for output paths with no encoder.
var ErrUnknownFormat = errors.New("imgfile: unknown output format")

// DefaultQuality is the JPEG quality used when none is given.
const DefaultQuality = 90

// Enough for every matcher in filetype.
const sniffLen = 261

// Sniff reads the start of path and returns the detected image extension.
func Sniff(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	head = head[:n]
	if !filetype.IsImage(head) {
		return "", fmt.Errorf("%s: %w", path, ErrNotImage)
	}
	kind, err := filetype.Match(head)
	if err != nil {
		return "", err
	}
	return kind.Extension, nil
}

// Open sniffs and decodes the image at path.
func Open(path string) (image.Image, error) {
	if _, err := Sniff(path); err != nil {
		return nil, err
	}
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// ToNRGBA returns img with straight alpha and 8 bits per channel. An
// *image.NRGBA comes back as is; anything else is copied.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		// premultiplied and straight alpha agree when alpha is 0xff
		rgba := clone.AsRGBA(img)
		return &image.NRGBA{Pix: rgba.Pix, Stride: rgba.Stride, Rect: rgba.Rect}
	}
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}

// Clone returns a deep copy of img.
func Clone(img *image.NRGBA) *image.NRGBA {
	pix := make([]byte, len(img.Pix))
	copy(pix, img.Pix)
	return &image.NRGBA{Pix: pix, Stride: img.Stride, Rect: img.Rect}
}

// EncoderFor picks an encoder from the extension of path.
func EncoderFor(path string, quality int) (imgio.Encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		if quality <= 0 {
			quality = DefaultQuality
		}
		if quality > 100 {
			return nil, fmt.Errorf("jpeg quality %d out of 1..100", quality)
		}
		return imgio.JPEGEncoder(quality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%q: %w", ext, ErrUnknownFormat)
	}
}

// Save encodes img to path in the format its extension names.
func Save(path string, img image.Image, quality int) error {
	enc, err := EncoderFor(path, quality)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := enc(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
