// Package thumbnail loads recipe images from disk and scales them to card
// size. Missing or unreadable images are replaced by a placeholder.
package thumbnail

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"github.com/rs/zerolog"
)

const (
	contentTypePNG  = "image/png"
	contentTypeJPEG = "image/jpeg"
)

// ErrDimensionTooLarge is returned when a requested width or height exceeds
// the loader's maximum.
var ErrDimensionTooLarge = errors.New("image dimension too large")

var (
	placeholderBackground = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	placeholderForeground = color.RGBA{R: 180, G: 180, B: 180, A: 255}
)

// Image is an encoded thumbnail ready to be written to a client.
type Image struct {
	Data        []byte
	ContentType string
	Placeholder bool
}

// Loader resolves image paths inside a root directory and scales them.
type Loader struct {
	root          string
	defaultWidth  int
	defaultHeight int
	maxDimension  int
	logger        zerolog.Logger
}

// NewLoader creates a loader. Image paths are resolved against root and may
// not point outside it. Requests larger than maxDimension on either side are
// rejected.
func NewLoader(root string, width, height, maxDimension int, logger zerolog.Logger) *Loader {
	if root == "" {
		root = "."
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Loader{
		root:          filepath.Clean(root),
		defaultWidth:  width,
		defaultHeight: height,
		maxDimension:  maxDimension,
		logger:        logger.With().Str("component", "thumbnail").Logger(),
	}
}

// Load reads the image at path and scales it to width x height. Non-positive
// dimensions fall back to the loader defaults. A nil or empty path, a path
// outside the root, a missing file or an undecodable file yields a
// placeholder. Oversized dimensions and encoding failures are errors.
func (l *Loader) Load(path *string, width, height int) (*Image, error) {
	if width <= 0 {
		width = l.defaultWidth
	}
	if height <= 0 {
		height = l.defaultHeight
	}
	if width > l.maxDimension || height > l.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionTooLarge, width, height, l.maxDimension)
	}

	if path == nil || strings.TrimSpace(*path) == "" {
		return encodePlaceholder(width, height)
	}

	resolved, ok := l.resolve(*path)
	if !ok {
		l.logger.Warn().Str("path", *path).Msg("image path outside root, using placeholder")
		return encodePlaceholder(width, height)
	}

	f, err := os.Open(resolved)
	if err != nil {
		l.logger.Debug().Err(err).Str("path", resolved).Msg("image not readable, using placeholder")
		return encodePlaceholder(width, height)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		l.logger.Warn().Err(err).Str("path", resolved).Msg("failed to decode image, using placeholder")
		return encodePlaceholder(width, height)
	}

	scaled := resize.Resize(uint(width), uint(height), img, resize.Lanczos3)

	var buf bytes.Buffer
	contentType := contentTypePNG
	switch format {
	case "jpeg":
		contentType = contentTypeJPEG
		err = jpeg.Encode(&buf, scaled, nil)
	default:
		err = png.Encode(&buf, scaled)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return &Image{Data: buf.Bytes(), ContentType: contentType}, nil
}

// resolve joins relative paths onto the root and reports false for any path
// that ends up outside it.
func (l *Loader) resolve(path string) (string, bool) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.root, path)
	}
	path = filepath.Clean(path)

	rel, err := filepath.Rel(l.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return path, true
}

// Placeholder renders a light gray card with a darker centred square.
func Placeholder(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: placeholderBackground}, image.Point{}, draw.Src)

	side := min(width, height) / 3
	x0 := (width - side) / 2
	y0 := (height - side) / 2
	mark := image.Rect(x0, y0, x0+side, y0+side)
	draw.Draw(img, mark, &image.Uniform{C: placeholderForeground}, image.Point{}, draw.Src)

	return img
}

func encodePlaceholder(width, height int) (*Image, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Placeholder(width, height)); err != nil {
		return nil, fmt.Errorf("failed to encode placeholder: %w", err)
	}
	return &Image{Data: buf.Bytes(), ContentType: contentTypePNG, Placeholder: true}, nil
}
