// Package assets locates and decodes texture images before they are uploaded to the GPU.
package assets

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// ErrMissing is returned (wrapped) when a texture file does not exist.
var ErrMissing = errors.New("asset not found")

// fallbackRoots let relative asset paths resolve when run from cmd/museum.
var fallbackRoots = []string{"../.."}

// Resolve returns the first existing candidate for path, trying it as given and then
// under each fallback root. Absolute paths are only tried as given.
func Resolve(path string) (string, error) {
	candidates := []string{filepath.Clean(path)}
	if !filepath.IsAbs(path) {
		for _, root := range fallbackRoots {
			candidates = append(candidates, filepath.Join(root, path))
		}
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrMissing, path)
}

// CheckAll resolves every path and reports all missing ones in a single error.
func CheckAll(paths []string) error {
	var missing []string
	for _, p := range paths {
		if _, err := Resolve(p); err != nil {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissing, strings.Join(missing, ", "))
	}
	return nil
}

// FitSize scales w x h down, keeping the aspect ratio, so neither side exceeds maxSize.
// Sizes already inside the limit, and maxSize <= 0, are returned unchanged.
func FitSize(w, h, maxSize int) (int, int) {
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return w, h
	}
	if w >= h {
		return maxSize, max(1, h*maxSize/w)
	}
	return max(1, w*maxSize/h), maxSize
}

// LoadImage decodes the image at path (PNG or JPEG) and downsamples it with a linear
// filter if either side is larger than maxSize.
func LoadImage(path string, maxSize int) (image.Image, error) {
	resolved, err := Resolve(path)
	if err != nil {
		return nil, err
	}
	img, err := imgio.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", resolved, err)
	}
	b := img.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), maxSize)
	if w == b.Dx() && h == b.Dy() {
		return img, nil
	}
	return transform.Resize(img, w, h, transform.Linear), nil
}
