package reportdoc

import (
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lvillar/fieldreport"
)

// Loader resolves image sources. A source is either a data URI
// ("data:image/png;base64,...") or a file path, relative paths being resolved
// against BaseDir.
type Loader struct {
	BaseDir string
	Logger  *slog.Logger
	// ReadFile reads a file; os.ReadFile when nil.
	ReadFile func(name string) ([]byte, error)
}

func (l *Loader) logger() *slog.Logger {
	if l == nil || l.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l.Logger
}

// Load decodes the image at src.
func (l *Loader) Load(src string) (fieldreport.Image, error) {
	data, err := l.read(src)
	if err != nil {
		return fieldreport.Image{}, err
	}
	return fieldreport.DecodeImage(src, data)
}

// LoadAll decodes every source, skipping and logging those that fail.
func (l *Loader) LoadAll(srcs []string) []fieldreport.Image {
	var out []fieldreport.Image
	for _, src := range srcs {
		img, err := l.Load(src)
		if err != nil {
			l.logger().Warn("skipping image", "source", abbreviate(src), "error", err)
			continue
		}
		out = append(out, img)
	}
	return out
}

func (l *Loader) read(src string) ([]byte, error) {
	if strings.HasPrefix(src, "data:") {
		comma := strings.IndexByte(src, ',')
		if comma < 0 || !strings.HasSuffix(src[:comma], ";base64") {
			return nil, fmt.Errorf("reportdoc: unsupported data URI")
		}
		data, err := base64.StdEncoding.DecodeString(src[comma+1:])
		if err != nil {
			return nil, fmt.Errorf("reportdoc: decoding data URI: %w", err)
		}
		return data, nil
	}

	path := src
	if l != nil && l.BaseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(l.BaseDir, path)
	}
	read := os.ReadFile
	if l != nil && l.ReadFile != nil {
		read = l.ReadFile
	}
	data, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("reportdoc: reading image: %w", err)
	}
	return data, nil
}

// abbreviate shortens data URIs for log output.
func abbreviate(src string) string {
	if len(src) > 64 {
		return src[:61] + "..."
	}
	return src
}
