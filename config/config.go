// Package config loads report generation settings from YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lvillar/fieldreport"
	"github.com/lvillar/fieldreport/report"
)

// Config is the complete file configuration.
type Config struct {
	Layout     LayoutConfig     `yaml:"layout"`
	Document   DocumentConfig   `yaml:"document"`
	Code       CodeConfig       `yaml:"code"`
	Letterhead LetterheadConfig `yaml:"letterhead"`
}

// LayoutConfig holds page composition settings, in points.
type LayoutConfig struct {
	Spacing          float64 `yaml:"spacing"`
	GalleryRowHeight float64 `yaml:"gallery_row_height"`
	FontFamily       string  `yaml:"font_family"`
	FontSize         float64 `yaml:"font_size"`
	DateLayout       string  `yaml:"date_layout"`
}

// DocumentConfig holds PDF metadata settings.
type DocumentConfig struct {
	Author string `yaml:"author"`
	// ID is the fixed document identifier; empty lets the host pick one.
	ID string `yaml:"id"`
	// Created pins the creation date (2006-01-02 or RFC 3339) for
	// reproducible output.
	Created string `yaml:"created"`
	// PageNumbers is the footer format, e.g. "Page %d of %d"; empty hides it.
	PageNumbers string `yaml:"page_numbers"`
	Watermark   string `yaml:"watermark"`
}

// CodeConfig selects the header reference code.
type CodeConfig struct {
	Symbology string `yaml:"symbology"` // qr, code128, pdf417 or none
}

// LetterheadConfig points at a PDF page drawn under every report page.
type LetterheadConfig struct {
	Path string `yaml:"path"`
	Page int    `yaml:"page"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			Spacing:          fieldreport.DefaultSpacing,
			GalleryRowHeight: fieldreport.DefaultGalleryRowHeight,
			FontFamily:       "Helvetica",
			FontSize:         10,
			DateLayout:       fieldreport.DefaultDateLayout,
		},
		Code: CodeConfig{
			Symbology: string(fieldreport.SymbologyQR),
		},
		Letterhead: LetterheadConfig{
			Page: 1,
		},
	}
}

// Load reads the configuration at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Relative letterhead paths are relative to the config file.
	if p := cfg.Letterhead.Path; p != "" && !filepath.IsAbs(p) {
		cfg.Letterhead.Path = filepath.Join(filepath.Dir(path), p)
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns the defaults when path is empty or
// does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return Load(path)
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Options converts the configuration to report options. The letterhead file
// is read here.
func (c *Config) Options() ([]report.Option, error) {
	opts := []report.Option{
		report.WithSpacing(c.Layout.Spacing),
		report.WithGalleryRowHeight(c.Layout.GalleryRowHeight),
		report.WithFontFamily(c.Layout.FontFamily),
		report.WithBaseFontSize(c.Layout.FontSize),
		report.WithDateLayout(c.Layout.DateLayout),
		report.WithAuthor(c.Document.Author),
	}

	if c.Document.ID != "" {
		opts = append(opts, report.WithDocumentID(c.Document.ID))
	}

	if c.Document.Created != "" {
		t, err := parseTime(c.Document.Created)
		if err != nil {
			return nil, err
		}
		opts = append(opts, report.WithCreationDate(t))
	}

	if c.Document.PageNumbers != "" {
		opts = append(opts, report.WithPageNumbers(c.Document.PageNumbers))
	}
	if c.Document.Watermark != "" {
		opts = append(opts, report.WithWatermark(c.Document.Watermark))
	}

	sym, err := symbology(c.Code.Symbology)
	if err != nil {
		return nil, err
	}
	opts = append(opts, report.WithCodeSymbology(sym))

	if c.Letterhead.Path != "" {
		data, err := os.ReadFile(c.Letterhead.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read letterhead: %w", err)
		}
		page := c.Letterhead.Page
		if page < 1 {
			page = 1
		}
		opts = append(opts, report.WithLetterhead(data, page))
	}
	return opts, nil
}

func symbology(s string) (fieldreport.Symbology, error) {
	switch s {
	case "none":
		return fieldreport.SymbologyNone, nil
	case "", string(fieldreport.SymbologyQR):
		return fieldreport.SymbologyQR, nil
	case string(fieldreport.SymbologyCode128), string(fieldreport.SymbologyPDF417):
		return fieldreport.Symbology(s), nil
	}
	return "", fmt.Errorf("unknown code symbology %q", s)
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid created date %q", s)
	}
	return t, nil
}
