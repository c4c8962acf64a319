package layout

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r3"
)

// Format represents a sensor-layout file family.
type Format int

// Supported layout formats.
const (
	FormatUnknown Format = iota
	FormatSFP
	FormatELC
	FormatTXT
	FormatCSD
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatSFP:
		return "SFP"
	case FormatELC:
		return "ELC"
	case FormatTXT:
		return "TXT"
	case FormatCSD:
		return "CSD"
	default:
		return "Unknown"
	}
}

// Suffix returns the filename suffix of the format, including the dot.
func (f Format) Suffix() string {
	for suffix, format := range suffixes {
		if format == f {
			return suffix
		}
	}
	return ""
}

// parseFunc converts the contents of one layout file into a Layout.
type parseFunc func(r io.Reader) (*Layout, error)

var suffixes = map[string]Format{
	".sfp": FormatSFP,
	".elc": FormatELC,
	".txt": FormatTXT,
	".csd": FormatCSD,
}

var parsers = map[Format]parseFunc{
	FormatSFP: parseSFP,
	FormatELC: parseELC,
	FormatTXT: parseTXT,
	FormatCSD: parseCSD,
}

// Formats returns all supported formats in declaration order.
func Formats() []Format {
	return []Format{FormatSFP, FormatELC, FormatTXT, FormatCSD}
}

// DetectFormat resolves the layout family of name from its suffix.
// Suffixes are case-sensitive: "layout.ELC" is not supported.
// No file access is performed.
func DetectFormat(name string) (Format, error) {
	if f, ok := suffixes[filepath.Ext(name)]; ok {
		return f, nil
	}
	return FormatUnknown, &UnsupportedFormatError{Name: name}
}

// Layout holds the raw output of a format parser: parallel label and
// position slices. Index i of both slices describes the same sensor.
type Layout struct {
	Labels    []string
	Positions []r3.Vec
}

// Len returns the number of sensors.
func (l *Layout) Len() int {
	return len(l.Labels)
}

// Parse reads a layout of format f from r.
func Parse(f Format, r io.Reader) (*Layout, error) {
	parse, ok := parsers[f]
	if !ok {
		return nil, &UnsupportedFormatError{Name: f.String()}
	}

	lay, err := parse(r)
	if err != nil {
		return nil, err
	}
	if len(lay.Labels) != len(lay.Positions) {
		return nil, &ParseError{
			Format: f,
			Msg:    fmt.Sprintf("%d labels for %d positions", len(lay.Labels), len(lay.Positions)),
		}
	}
	if lay.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", f, ErrEmptyLayout)
	}
	return lay, nil
}

// ParseFile detects the format of path from its suffix, then opens and parses it.
// Unsupported suffixes fail before the file is opened.
func ParseFile(path string) (*Layout, error) {
	f, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lay, err := Parse(f, file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return lay, nil
}
