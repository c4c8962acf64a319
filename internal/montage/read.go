package montage

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/born-ml/montage/internal/layout"
)

// Source kinds reported in debug logs.
const (
	sourceDir     = "dir"
	sourceFile    = "file"
	sourceBuiltin = "builtin"
)

// ReadMontage reads the montage stored in the layout file kind.
//
// The parser is chosen from the suffix of kind (.sfp, .elc, .txt or .csd);
// other suffixes fail with ErrUnsupportedFormat before any file is opened.
// With WithNames, only matching sensors are kept, in the order requested,
// and ErrNoMatchingNames is returned when none match.
//
// Example:
//
//	m, err := ReadMontage("easycap-1020.txt", WithPath("/data/layouts"))
//	if err != nil {
//	    log.Fatal(err)
//	}
func ReadMontage(kind string, opts ...Option) (*Montage, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	format, err := layout.DetectFormat(kind)
	if err != nil {
		return nil, err
	}

	file, source, err := o.open(kind)
	if err != nil {
		return nil, fmt.Errorf("read montage %s: %w", kind, err)
	}
	defer file.Close()

	o.logger.Debug("reading montage",
		"kind", kind,
		"format", format,
		"source", source,
	)

	lay, err := layout.Parse(format, file)
	if err != nil {
		return nil, fmt.Errorf("read montage %s: %w", kind, err)
	}

	names, positions := lay.Labels, lay.Positions
	if o.hasNames {
		sel := Select(o.names, names)
		o.logger.Debug("selected montage channels",
			"kind", kind,
			"requested", len(o.names),
			"loaded", len(names),
			"matched", sel.Len(),
		)
		if sel.Empty() {
			return nil, fmt.Errorf("read montage %s: %w", kind, ErrNoMatchingNames)
		}
		names, positions = sel.Names, sel.Positions(positions)
	}

	return &Montage{
		positions: positions,
		names:     names,
		kind:      filepath.Base(kind),
		scaled:    o.scale,
	}, nil
}

// open resolves kind to a readable file and reports where it was found.
func (o *options) open(kind string) (fs.File, string, error) {
	if info, err := os.Stat(kind); err == nil && info.Mode().IsRegular() {
		file, err := os.Open(kind)
		return file, sourceFile, err
	}
	if o.path != "" {
		file, err := os.Open(filepath.Join(o.path, kind))
		return file, sourceDir, err
	}
	file, err := openBuiltin(filepath.ToSlash(kind))
	return file, sourceBuiltin, err
}
