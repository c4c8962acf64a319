// Package montage reads EEG/MEG sensor montages from layout files.
//
// This package wraps internal implementations and exports a clean public API
// for loading sensor positions from the supported layout families:
//   - .sfp (EGI geodesic sensor files)
//   - .elc (ASA electrode files, 10-5 system)
//   - .txt (Easycap angular layouts)
//   - .csd (CSD toolbox layouts)
//
// Example usage:
//
//	import "github.com/born-ml/montage/montage"
//
//	m, err := montage.ReadMontage("standard-1020.elc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Kind(), m.Len())
//	for i, name := range m.Names() {
//	    fmt.Println(name, m.Positions()[i])
//	}
package montage

import (
	"log/slog"

	"github.com/born-ml/montage/internal/layout"
	"github.com/born-ml/montage/internal/montage"
	"gonum.org/v1/gonum/spatial/r3"
)

// Montage is a named, ordered list of 3D sensor positions.
type Montage = montage.Montage

// Option configures ReadMontage.
type Option = montage.Option

// Format represents a sensor-layout file family.
type Format = layout.Format

// Supported layout formats.
const (
	FormatUnknown Format = layout.FormatUnknown
	FormatSFP     Format = layout.FormatSFP
	FormatELC     Format = layout.FormatELC
	FormatTXT     Format = layout.FormatTXT
	FormatCSD     Format = layout.FormatCSD
)

// BuiltinLayout describes a reference layout shipped with the package.
type BuiltinLayout = montage.BuiltinLayout

// ParseError describes a row that could not be parsed.
type ParseError = layout.ParseError

// UnsupportedFormatError reports a filename with an unknown suffix.
type UnsupportedFormatError = layout.UnsupportedFormatError

// Errors returned by ReadMontage and NewMontage.
var (
	ErrUnsupportedFormat = layout.ErrUnsupportedFormat
	ErrParse             = layout.ErrParse
	ErrEmptyLayout       = layout.ErrEmptyLayout
	ErrNoMatchingNames   = montage.ErrNoMatchingNames
	ErrLengthMismatch    = montage.ErrLengthMismatch
)

// ReadMontage reads the montage stored in the layout file kind.
//
// The format is chosen from the suffix of kind. Files are looked up at kind
// itself, then in the WithPath directory when given, then among the bundled
// reference layouts.
//
// Example:
//
//	m, err := montage.ReadMontage("GSN-HydroCel-129.sfp",
//	    montage.WithPath("/data/layouts"),
//	    montage.WithNames("E1", "E2", "Cz"),
//	)
func ReadMontage(kind string, opts ...Option) (*Montage, error) {
	return montage.ReadMontage(kind, opts...)
}

// NewMontage creates a Montage from parallel positions and names.
func NewMontage(positions []r3.Vec, names []string, kind string) (*Montage, error) {
	return montage.NewMontage(positions, names, kind)
}

// WithNames keeps only the named sensors, in the order given.
func WithNames(names ...string) Option {
	return montage.WithNames(names...)
}

// WithPath sets the directory that contains the layout file.
func WithPath(dir string) Option {
	return montage.WithPath(dir)
}

// WithScale records whether positions are meant to be rescaled for plotting.
func WithScale(scale bool) Option {
	return montage.WithScale(scale)
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return montage.WithLogger(logger)
}

// DetectFormat returns the layout family of a filename.
func DetectFormat(name string) (Format, error) {
	return layout.DetectFormat(name)
}

// Builtin lists the reference layouts bundled with the package.
func Builtin() ([]BuiltinLayout, error) {
	return montage.Builtin()
}
