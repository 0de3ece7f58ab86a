package dataset

import "errors"

// Sentinel errors returned by the loader and accessors.
var (
	// ErrKeyNotFound indicates that no dataset has the requested name.
	ErrKeyNotFound = errors.New("dataset: entry not found")

	// ErrBadShape indicates that a dataset cannot be converted to the
	// requested shape.
	ErrBadShape = errors.New("dataset: unexpected shape")

	// ErrUnsupportedFormat indicates an unknown document format.
	ErrUnsupportedFormat = errors.New("dataset: unsupported format")
)

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Collection is a decoded document: dataset name → value. Values are nil,
// bool, int64, float64, string, []any or map[string]any.
type Collection struct {
	entries map[string]any
}
