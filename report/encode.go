package report

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an output format that has no encoder.
var ErrUnknownFormat = errors.New("unknown output format")

// Output formats.
const (
	FormatTable   = "table"
	FormatText    = "text"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
	FormatCBOR    = "cbor"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("report: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// IsFormat reports whether format names a known output format.
func IsFormat(format string) bool {
	switch format {
	case FormatTable, FormatText, FormatYAML, FormatMsgpack, FormatCBOR:
		return true
	}

	return false
}

// IsEncoding reports whether format is a serialization rather than a
// human-readable rendering.
func IsEncoding(format string) bool {
	return format == FormatYAML || format == FormatMsgpack || format == FormatCBOR
}

// Encode serializes v to w.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(v)
	case FormatCBOR:
		return cborEncMode.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
