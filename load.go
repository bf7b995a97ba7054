package exvalidate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reoring/exvalidate/internal/ctxlog"
	"github.com/reoring/exvalidate/internal/decode"
)

// Format identifies the serialization of an exercise document.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the document format from the path's extension,
// case-insensitively.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return FormatUnknown, &UnsupportedFormatError{Ext: ext}
	}
}

// LoadSchema reads a JSON Schema document. The file must hold exactly one
// JSON value; duplicate keys are not checked.
func LoadSchema(ctx context.Context, path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v, err := decode.JSON(data, decode.Options{})
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Schema loaded.", "path", path, "bytes", len(data))
	return v, nil
}

// LoadDocument reads an exercise document, choosing the decoder from the
// extension (see FormatFromPath). The result is a JSON-compatible tree.
func LoadDocument(ctx context.Context, path string, opt LoadOpt) (any, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx)
	dopts := decode.Options{}
	switch opt.Strictness.OnDuplicateKey {
	case Warn:
		dopts.OnDuplicate = func(e *decode.DuplicateKeyError) error {
			logger.Warn("Duplicate key; the last value wins.", "path", path, "key", e.Key, "at", e.Path)
			return nil
		}
	case Error:
		dopts.OnDuplicate = func(e *decode.DuplicateKeyError) error { return e }
	}

	var v any
	if format == FormatYAML {
		v, err = decode.YAML(data, dopts)
	} else {
		v, err = decode.JSON(data, dopts)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	logger.Debug("Exercise document loaded.", "path", path, "format", format.String(), "bytes", len(data))
	return v, nil
}
