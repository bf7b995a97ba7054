package exvalidate

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	// CodeSchemaViolation marks a document that does not satisfy the schema.
	CodeSchemaViolation = "schema_violation"
	// CodeSchemaError marks a schema that is not a valid JSON Schema.
	CodeSchemaError = "schema_error"
)

// SchemaErrorPrefix starts every rendered CodeSchemaError issue.
const SchemaErrorPrefix = "Schema error: "

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer into the document (or into the schema for CodeSchemaError).
	Code    string
	Message string
	// Keyword is the JSON Pointer of the failing keyword inside the schema, when known.
	Keyword string
}

// String renders the issue the way it is shown on the console.
func (it Issue) String() string {
	s := fmt.Sprintf("at '%s': %s", it.Path, it.Message)
	if it.Code == CodeSchemaError {
		return SchemaErrorPrefix + s
	}
	return s
}

// Issues is a collection of validation entries that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if n := len(iss); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Messages renders every issue with Issue.String.
func (iss Issues) Messages() []string {
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.String())
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// UnsupportedFormatError is returned by LoadDocument for a path whose
// extension is none of .json, .yml or .yaml.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return "unsupported file format: (no extension)"
	}
	return "unsupported file format: " + e.Ext
}

// ErrInvalid is returned by Run when the document was loaded but failed
// validation. The report has already been written.
var ErrInvalid = errors.New("exvalidate: document is invalid")
