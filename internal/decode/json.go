package decode

import (
	"bytes"
	"errors"
	"io"

	j "github.com/goccy/go-json"
)

// ErrTrailingData is returned when a JSON input holds more than one value.
var ErrTrailingData = errors.New("invalid character after top-level value")

// JSON decodes exactly one JSON value into a JSON-compatible tree
// (map[string]any, []any, string, bool, nil and json.Number).
func JSON(data []byte, opts Options) (any, error) {
	if opts.OnDuplicate != nil {
		if err := scanJSONDuplicates(data, opts); err != nil {
			return nil, err
		}
	}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return v, nil
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type dupFrame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	path         []string
	pendingKey   string
	nextIndex    int
}

// scanJSONDuplicates walks the token stream once and reports duplicated
// object keys through opts. Syntax errors are left to the value decoder.
func scanJSONDuplicates(data []byte, opts Options) error {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var stack []dupFrame

	// childPath returns the path of the value that is about to start inside
	// the current container and advances the container's cursor.
	childPath := func() []string {
		if len(stack) == 0 {
			return nil
		}
		top := &stack[len(stack)-1]
		if top.kind == kindObject {
			top.expectingKey = true
			return child(top.path, top.pendingKey)
		}
		p := index(top.path, top.nextIndex)
		top.nextIndex++
		return p
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			// io.EOF or a syntax error; either way decoding proper decides.
			return nil
		}
		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{':
				stack = append(stack, dupFrame{kind: kindObject, keys: make(map[string]struct{}), expectingKey: true, path: childPath()})
			case '[':
				stack = append(stack, dupFrame{kind: kindArray, path: childPath()})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].kind == kindObject && stack[n-1].expectingKey {
				top := &stack[n-1]
				if _, ok := top.keys[v]; ok {
					if err := opts.duplicate(&DuplicateKeyError{Key: v, Path: Pointer(top.path)}); err != nil {
						return err
					}
				}
				top.keys[v] = struct{}{}
				top.pendingKey = v
				top.expectingKey = false
				continue
			}
			childPath()
		default:
			childPath()
		}
	}
}
