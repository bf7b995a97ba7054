package decode

import "fmt"

// DuplicateKeyError reports a key that appears more than once in the same
// mapping. Line/Col are 1-based and zero when the decoder does not track
// positions (JSON); Path is the JSON Pointer of the enclosing mapping.
type DuplicateKeyError struct {
	Key       string
	Path      string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("duplicate key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
	}
	return fmt.Sprintf("duplicate key %q in %s", e.Key, e.Path)
}

// UnsupportedTagError is returned for YAML nodes carrying a tag outside the
// JSON-compatible core set (local tags such as !include or !!python/object).
type UnsupportedTagError struct {
	Tag  string
	Line int
	Col  int
}

func (e *UnsupportedTagError) Error() string {
	return fmt.Sprintf("could not determine a constructor for the tag %q at %d:%d", e.Tag, e.Line, e.Col)
}

// Options tunes both decoders.
type Options struct {
	// OnDuplicate is called for every duplicated mapping key. Returning nil
	// keeps decoding and the last value wins; a non-nil error aborts. A nil
	// func behaves like one that always returns nil.
	OnDuplicate func(*DuplicateKeyError) error
}

func (o Options) duplicate(e *DuplicateKeyError) error {
	if o.OnDuplicate == nil {
		return nil
	}
	return o.OnDuplicate(e)
}

// AliasCycleError is returned for an alias that refers to a node containing
// it, e.g. `a: &a [*a]`.
type AliasCycleError struct {
	Anchor string
	Line   int
	Col    int
}

func (e *AliasCycleError) Error() string {
	return fmt.Sprintf("anchor '%s' value contains itself (at %d:%d)", e.Anchor, e.Line, e.Col)
}

// NonFiniteNumberError is returned for YAML .inf and .nan values, which have
// no JSON representation.
type NonFiniteNumberError struct {
	Value string
	Line  int
	Col   int
}

func (e *NonFiniteNumberError) Error() string {
	return fmt.Sprintf("non-finite number %s at %d:%d has no JSON equivalent", e.Value, e.Line, e.Col)
}
