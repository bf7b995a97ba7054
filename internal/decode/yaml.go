package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrMultipleDocuments is returned when a YAML stream holds more than one
// document.
var ErrMultipleDocuments = errors.New("expected a single document in the stream")

// ErrExcessiveAliasing is returned when alias expansion dominates the
// decoded tree.
var ErrExcessiveAliasing = errors.New("document contains excessive aliasing")

// YAML decodes a single-document YAML stream into the same JSON-compatible
// tree that JSON produces. Only core tags are accepted; aliases are resolved
// and merge keys applied. An empty stream yields nil.
func YAML(data []byte, opts Options) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	var next yaml.Node
	if err := dec.Decode(&next); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, ErrMultipleDocuments
	}
	w := &nodeWalker{opts: opts, expanding: make(map[*yaml.Node]bool)}
	return w.value(&root, nil)
}

type nodeWalker struct {
	opts Options

	// expanding holds the anchored nodes whose aliases are being walked.
	expanding  map[*yaml.Node]bool
	aliasDepth int
	nodes      int
	aliased    int
}

// Same thresholds as the yaml.v3 decoder: small documents may alias freely,
// large ones must be mostly literal.
const (
	aliasRatioRangeLow  = 400000
	aliasRatioRangeHigh = 4000000
	aliasRatioRange     = float64(aliasRatioRangeHigh - aliasRatioRangeLow)
)

func allowedAliasRatio(nodes int) float64 {
	switch {
	case nodes <= aliasRatioRangeLow:
		return 0.99
	case nodes >= aliasRatioRangeHigh:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(nodes-aliasRatioRangeLow)/aliasRatioRange)
	}
}

func (w *nodeWalker) count() error {
	w.nodes++
	if w.aliasDepth > 0 {
		w.aliased++
	}
	if w.aliased > 100 && w.nodes > 1000 && float64(w.aliased)/float64(w.nodes) > allowedAliasRatio(w.nodes) {
		return ErrExcessiveAliasing
	}
	return nil
}

func (w *nodeWalker) alias(n *yaml.Node, path []string) (any, error) {
	target := n.Alias
	if w.expanding[target] {
		return nil, &AliasCycleError{Anchor: n.Value, Line: n.Line, Col: n.Column}
	}
	w.expanding[target] = true
	w.aliasDepth++
	defer func() {
		delete(w.expanding, target)
		w.aliasDepth--
	}()
	return w.value(target, path)
}

func (w *nodeWalker) value(n *yaml.Node, path []string) (any, error) {
	if err := w.count(); err != nil {
		return nil, err
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return w.value(n.Content[0], path)
	case yaml.AliasNode:
		return w.alias(n, path)
	case yaml.MappingNode:
		if tag := n.ShortTag(); tag != "!!map" {
			return nil, &UnsupportedTagError{Tag: tag, Line: n.Line, Col: n.Column}
		}
		return w.mapping(n, path)
	case yaml.SequenceNode:
		if tag := n.ShortTag(); tag != "!!seq" {
			return nil, &UnsupportedTagError{Tag: tag, Line: n.Line, Col: n.Column}
		}
		arr := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := w.value(c, index(path, i))
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return scalar(n)
	default:
		return nil, nil
	}
}

func (w *nodeWalker) mapping(n *yaml.Node, path []string) (map[string]any, error) {
	m := make(map[string]any, len(n.Content)/2)
	first := make(map[string][2]int, len(n.Content)/2)
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge" {
			merges = append(merges, v)
			continue
		}
		key, err := keyString(k)
		if err != nil {
			return nil, err
		}
		if pos, dup := first[key]; dup {
			err := w.opts.duplicate(&DuplicateKeyError{
				Key: key, Path: Pointer(path),
				FirstLine: pos[0], FirstCol: pos[1],
				Line: k.Line, Col: k.Column,
			})
			if err != nil {
				return nil, err
			}
		}
		first[key] = [2]int{k.Line, k.Column}
		val, err := w.value(v, child(path, key))
		if err != nil {
			return nil, err
		}
		m[key] = val
	}
	// Explicit keys win over merged ones; earlier merge sources win over later.
	for _, src := range merges {
		if err := w.merge(m, src, path); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (w *nodeWalker) merge(dst map[string]any, src *yaml.Node, path []string) error {
	v, err := w.value(src, path)
	if err != nil {
		return err
	}
	sources := []any{v}
	if seq, ok := v.([]any); ok {
		sources = seq
	}
	for _, s := range sources {
		m, ok := s.(map[string]any)
		if !ok {
			return fmt.Errorf("line %d: map merge requires a mapping or a sequence of mappings", src.Line)
		}
		for k, v := range m {
			if _, ok := dst[k]; !ok {
				dst[k] = v
			}
		}
	}
	return nil
}

func keyString(k *yaml.Node) (string, error) {
	for k.Kind == yaml.AliasNode {
		k = k.Alias
	}
	if k.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
	}
	v, err := scalar(k)
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case nil:
		return "null", nil
	default:
		return fmt.Sprint(t), nil
	}
}

func scalar(n *yaml.Node) (any, error) {
	if n.Tag == "!" {
		return n.Value, nil
	}
	switch tag := n.ShortTag(); tag {
	case "!!str", "!!timestamp", "!!binary":
		return n.Value, nil
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	case "!!int":
		if isJSONNumber(n.Value) {
			return json.Number(n.Value), nil
		}
		var i int64
		if err := n.Decode(&i); err == nil {
			return json.Number(strconv.FormatInt(i, 10)), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return json.Number(strconv.FormatUint(u, 10)), nil
		}
		return floatValue(n)
	case "!!float":
		if isJSONNumber(n.Value) {
			return json.Number(n.Value), nil
		}
		return floatValue(n)
	default:
		return nil, &UnsupportedTagError{Tag: tag, Line: n.Line, Col: n.Column}
	}
}

func floatValue(n *yaml.Node) (any, error) {
	var f float64
	if err := n.Decode(&f); err != nil {
		return nil, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, &NonFiniteNumberError{Value: n.Value, Line: n.Line, Col: n.Column}
	}
	return json.Number(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

var jsonNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// isJSONNumber reports whether s is already a valid JSON number literal, so
// YAML "1.0" and JSON 1.0 keep the same textual form.
func isJSONNumber(s string) bool { return jsonNumber.MatchString(s) }
