package exvalidate

import (
	"encoding/json"
	"fmt"
)

// Summary holds the figures printed for a valid document in verbose mode.
type Summary struct {
	Title       string
	Checkpoints int
	Steps       int // sum of len(steps) over all checkpoints
}

// SummaryError reports a document that lacks the conventional exercise
// shape required by Summarize.
type SummaryError struct {
	Path   string
	Reason string
}

func (e *SummaryError) Error() string { return fmt.Sprintf("%s: %s", e.Path, e.Reason) }

// Summarize extracts metadata.title, the number of checkpoints and the total
// number of steps. The schema does not have to require these keys, so a
// schema-valid document can still fail here. A checkpoint without "steps"
// counts as zero steps.
func Summarize(doc any) (Summary, error) {
	root, ok := doc.(map[string]any)
	if !ok {
		return Summary{}, &SummaryError{Path: "/", Reason: "document is not a mapping"}
	}
	meta, ok := root["metadata"]
	if !ok {
		return Summary{}, &SummaryError{Path: "/metadata", Reason: "missing"}
	}
	metaMap, ok := meta.(map[string]any)
	if !ok {
		return Summary{}, &SummaryError{Path: "/metadata", Reason: "not a mapping"}
	}
	title, ok := metaMap["title"]
	if !ok {
		return Summary{}, &SummaryError{Path: "/metadata/title", Reason: "missing"}
	}

	cps, ok := root["checkpoints"]
	if !ok {
		return Summary{}, &SummaryError{Path: "/checkpoints", Reason: "missing"}
	}
	cpList, ok := cps.([]any)
	if !ok {
		return Summary{}, &SummaryError{Path: "/checkpoints", Reason: "not a sequence"}
	}
	s := Summary{Title: scalarText(title), Checkpoints: len(cpList)}
	for i, cp := range cpList {
		cpMap, ok := cp.(map[string]any)
		if !ok {
			return Summary{}, &SummaryError{Path: fmt.Sprintf("/checkpoints/%d", i), Reason: "not a mapping"}
		}
		steps, ok := cpMap["steps"]
		if !ok {
			continue
		}
		stepList, ok := steps.([]any)
		if !ok {
			return Summary{}, &SummaryError{Path: fmt.Sprintf("/checkpoints/%d/steps", i), Reason: "not a sequence"}
		}
		s.Steps += len(stepList)
	}
	return s, nil
}

func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return "null"
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
