package exvalidate

import (
	"fmt"
	"io"
	"strconv"

	"github.com/reoring/exvalidate/i18n"
)

// Reporter writes the console outcome of one validation run.
type Reporter struct {
	w  io.Writer
	tr i18n.Translator
}

// NewReporter returns a Reporter writing to w with labels in lang.
func NewReporter(w io.Writer, lang string) *Reporter {
	return &Reporter{w: w, tr: i18n.For(lang)}
}

// Valid reports a successful validation; a non-nil summary adds the
// verbose lines.
func (r *Reporter) Valid(path string, s *Summary) {
	r.line(i18n.Valid, map[string]string{"file": path})
	if s == nil {
		return
	}
	r.line(i18n.Title, map[string]string{"value": s.Title})
	r.line(i18n.Checkpoints, map[string]string{"value": strconv.Itoa(s.Checkpoints)})
	r.line(i18n.TotalSteps, map[string]string{"value": strconv.Itoa(s.Steps)})
}

// Invalid reports a failed validation with one indented line per issue.
func (r *Reporter) Invalid(path string, iss Issues) {
	r.line(i18n.Invalid, map[string]string{"file": path})
	for _, msg := range iss.Messages() {
		r.line(i18n.ErrorLine, map[string]string{"error": msg})
	}
}

// Failed reports an error that stopped processing.
func (r *Reporter) Failed(path string, err error) {
	r.line(i18n.ErrorProcessing, map[string]string{"file": path, "error": err.Error()})
}

func (r *Reporter) line(code string, data map[string]string) {
	fmt.Fprintln(r.w, r.tr.Message(code, data))
}
