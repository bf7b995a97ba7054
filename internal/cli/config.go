package cli

import (
	"fmt"
	"slices"

	"github.com/reoring/exvalidate"
	"github.com/reoring/exvalidate/i18n"
)

// DefaultSchema is used when --schema is not given.
const DefaultSchema = "exercise-schema.json"

// Config is the parsed command line.
type Config struct {
	ExerciseFile string
	Schema       string
	Verbose      bool

	AllErrors    bool
	StrictKeys   bool
	Draft        string
	AssertFormat bool
	Lang         string

	LogLevel  string
	LogFormat string
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// validate checks enumerated flag values.
func (c *Config) validate() error {
	if _, err := exvalidate.ParseDraft(c.Draft); err != nil {
		return err
	}
	if !slices.Contains(i18n.Languages, c.Lang) {
		return fmt.Errorf("unknown language %q (want one of %v)", c.Lang, i18n.Languages)
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("unknown log level %q (want one of %v)", c.LogLevel, logLevels)
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		return fmt.Errorf("unknown log format %q (want one of %v)", c.LogFormat, logFormats)
	}
	return nil
}

// Options projects the command line onto the library options.
func (c *Config) Options() exvalidate.Options {
	onDup := exvalidate.Warn
	if c.StrictKeys {
		onDup = exvalidate.Error
	}
	return exvalidate.Options{
		ExerciseFile: c.ExerciseFile,
		SchemaFile:   c.Schema,
		Verbose:      c.Verbose,
		Lang:         c.Lang,
		Load:         exvalidate.LoadOpt{Strictness: exvalidate.Strictness{OnDuplicateKey: onDup}},
		Validate: exvalidate.ValidateOpt{
			Draft:        c.Draft,
			AssertFormat: c.AssertFormat,
			AllErrors:    c.AllErrors,
			Lang:         c.Lang,
		},
	}
}
