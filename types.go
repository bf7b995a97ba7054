package exvalidate

// Severity expresses how a recoverable decoding anomaly is handled.
type Severity int

const (
	Ignore Severity = iota
	Warn            // log through the context logger and keep going
	Error           // abort loading
)

// Strictness configures enforcement while loading exercise documents.
type Strictness struct {
	OnDuplicateKey Severity // duplicate mapping keys in JSON or YAML; last value wins unless Error.
}

// LoadOpt bundles loading options.
type LoadOpt struct {
	Strictness Strictness
}

// ValidateOpt bundles validation options.
type ValidateOpt struct {
	// Draft is the dialect assumed for schemas without "$schema":
	// "4", "6", "7", "2019" or "2020". Empty means "2020".
	Draft string
	// AssertFormat makes the "format" keyword an assertion.
	AssertFormat bool
	// AllErrors reports every leaf violation instead of the primary one.
	AllErrors bool
	// Lang is a BCP 47 tag for the message printer; empty means "en".
	Lang string
}

// Options is the full configuration for Run.
type Options struct {
	ExerciseFile string
	SchemaFile   string
	Verbose      bool
	Lang         string // console labels, see package i18n
	Load         LoadOpt
	Validate     ValidateOpt
}
