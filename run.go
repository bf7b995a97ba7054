package exvalidate

import (
	"context"
	"io"

	"github.com/reoring/exvalidate/internal/ctxlog"
)

// Run loads the schema and the exercise document, validates, and writes the
// report to w. It returns nil when the document is valid, ErrInvalid when it
// is not, and the processing error otherwise. Every outcome is reported to w
// before Run returns.
func Run(ctx context.Context, w io.Writer, opt Options) error {
	rep := NewReporter(w, opt.Lang)
	logger := ctxlog.FromContext(ctx).With("exercise", opt.ExerciseFile, "schema", opt.SchemaFile)

	res, doc, err := check(ctx, opt)
	if err != nil {
		logger.Debug("Processing failed.", "error", err)
		rep.Failed(opt.ExerciseFile, err)
		return err
	}
	if !res.Valid {
		rep.Invalid(opt.ExerciseFile, res.Issues)
		return ErrInvalid
	}

	var summary *Summary
	if opt.Verbose {
		s, err := Summarize(doc)
		if err != nil {
			logger.Debug("Summary failed.", "error", err)
			rep.Failed(opt.ExerciseFile, err)
			return err
		}
		summary = &s
	}
	rep.Valid(opt.ExerciseFile, summary)
	return nil
}

func check(ctx context.Context, opt Options) (Result, any, error) {
	schema, err := LoadSchema(ctx, opt.SchemaFile)
	if err != nil {
		return Result{}, nil, err
	}
	doc, err := LoadDocument(ctx, opt.ExerciseFile, opt.Load)
	if err != nil {
		return Result{}, nil, err
	}
	vopt := opt.Validate
	if vopt.Lang == "" {
		vopt.Lang = opt.Lang
	}
	res, err := Validate(ctx, opt.SchemaFile, schema, doc, vopt)
	if err != nil {
		return Result{}, nil, err
	}
	return res, doc, nil
}
