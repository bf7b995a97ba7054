package exvalidate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/reoring/exvalidate/internal/ctxlog"
	"github.com/reoring/exvalidate/internal/decode"
)

// Result is the outcome of validating one document against one schema.
type Result struct {
	Valid  bool
	Issues Issues
}

// Drafts lists the accepted ValidateOpt.Draft names.
var Drafts = map[string]*jsonschema.Draft{
	"4":    jsonschema.Draft4,
	"6":    jsonschema.Draft6,
	"7":    jsonschema.Draft7,
	"2019": jsonschema.Draft2019,
	"2020": jsonschema.Draft2020,
}

// ParseDraft maps a draft name to its dialect; "" selects draft 2020-12.
func ParseDraft(name string) (*jsonschema.Draft, error) {
	if name == "" {
		return jsonschema.Draft2020, nil
	}
	d, ok := Drafts[name]
	if !ok {
		return nil, fmt.Errorf("unknown draft %q (want 4, 6, 7, 2019 or 2020)", name)
	}
	return d, nil
}

// Validate checks doc against schema. schemaPath locates the schema on disk
// so that relative "$ref"s resolve against its directory.
//
// A document that violates the schema, or a schema that violates its
// meta-schema, yields a Result with Valid false and a nil error. By default
// only the primary violation is reported: the leaf with the shallowest
// instance location, the first one on ties.
func Validate(ctx context.Context, schemaPath string, schema, doc any, opt ValidateOpt) (Result, error) {
	draft, err := ParseDraft(opt.Draft)
	if err != nil {
		return Result{}, err
	}
	tag := language.English
	if opt.Lang != "" {
		if tag, err = language.Parse(opt.Lang); err != nil {
			return Result{}, fmt.Errorf("language %q: %w", opt.Lang, err)
		}
	}
	p := message.NewPrinter(tag)

	loc, err := filepath.Abs(schemaPath)
	if err != nil {
		return Result{}, err
	}
	c := jsonschema.NewCompiler()
	c.DefaultDraft(draft)
	if opt.AssertFormat {
		c.AssertFormat()
	}
	if err := c.AddResource(loc, schema); err != nil {
		return Result{}, fmt.Errorf("add schema %s: %w", schemaPath, err)
	}
	sch, err := c.Compile(loc)
	if err != nil {
		var sve *jsonschema.SchemaValidationError
		var ve *jsonschema.ValidationError
		if errors.As(err, &sve) && errors.As(sve.Err, &ve) {
			iss := issuesFrom(ve, CodeSchemaError, opt.AllErrors, p)
			ctxlog.FromContext(ctx).Debug("Schema rejected by its meta-schema.", "schema", schemaPath, "issues", len(iss))
			return Result{Issues: iss}, nil
		}
		return Result{}, fmt.Errorf("compile schema %s: %w", schemaPath, err)
	}

	err = sch.Validate(doc)
	if err == nil {
		return Result{Valid: true}, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return Result{}, err
	}
	iss := issuesFrom(ve, CodeSchemaViolation, opt.AllErrors, p)
	ctxlog.FromContext(ctx).Debug("Document rejected.", "schema", schemaPath, "issues", len(iss), "error", iss.Error())
	return Result{Issues: iss}, nil
}

func issuesFrom(ve *jsonschema.ValidationError, code string, all bool, p *message.Printer) Issues {
	var leaves []*jsonschema.ValidationError
	collectLeaves(ve, &leaves)
	if !all {
		leaves = []*jsonschema.ValidationError{primary(leaves)}
	}
	iss := make(Issues, 0, len(leaves))
	for _, l := range leaves {
		iss = append(iss, Issue{
			Path:    decode.Pointer(l.InstanceLocation),
			Code:    code,
			Message: l.ErrorKind.LocalizedString(p),
			Keyword: decode.Pointer(l.ErrorKind.KeywordPath()),
		})
	}
	return iss
}

func collectLeaves(ve *jsonschema.ValidationError, out *[]*jsonschema.ValidationError) {
	if len(ve.Causes) == 0 {
		*out = append(*out, ve)
		return
	}
	for _, c := range ve.Causes {
		collectLeaves(c, out)
	}
}

func primary(leaves []*jsonschema.ValidationError) *jsonschema.ValidationError {
	best := leaves[0]
	for _, l := range leaves[1:] {
		if len(l.InstanceLocation) < len(best.InstanceLocation) {
			best = l
		}
	}
	return best
}
