package exvalidate

// Package exvalidate validates exercise documents (YAML or JSON) against a
// JSON Schema and reports the outcome on a console.
//
// - LoadSchema / LoadDocument parse files into JSON-compatible trees
//   (map[string]any, []any, string, bool, nil, json.Number)
// - Validate delegates JSON Schema semantics to santhosh-tekuri/jsonschema and
//   returns Issues (JSON Pointer, code, message)
// - Summarize and Reporter produce the console lines; Run chains everything
//
// Typical usage:
//
//  err := exvalidate.Run(ctx, os.Stdout, exvalidate.Options{
//  	ExerciseFile: "intro.yaml",
//  	SchemaFile:   "exercise-schema.json",
//  	Verbose:      true,
//  })
//  if errors.Is(err, exvalidate.ErrInvalid) { ... }
//
