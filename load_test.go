package exvalidate_test

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/exvalidate"
	"github.com/reoring/exvalidate/internal/ctxlog"
	"github.com/reoring/exvalidate/internal/decode"
)

func TestFormatFromPath(t *testing.T) {
	cases := map[string]exvalidate.Format{
		"a.yaml":        exvalidate.FormatYAML,
		"a.YML":         exvalidate.FormatYAML,
		"dir.v1/a.Yaml": exvalidate.FormatYAML,
		"a.json":        exvalidate.FormatJSON,
		"a.JSON":        exvalidate.FormatJSON,
	}
	for path, want := range cases {
		got, err := exvalidate.FormatFromPath(path)
		if err != nil || got != want {
			t.Fatalf("FormatFromPath(%q) = %v, %v; want %v", path, got, err, want)
		}
	}
}

func TestFormatFromPath_Unsupported(t *testing.T) {
	for path, ext := range map[string]string{"notes.txt": ".txt", "README": "", "a.yaml.bak": ".bak"} {
		_, err := exvalidate.FormatFromPath(path)
		var ufe *exvalidate.UnsupportedFormatError
		if !errors.As(err, &ufe) {
			t.Fatalf("%q: want UnsupportedFormatError, got %v", path, err)
		}
		if ufe.Ext != ext {
			t.Fatalf("%q: ext %q, want %q", path, ufe.Ext, ext)
		}
	}
}

func TestLoadDocument_UnsupportedExtensionNamed(t *testing.T) {
	_, err := exvalidate.LoadDocument(context.Background(), "testdata/notes.txt", exvalidate.LoadOpt{})
	if err == nil || err.Error() != "unsupported file format: .txt" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadDocument_YAMLAndJSONTwins(t *testing.T) {
	ctx := context.Background()
	y, err := exvalidate.LoadDocument(ctx, "testdata/intro.yaml", exvalidate.LoadOpt{})
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	j, err := exvalidate.LoadDocument(ctx, "testdata/intro.json", exvalidate.LoadOpt{})
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if diff := cmp.Diff(j, y); diff != "" {
		t.Fatalf("documents differ (-json +yaml):\n%s", diff)
	}
}

func TestLoadDocument_Missing(t *testing.T) {
	_, err := exvalidate.LoadDocument(context.Background(), "testdata/nope.yaml", exvalidate.LoadOpt{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want ErrNotExist, got %v", err)
	}
}

func TestLoadDocument_DuplicateKeys(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "dup.yaml", "metadata:\n  title: A\n  title: B\n")

	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	v, err := exvalidate.LoadDocument(ctx, p, exvalidate.LoadOpt{Strictness: exvalidate.Strictness{OnDuplicateKey: exvalidate.Warn}})
	if err != nil {
		t.Fatalf("warn mode must not fail: %v", err)
	}
	if got := v.(map[string]any)["metadata"].(map[string]any)["title"]; got != "B" {
		t.Fatalf("last value must win, got %v", got)
	}
	if !strings.Contains(buf.String(), "Duplicate key") || !strings.Contains(buf.String(), "key=title") {
		t.Fatalf("expected a warning, got %q", buf.String())
	}

	_, err = exvalidate.LoadDocument(ctx, p, exvalidate.LoadOpt{Strictness: exvalidate.Strictness{OnDuplicateKey: exvalidate.Error}})
	var dup *decode.DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("want DuplicateKeyError, got %v", err)
	}
}

func TestLoadSchema(t *testing.T) {
	ctx := context.Background()
	s, err := exvalidate.LoadSchema(ctx, "testdata/exercise-schema.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.(map[string]any)["title"] != "Exercise" {
		t.Fatalf("unexpected schema tree: %v", s)
	}

	_, err = exvalidate.LoadSchema(ctx, "testdata/broken-schema.json")
	if err == nil || !strings.Contains(err.Error(), "parse schema testdata/broken-schema.json") {
		t.Fatalf("want parse error, got %v", err)
	}
}

func TestLoadSchema_RejectsYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "schema.json", "type: object\n")
	if _, err := exvalidate.LoadSchema(context.Background(), p); err == nil {
		t.Fatal("schemas are parsed strictly as JSON")
	}
}
