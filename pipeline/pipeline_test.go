package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/junparse/format"
	"github.com/dhamidi/junparse/java/tree"
)

const classTree = `{"kind": "ClassDeclaration", "modifiers": ["public"], "name": "Foo",
  "body": [{"kind": "FieldDeclaration", "modifiers": ["public"], "type": {"kind": "BasicType", "name": "int"},
            "declarators": [{"kind": "VariableDeclarator", "name": "x"}]}]}`

const classSource = "public class Foo {\n    public int x;\n}\n"

func writeTree(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Foo.json", expected: "Foo.java"},
		{input: "a/b/Bar.json", expected: "a/b/Bar.java"},
		{input: "noext", expected: "noext.java"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := OutputPath(tt.input); got != tt.expected {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTree(t, dir, "Foo.json", classTree)

	b := &Batch{Renderer: format.New()}
	res := b.RenderFile(path)
	if res.Err != nil {
		t.Fatalf("RenderFile failed: %v", res.Err)
	}
	if res.Source != classSource {
		t.Errorf("Source = %q, want %q", res.Source, classSource)
	}
	if res.Output != "" {
		t.Errorf("Output = %q, want nothing written", res.Output)
	}
	if _, err := os.Stat(filepath.Join(dir, "Foo.java")); !os.IsNotExist(err) {
		t.Errorf("Foo.java exists without Write")
	}
}

func TestRenderFileWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeTree(t, dir, "Foo.json", classTree)

	b := &Batch{Renderer: format.New(), Write: true}
	res := b.RenderFile(path)
	if res.Err != nil {
		t.Fatalf("RenderFile failed: %v", res.Err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "Foo.java"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != classSource {
		t.Errorf("Foo.java = %q, want %q", data, classSource)
	}
}

func TestRenderFileErrors(t *testing.T) {
	dir := t.TempDir()
	b := &Batch{Renderer: format.New()}

	bad := writeTree(t, dir, "Bad.json", `{"kind": "Nope"}`)
	var de *tree.DecodeError
	if res := b.RenderFile(bad); !errors.As(res.Err, &de) {
		t.Errorf("RenderFile(Bad.json) error = %v, want *tree.DecodeError", res.Err)
	}

	unsupported := writeTree(t, dir, "Enum.json", `{"kind": "EnumConstantDeclaration", "name": "A", "body": []}`)
	if res := b.RenderFile(unsupported); !errors.Is(res.Err, format.ErrUnsupportedConstruct) {
		t.Errorf("RenderFile(Enum.json) error = %v, want ErrUnsupportedConstruct", res.Err)
	}

	if res := b.RenderFile(filepath.Join(dir, "missing.json")); !errors.Is(res.Err, os.ErrNotExist) {
		t.Errorf("RenderFile(missing.json) error = %v, want os.ErrNotExist", res.Err)
	}
}

func TestRenderFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"A.json", "B.json", "C.json", "D.json"} {
		paths = append(paths, writeTree(t, dir, name, classTree))
	}
	paths = append(paths, writeTree(t, dir, "Bad.json", `{"kind": "EnumConstantDeclaration", "name": "A", "body": []}`))

	b := &Batch{Renderer: format.New(), Jobs: 2, Write: true}
	results, err := b.RenderFiles(context.Background(), paths)
	if !errors.Is(err, format.ErrUnsupportedConstruct) {
		t.Fatalf("RenderFiles error = %v, want the Bad.json failure", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}
	for i, res := range results {
		if res.Path != paths[i] {
			t.Errorf("result %d is for %s, want %s", i, res.Path, paths[i])
		}
		if i < 4 && (res.Err != nil || res.Output != OutputPath(paths[i])) {
			t.Errorf("result %d = %+v, want a written file", i, res)
		}
	}
}

func TestRenderFilesCancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeTree(t, dir, "A.json", classTree)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &Batch{Renderer: format.New(), Jobs: 1}
	if _, err := b.RenderFiles(ctx, []string{path}); !errors.Is(err, context.Canceled) {
		t.Errorf("RenderFiles error = %v, want context.Canceled", err)
	}
}

func TestTreeFiles(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, "B.json", classTree)
	writeTree(t, dir, "A.json", classTree)
	writeTree(t, dir, "notes.txt", "")

	got, err := TreeFiles(dir)
	if err != nil {
		t.Fatalf("TreeFiles failed: %v", err)
	}
	want := []string{filepath.Join(dir, "A.json"), filepath.Join(dir, "B.json")}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("TreeFiles() = %v, want %v", got, want)
	}
}
