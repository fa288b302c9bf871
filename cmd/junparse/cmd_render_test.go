package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderCmdWrite(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "Foo.json")
	tree := `{"kind": "ClassDeclaration", "name": "Foo", "body": [
		{"kind": "MethodDeclaration", "name": "run", "body": [{"kind": "ReturnStatement"}]}]}`
	if err := os.WriteFile(input, []byte(tree), 0644); err != nil {
		t.Fatalf("write tree: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "defaults",
			args:     []string{"-w", input},
			expected: "class Foo {\n    void run() {\n        return;\n    }\n}\n",
		},
		{
			name:     "tabs",
			args:     []string{"-w", "--tabs", input},
			expected: "class Foo {\n\tvoid run() {\n\t\treturn;\n\t}\n}\n",
		},
		{
			name:     "narrow indent at depth one",
			args:     []string{"-w", "--indent", "2", "--depth", "1", input},
			expected: "  class Foo {\n    void run() {\n      return;\n    }\n  }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRenderCmd()
			cmd.SetArgs(tt.args)
			if err := cmd.Execute(); err != nil {
				t.Fatalf("render %v failed: %v", tt.args, err)
			}
			data, err := os.ReadFile(filepath.Join(dir, "Foo.java"))
			if err != nil {
				t.Fatalf("read output: %v", err)
			}
			if string(data) != tt.expected {
				t.Errorf("Foo.java = %q, want %q", data, tt.expected)
			}
		})
	}
}

func TestRenderCmdRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "write without files", args: []string{"-w"}},
		{name: "wrong extension", args: []string{"Foo.java"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRenderCmd()
			cmd.SetArgs(tt.args)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			if err := cmd.Execute(); err == nil {
				t.Errorf("render %v succeeded, want an error", tt.args)
			}
		})
	}
}

func TestRootVersionFlag(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("junparse --version failed: %v", err)
	}

	want := fmt.Sprintf("junparse: version %q\n", Version().Core())
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRenderCmdNullListEntry(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "Bad.json")
	tree := `{"kind": "FieldDeclaration", "type": {"kind": "BasicType", "name": "int"}, "declarators": [null]}`
	if err := os.WriteFile(input, []byte(tree), 0644); err != nil {
		t.Fatalf("write tree: %v", err)
	}

	cmd := newRenderCmd()
	cmd.SetArgs([]string{"-w", input})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err == nil {
		t.Fatal("render succeeded on a tree with a null declarator")
	}
	if _, err := os.Stat(filepath.Join(dir, "Bad.java")); !os.IsNotExist(err) {
		t.Errorf("Bad.java exists after a failed render (stat error %v)", err)
	}
}
