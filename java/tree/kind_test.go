package tree

import (
	"reflect"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
		ok       bool
	}{
		{input: "ClassDeclaration", expected: KindClassDeclaration, ok: true},
		{input: "MethodInvocation", expected: KindMethodInvocation, ok: true},
		{input: "Statement", expected: KindEmptyStatement, ok: true},
		{input: "InferredFormalParameter", expected: KindFormalParameter, ok: true},
		{input: "Unknown", expected: KindUnknown, ok: false},
		{input: "", expected: KindUnknown, ok: false},
		{input: "classdeclaration", expected: KindUnknown, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseKind(tt.input)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("ParseKind(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestEveryKindHasAConstructor(t *testing.T) {
	for kind, name := range kindNames {
		if kind == KindUnknown {
			continue
		}
		newNode, ok := constructors[kind]
		if !ok {
			t.Errorf("%s has no JSON constructor", name)
			continue
		}
		if got := newNode().Kind(); got != kind {
			t.Errorf("constructor for %s builds a %s", name, got)
		}
		if parsed, ok := ParseKind(name); !ok || parsed != kind {
			t.Errorf("ParseKind(%q) = %v, %v", name, parsed, ok)
		}
	}
}

func TestModifiersSorted(t *testing.T) {
	tests := []struct {
		name     string
		input    Modifiers
		expected []string
	}{
		{name: "empty", input: nil, expected: nil},
		{name: "public final", input: Modifiers{"public", "final"}, expected: []string{"final", "public"}},
		{name: "duplicates", input: Modifiers{"static", "public", "static"}, expected: []string{"public", "static"}},
		{name: "blank entries", input: Modifiers{"", "abstract"}, expected: []string{"abstract"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Sorted(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Sorted() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestModifiersSortedLeavesInputAlone(t *testing.T) {
	m := Modifiers{"public", "final"}
	m.Sorted()
	if m[0] != "public" || m[1] != "final" {
		t.Errorf("Sorted() reordered its receiver: %v", m)
	}
}
