package tree

import (
	"reflect"
	"testing"
)

func TestWalkOrder(t *testing.T) {
	n := &ClassDeclaration{
		Name: "A",
		Body: []Member{
			&FieldDeclaration{
				Type: &BasicType{Name: "int"},
				Declarators: []*VariableDeclarator{
					{Name: "x", Initializer: &ClassCreator{
						Type: &ReferenceType{Name: "T"},
						Body: &ClassBody{Members: []Member{&Initializer{}}},
					}},
				},
			},
		},
	}

	var got []Kind
	Walk(n, func(n Node) bool {
		got = append(got, n.Kind())
		return true
	})

	want := []Kind{
		KindClassDeclaration,
		KindFieldDeclaration,
		KindBasicType,
		KindVariableDeclarator,
		KindClassCreator,
		KindReferenceType,
		KindInitializer,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk visited %v, want %v", got, want)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	n := &IfStatement{
		Condition: &MemberReference{Member: "x"},
		Then:      &BlockStatement{Statements: []Statement{&ReturnStatement{}}},
	}

	var got []Kind
	Walk(n, func(n Node) bool {
		got = append(got, n.Kind())
		return n.Kind() != KindBlockStatement
	})

	want := []Kind{KindIfStatement, KindMemberReference, KindBlockStatement}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk visited %v, want %v", got, want)
	}
}

func TestCountKindsSelectors(t *testing.T) {
	n := &MethodInvocation{
		Primary: Primary{Selectors: []Expression{
			&ArraySelector{Index: &Literal{Value: "0"}},
			&MemberReference{Member: "b"},
		}},
		Member:    "a",
		Arguments: []Expression{&Literal{Value: "1"}},
	}

	counts := CountKinds(n)
	want := map[Kind]int{
		KindMethodInvocation: 1,
		KindArraySelector:    1,
		KindLiteral:          2,
		KindMemberReference:  1,
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("CountKinds() = %v, want %v", counts, want)
	}
}
