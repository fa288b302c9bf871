package tree

// BasicType is a primitive type such as int or boolean.
type BasicType struct {
	Base
	Name       string `tree:"name"`
	Dimensions int    `tree:"dimensions"`
}

func (*BasicType) Kind() Kind { return KindBasicType }

// ReferenceType is a class or interface type. A nested type such as
// Map.Entry<K, V> is a chain of reference types linked through SubType.
type ReferenceType struct {
	Base
	Name       string          `tree:"name"`
	Arguments  []*TypeArgument `tree:"arguments"`
	SubType    *ReferenceType  `tree:"sub_type"`
	Dimensions int             `tree:"dimensions"`
}

func (*ReferenceType) Kind() Kind { return KindReferenceType }

// TypeArgument is one argument of a parameterized type. PatternType is
// empty for a plain type argument, "?" for an unbounded wildcard, and
// "extends" or "super" for a bounded wildcard.
type TypeArgument struct {
	Base
	Type        Type   `tree:"type"`
	PatternType string `tree:"pattern_type"`
}

func (*TypeArgument) Kind() Kind { return KindTypeArgument }

type TypeParameter struct {
	Base
	Name    string `tree:"name"`
	Extends []Type `tree:"extends"`
}

func (*TypeParameter) Kind() Kind { return KindTypeParameter }

func (*BasicType) typeNode()     {}
func (*ReferenceType) typeNode() {}

func (*BasicType) expressionNode()     {}
func (*ReferenceType) expressionNode() {}
