package tree

import "reflect"

// Walk calls visit for n and then, in field order, for every node below
// it. Children of a node are skipped when visit returns false.
func Walk(n Node, visit func(Node) bool) {
	if isNilNode(n) || !visit(n) {
		return
	}
	walkFields(reflect.ValueOf(n).Elem(), visit)
}

func walkFields(v reflect.Value, visit func(Node) bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		switch {
		case f.Anonymous:
			if fv.Kind() == reflect.Struct {
				walkFields(fv, visit)
			}
		case fv.Type() == classBodyType:
			if !fv.IsNil() {
				walkValue(reflect.ValueOf(fv.Interface().(*ClassBody).Members), visit)
			}
		default:
			walkValue(fv, visit)
		}
	}
}

func walkValue(v reflect.Value, visit func(Node) bool) {
	switch {
	case v.Type().Implements(nodeType):
		if !v.IsNil() {
			Walk(v.Interface().(Node), visit)
		}
	case v.Kind() == reflect.Slice && v.Type().Elem().Implements(nodeType):
		for i := 0; i < v.Len(); i++ {
			walkValue(v.Index(i), visit)
		}
	}
}

// CountKinds returns how many nodes of each kind the tree rooted at n
// contains.
func CountKinds(n Node) map[Kind]int {
	counts := make(map[Kind]int)
	Walk(n, func(n Node) bool {
		counts[n.Kind()]++
		return true
	})
	return counts
}
