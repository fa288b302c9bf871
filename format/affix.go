package format

import (
	"strings"

	"github.com/dhamidi/junparse/java/tree"
)

// Prefix joins prefix operators in order. Adjacent + or - operators are
// separated by a space so that "-", "-" does not turn into a decrement.
func Prefix(ops []string) string {
	var out string
	for _, op := range ops {
		out = glue(out, op)
	}
	return out
}

// Postfix joins postfix operators in order.
func Postfix(ops []string) string {
	return strings.Join(ops, "")
}

// Affix places prefix operators before core and postfix operators after it.
func Affix(prefix []string, core string, postfix []string) string {
	return glue(Prefix(prefix), core) + Postfix(postfix)
}

// Selectors joins a selector chain. Each selector is rendered with render;
// array selectors are emitted as is, all others after a dot.
func Selectors(selectors []tree.Expression, render func(tree.Expression) string) string {
	parts := make([]string, 0, len(selectors))
	for _, sel := range selectors {
		text := render(sel)
		if _, ok := sel.(*tree.ArraySelector); ok {
			parts = append(parts, text)
		} else {
			parts = append(parts, "."+text)
		}
	}
	return strings.Join(parts, "")
}

func glue(left, right string) string {
	if left == "" || right == "" {
		return left + right
	}
	last := left[len(left)-1]
	if (last == '-' || last == '+') && right[0] == last {
		return left + " " + right
	}
	return left + right
}
