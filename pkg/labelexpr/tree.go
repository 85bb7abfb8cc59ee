package labelexpr

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Label is the constraint for values a filter expression matches against.
// Any integer type works; expression operands must fit its range.
type Label interface {
	constraints.Integer
}

// nodeKind tags the variant of an arena slot.
type nodeKind uint8

const (
	nodeLabel nodeKind = iota
	nodeOr
	nodeAnd
	nodeNot
)

// node is one arena slot. Or and And use both child indices, Not uses
// only left, Label uses neither.
type node[T Label] struct {
	kind  nodeKind
	label T
	left  int32
	right int32
}

// Tree is an immutable, compiled filter expression.
// It is created by Compile and cannot be modified afterwards.
//
// Tree is safe for concurrent Check calls. Each caller should supply its
// own label slice, or at least not mutate a slice another goroutine is
// checking against.
//
// Nodes live in a single backing arena addressed by index, so the whole
// tree is released as one allocation when it becomes unreachable.
type Tree[T Label] struct {
	expr  string
	nodes []node[T]
	root  int32
}

// Compile parses an expression and builds its evaluation tree.
//
// Compilation runs the full pipeline: tokenize, reorder to postfix by
// operator precedence, then fold the postfix sequence into a tree. It
// fails with ErrInvalidToken for characters outside the alphabet,
// ErrMalformedExpression when the expression does not reduce to a single
// tree, and ErrLabelOutOfRange for operands that do not fit T. On error
// no tree is returned.
//
// Example:
//
//	tree, err := labelexpr.Compile[uint32]("(1|2)&!3")
func Compile[T Label](expr string, opts ...Option) (*Tree[T], error) {
	cfg := defaultCompileConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	toks, err := tokenize(expr)
	if err != nil {
		return nil, err
	}

	rpn, err := toPostfix(toks, cfg.strictParens)
	if err != nil {
		return nil, err
	}

	return build[T](expr, rpn)
}

// build folds a postfix token sequence into a tree using a stack of
// arena indices. Exactly one index must remain when the input is
// exhausted; anything else means the original expression was malformed.
func build[T Label](expr string, rpn []token) (*Tree[T], error) {
	t := &Tree[T]{
		expr:  expr,
		nodes: make([]node[T], 0, len(rpn)),
	}
	var stack []int32

	pop := func() (int32, bool) {
		if len(stack) == 0 {
			return 0, false
		}
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return idx, true
	}

	for _, tok := range rpn {
		switch tok.kind {
		case tokenLabel:
			label, err := parseLabel[T](tok.text)
			if err != nil {
				return nil, err
			}
			stack = append(stack, t.push(node[T]{kind: nodeLabel, label: label}))

		case tokenOr, tokenAnd:
			// Stack order: the most recent operand is the right child.
			right, okR := pop()
			left, okL := pop()
			if !okR || !okL {
				return nil, fmt.Errorf("%w: missing operand for %q", ErrMalformedExpression, tok.text)
			}
			kind := nodeOr
			if tok.kind == tokenAnd {
				kind = nodeAnd
			}
			stack = append(stack, t.push(node[T]{kind: kind, left: left, right: right}))

		case tokenNot:
			child, ok := pop()
			if !ok {
				return nil, fmt.Errorf("%w: missing operand for %q", ErrMalformedExpression, tok.text)
			}
			stack = append(stack, t.push(node[T]{kind: nodeNot, left: child}))
		}
	}

	switch len(stack) {
	case 1:
		t.root = stack[0]
		return t, nil
	case 0:
		return nil, fmt.Errorf("%w: empty expression", ErrMalformedExpression)
	default:
		return nil, fmt.Errorf("%w: extra operand", ErrMalformedExpression)
	}
}

// parseLabel converts a digit run into a label value, rejecting operands
// that do not round-trip through T.
func parseLabel[T Label](text string) (T, error) {
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: operand %q: %v", ErrLabelOutOfRange, text, err)
	}
	label := T(v)
	if uint64(label) != v || label < T(0) {
		var zero T
		return zero, fmt.Errorf("%w: operand %s does not fit the label type", ErrLabelOutOfRange, text)
	}
	return label, nil
}

// push appends a node to the arena and returns its index.
func (t *Tree[T]) push(n node[T]) int32 {
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

// Check reports whether the label collection satisfies the expression.
//
// Check is a pure query: it never mutates the tree, always returns the
// same result for the same labels, and visits at most every node once.
// Or and And short-circuit, so the right subtree is skipped whenever the
// left one already decides the outcome.
func (t *Tree[T]) Check(labels []T) bool {
	return t.eval(t.root, labels)
}

// eval recursively evaluates the subtree rooted at idx.
func (t *Tree[T]) eval(idx int32, labels []T) bool {
	n := &t.nodes[idx]
	switch n.kind {
	case nodeOr:
		if t.eval(n.left, labels) {
			return true
		}
		return t.eval(n.right, labels)
	case nodeAnd:
		if !t.eval(n.left, labels) {
			return false
		}
		return t.eval(n.right, labels)
	case nodeNot:
		return !t.eval(n.left, labels)
	default: // nodeLabel
		for _, l := range labels {
			if l == n.label {
				return true
			}
		}
		return false
	}
}

// Expr returns the source expression the tree was compiled from.
func (t *Tree[T]) Expr() string {
	return t.expr
}

// Size returns the number of nodes in the tree.
func (t *Tree[T]) Size() int {
	return len(t.nodes)
}
