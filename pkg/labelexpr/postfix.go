package labelexpr

import "fmt"

// precedence of operators inside the shunting-yard stack.
// Higher binds tighter.
var precedence = map[tokenKind]int{
	tokenOr:  1,
	tokenAnd: 2,
	tokenNot: 3,
}

// pops reports whether the stacked operator must be emitted before the
// incoming one. Binary operators pop on equal precedence, which gives
// left-to-right grouping for chains like "1&2&3". NOT is right
// associative: a stacked '!' must stay put when another '!' arrives, or
// the first negation would be emitted ahead of its operand.
func pops(top, incoming tokenKind) bool {
	if incoming == tokenNot {
		return precedence[top] > precedence[incoming]
	}
	return precedence[top] >= precedence[incoming]
}

// toPostfix reorders an infix token sequence into reverse-Polish form
// using the shunting-yard algorithm. Operands pass straight through;
// operators are held on a stack and emitted by precedence; parentheses
// group without being emitted.
//
// With strictParens false, an unmatched ')' is absorbed and an unmatched
// '(' is discarded. With strictParens true both fail with
// ErrMalformedExpression.
func toPostfix(toks []token, strictParens bool) ([]token, error) {
	out := make([]token, 0, len(toks))
	var stack []token

	for _, tok := range toks {
		switch tok.kind {
		case tokenLabel:
			out = append(out, tok)

		case tokenLParen:
			stack = append(stack, tok)

		case tokenRParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenLParen {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched && strictParens {
				return nil, fmt.Errorf("%w: unmatched ')'", ErrMalformedExpression)
			}

		default:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind == tokenLParen || !pops(top.kind, tok.kind) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].kind == tokenLParen {
			if strictParens {
				return nil, fmt.Errorf("%w: unmatched '('", ErrMalformedExpression)
			}
			continue
		}
		out = append(out, stack[i])
	}

	return out, nil
}
