package labelexpr

// tokenKind classifies a lexeme.
type tokenKind int

const (
	tokenLabel tokenKind = iota
	tokenOr
	tokenAnd
	tokenNot
	tokenLParen
	tokenRParen
)

// token is a single lexeme. Tokens carry no position information; the
// tokenizer reports positions through TokenError instead.
type token struct {
	kind tokenKind
	text string
}

// operatorKind maps an operator character to its token kind.
func operatorKind(c byte) tokenKind {
	switch c {
	case '|':
		return tokenOr
	case '&':
		return tokenAnd
	case '!':
		return tokenNot
	case '(':
		return tokenLParen
	default: // ')'
		return tokenRParen
	}
}

// tokenize converts an expression string into an ordered token sequence.
// Whitespace (space, tab) separates tokens and is never emitted. Digit
// runs accumulate into a single label token; each operator or parenthesis
// becomes its own token and flushes any pending digit run. Any other
// character aborts with a TokenError and no token list.
func tokenize(input string) ([]token, error) {
	var toks []token
	start := -1 // start of the current digit run, -1 when none

	flush := func(end int) {
		if start >= 0 {
			toks = append(toks, token{kind: tokenLabel, text: input[start:end]})
			start = -1
		}
	}

	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c == ' ' || c == '\t':
			flush(i)
		case c == '|' || c == '&' || c == '!' || c == '(' || c == ')':
			flush(i)
			toks = append(toks, token{kind: operatorKind(c), text: input[i : i+1]})
		case c >= '0' && c <= '9':
			if start < 0 {
				start = i
			}
		default:
			return nil, &TokenError{Pos: i, Char: c}
		}
	}
	flush(len(input))

	return toks, nil
}
