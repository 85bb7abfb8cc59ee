package labelexpr

import (
	"errors"
	"fmt"
)

// Sentinel errors for expression compilation.
// Evaluation of a compiled tree never fails.
var (
	// ErrInvalidToken indicates a character outside the expression alphabet.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMalformedExpression indicates the expression does not reduce to a
	// single tree: an operator is missing an operand, or operands are left
	// over with nothing to combine them.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrLabelOutOfRange indicates an operand does not fit the label type.
	ErrLabelOutOfRange = errors.New("label out of range")
)

// TokenError reports the character that stopped the tokenizer.
type TokenError struct {
	// Pos is the byte offset of the offending character.
	Pos int
	// Char is the offending character.
	Char byte
}

// Error implements the error interface.
func (e *TokenError) Error() string {
	return fmt.Sprintf("invalid token: unexpected character %q at offset %d", e.Char, e.Pos)
}

// Unwrap returns ErrInvalidToken for errors.Is support.
func (e *TokenError) Unwrap() error {
	return ErrInvalidToken
}
