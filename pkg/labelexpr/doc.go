/*
Package labelexpr compiles boolean label-membership expressions into
immutable evaluation trees.

# Overview

labelexpr implements a small infix logic language over integer-valued
labels. An expression is compiled once into a Tree and then checked any
number of times against arbitrary label collections, without re-parsing.
The typical consumer is a filtered-search layer that narrows candidates
to those whose label set satisfies a caller-supplied predicate.

# Expression Syntax

	<expr>    := <term> ('|' <term>)*
	<term>    := <factor> ('&' <factor>)*
	<factor>  := '!' <factor> | '(' <expr> ')' | <operand>
	<operand> := digit+

Accepted characters are the digits 0-9, the operators '|', '&', '!', the
parentheses '(' and ')', and space or tab as separators. Any other
character fails compilation with ErrInvalidToken.

# Operators

	|   Logical OR, precedence 1
	&   Logical AND, precedence 2
	!   Logical NOT (prefix), precedence 3

'&' binds tighter than '|', so "1|2&3" reads as "1|(2&3)". Chains of the
same binary operator group left to right: "1&2&3" reads as "(1&2)&3".
Both binary operators short-circuit during evaluation.

# Labels

Operands are non-negative decimal integers. The label type is generic:
any integer type satisfies the Label constraint. Operands that do not fit
the chosen type fail compilation with ErrLabelOutOfRange rather than
silently truncating:

	_, err := labelexpr.Compile[uint8]("300") // ErrLabelOutOfRange

# Usage

	tree, err := labelexpr.Compile[uint32]("(1|2)&!3")
	if err != nil {
	    return err
	}
	tree.Check([]uint32{1})    // true
	tree.Check([]uint32{1, 3}) // false

A compiled Tree is immutable and safe for concurrent Check calls, as long
as each caller supplies its own label slice or refrains from mutating a
shared one mid-check.

# Parenthesis handling

By default an unmatched ')' is silently absorbed and an unmatched '(' is
discarded, so "1|2)" compiles the same as "1|2". Pass WithStrictParens to
reject unbalanced parentheses with ErrMalformedExpression instead.
*/
package labelexpr
