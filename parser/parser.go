/*
Parser Module - Shunting-Yard Tree Builder
=============================================

This module converts tokenized formula text into an expression tree using
the classic two-stack shunting-yard algorithm: a "result" stack of operand
trees and an "opstack" of pending operator/bracket tokens.

Bracket matching is by family: "(" only closes with ")", "[" with "]", "{"
with "}"; crossing families is a parse error, as is any unmatched bracket,
missing operand, or leftover token once the input is exhausted.

This generalizes the teacher's own parser.go -- which is a recursive-descent
precedence-climbing parser -- to the spec's explicit shunting-yard design;
the teacher's precedence table (exponent > unary > mul/div > add/sub) is
replaced by the flatter two-level table this grammar calls for (mul/div over
add/sub, no unary, no exponent), but the overall shape -- one exported entry
point building a binary tree bottom-up from a token stream -- carries over
directly.
*/
package parser

import (
	"formulacmp/ferrors"
	"formulacmp/lexer"
	"formulacmp/node"
)

var openBrackets = map[string]string{
	")": "(",
	"]": "[",
	"}": "{",
}

func isOpenBracket(tok string) bool {
	switch tok {
	case "(", "[", "{":
		return true
	}
	return false
}

func isCloseBracket(tok string) bool {
	_, ok := openBrackets[tok]
	return ok
}

// Parse converts formula text into an expression tree, or returns a parse
// error carrying the original (untrimmed) formula text.
func Parse(formula string) (*node.Node, error) {
	s := formula

	var result []*node.Node
	var opstack []string

	combineTop := func(op string) error {
		if len(result) < 2 {
			return ferrors.NewParseError(formula, "operator \""+op+"\" missing operand")
		}
		right := result[len(result)-1]
		left := result[len(result)-2]
		result = append(result[:len(result)-2], node.NewOperator(op, left, right))
		return nil
	}

	i := lexer.SkipWhitespace(s, 0)
	for i < len(s) {
		tok, next, err := lexer.Next(s, i)
		if err != nil {
			return nil, ferrors.NewParseError(formula, err.Error())
		}
		i = lexer.SkipWhitespace(s, next)

		switch tok.Kind {
		case lexer.Immediate:
			result = append(result, node.NewImmediate(tok.Text))

		case lexer.OperatorTok:
			switch {
			case isOpenBracket(tok.Text):
				opstack = append(opstack, tok.Text)

			case isCloseBracket(tok.Text):
				want := openBrackets[tok.Text]
				found := false
				for len(opstack) > 0 {
					top := opstack[len(opstack)-1]
					opstack = opstack[:len(opstack)-1]
					if top == want {
						found = true
						break
					}
					if isOpenBracket(top) {
						return nil, ferrors.NewParseError(formula, "mismatched bracket \""+top+"\"")
					}
					if err := combineTop(top); err != nil {
						return nil, err
					}
				}
				if !found {
					return nil, ferrors.NewParseError(formula, "unmatched \""+tok.Text+"\"")
				}

			default: // arithmetic operator
				for len(opstack) > 0 {
					top := opstack[len(opstack)-1]
					if isOpenBracket(top) {
						break
					}
					if node.Priority(top) < node.Priority(tok.Text) {
						break
					}
					opstack = opstack[:len(opstack)-1]
					if err := combineTop(top); err != nil {
						return nil, err
					}
				}
				opstack = append(opstack, tok.Text)
			}
		}
	}

	for len(opstack) > 0 {
		top := opstack[len(opstack)-1]
		opstack = opstack[:len(opstack)-1]
		if isOpenBracket(top) {
			return nil, ferrors.NewParseError(formula, "unclosed bracket \""+top+"\"")
		}
		if err := combineTop(top); err != nil {
			return nil, err
		}
	}

	if len(result) != 1 {
		return nil, ferrors.NewParseError(formula, "malformed expression")
	}
	return result[0], nil
}
