/*
Lexer Module - Formula Tokenization
=====================================

This module implements lexical analysis for the formula grammar of §6: an
infix expression over "+ - * /", the three bracket families "( )", "[ ]",
"{ }", LaTeX mixed fractions ("\frac{a}{b}", optionally prefixed by an
integer), decimal literals, and word atoms.

It generalizes the teacher's own tokenizer.go: a character-class switch that
scans runs of digits/letters and single-character operators, adjusted to the
spec's token priority order and to recognizing the multi-character
\frac{...}{...} literal before falling through to generic scanning.
github.com/codetesla51/golexer -- the teacher's declared but unused lexing
dependency -- is not used here; see this repository's DESIGN.md for why.

Whitespace is skipped between tokens (SkipWhitespace), matching the
teacher's "flush buffers on whitespace" behavior: a run of whitespace ends
whatever literal was being scanned rather than vanishing from the string
outright, so "1 2" still tokenizes as two adjacent IMMEDIATE nodes with no
operator between them -- which the parser then correctly rejects as
malformed, instead of silently reading it as the single integer "12".
*/
package lexer

import (
	"regexp"

	"formulacmp/ferrors"
)

// Kind distinguishes a literal token from an operator/bracket token.
type Kind int

const (
	Immediate Kind = iota
	OperatorTok
)

// Token is a single lexical unit produced by Next.
type Token struct {
	Kind Kind
	Text string
}

const operatorChars = "+-*/()[]{}"

var fracPattern = regexp.MustCompile(`^\w*\\frac\{\w+\}\{\w+\}`)

// Next reads the next token from s starting at byte offset i, trying in
// order: a LaTeX mixed fraction, a single-character operator or bracket, a
// decimal floating literal (digits '.' digits), then a maximal word-character
// run. It returns the token and the offset just past it.
func Next(s string, i int) (Token, int, error) {
	rest := s[i:]

	if m := fracPattern.FindString(rest); m != "" {
		return Token{Kind: Immediate, Text: m}, i + len(m), nil
	}

	ch := s[i]

	for k := 0; k < len(operatorChars); k++ {
		if ch == operatorChars[k] {
			return Token{Kind: OperatorTok, Text: string(ch)}, i + 1, nil
		}
	}

	if isDigit(ch) {
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j < len(s) && s[j] == '.' {
			k := j + 1
			start := k
			for k < len(s) && isDigit(s[k]) {
				k++
			}
			if k > start {
				return Token{Kind: Immediate, Text: s[i:k]}, k, nil
			}
		}
	}

	if isWordChar(ch) {
		j := i
		for j < len(s) && isWordChar(s[j]) {
			j++
		}
		return Token{Kind: Immediate, Text: s[i:j]}, j, nil
	}

	return Token{}, i, ferrors.NewParseError(s, "invalid character "+string(ch))
}

// SkipWhitespace advances i past any run of ASCII whitespace in s.
func SkipWhitespace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isWordChar(ch byte) bool {
	return isDigit(ch) ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		ch == '_'
}
