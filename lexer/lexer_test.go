package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantText string
		wantKind Kind
		wantNext int
	}{
		{"decimal", "3.14+1", "3.14", Immediate, 4},
		{"bare integer", "42", "42", Immediate, 2},
		{"word atom", "xyz+1", "xyz", Immediate, 3},
		{"operator", "+1", "+", OperatorTok, 1},
		{"open paren", "(1+2)", "(", OperatorTok, 1},
		{"bracket family", "[1+2]", "[", OperatorTok, 1},
		{"bare frac", `\frac{1}{2}+1`, `\frac{1}{2}`, Immediate, 11},
		{"mixed frac", `2\frac{1}{3}+1`, `2\frac{1}{3}`, Immediate, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, next, err := Next(tt.in, 0)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantKind, tok.Kind)
			assert.Equal(t, tt.wantText, tok.Text)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestNextInvalidCharacter(t *testing.T) {
	_, _, err := Next("@", 0)
	assert.Error(t, err)
}

func TestSkipWhitespace(t *testing.T) {
	assert.Equal(t, 4, SkipWhitespace("    1+2", 0))
	assert.Equal(t, 0, SkipWhitespace("1+2", 0))
	assert.Equal(t, 6, SkipWhitespace("1+2   ", 4))
}

func TestSkipWhitespacePreservesBoundary(t *testing.T) {
	// "1 2" must stay two separate tokens, not collapse into "12".
	tok1, next, err := Next("1 2", 0)
	assert.NoError(t, err)
	assert.Equal(t, "1", tok1.Text)

	i := SkipWhitespace("1 2", next)
	tok2, _, err := Next("1 2", i)
	assert.NoError(t, err)
	assert.Equal(t, "2", tok2.Text)
}
