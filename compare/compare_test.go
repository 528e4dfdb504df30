package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formulacmp/node"
	"formulacmp/parser"
)

func mustParse(t *testing.T, formula string) *node.Node {
	t.Helper()
	ast, err := parser.Parse(formula)
	require.NoError(t, err)
	return ast
}

func TestJudgeTreeEqual(t *testing.T) {
	a := mustParse(t, "1+2")
	b := mustParse(t, "1+2")
	v, ok := JudgeTree(a, b)
	require.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestJudgeTreeContainment(t *testing.T) {
	a := mustParse(t, "1+2*3")
	b := mustParse(t, "2*3")
	v, ok := JudgeTree(a, b)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = JudgeTree(b, a)
	require.True(t, ok)
	assert.Equal(t, -1, v)
}

func TestJudgeTreeUnrelated(t *testing.T) {
	a := mustParse(t, "a+b")
	b := mustParse(t, "c+d")
	_, ok := JudgeTree(a, b)
	assert.False(t, ok)
}

func TestJudgeTreeEvalEquals(t *testing.T) {
	a := mustParse(t, "1+2*3")
	b := mustParse(t, "7")
	assert.True(t, JudgeTreeEvalEquals(a, b))
}

func TestJudgeTreeEvalEqualsSymbolic(t *testing.T) {
	a := mustParse(t, "a+b")
	b := mustParse(t, "c+d")
	assert.False(t, JudgeTreeEvalEquals(a, b))
}

func TestCompareTreesSimpleReduction(t *testing.T) {
	a := mustParse(t, "1+2*3")
	b := mustParse(t, "7")
	n, ok := CompareTrees(a, b)
	require.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestCompareTreesBracketedReduction(t *testing.T) {
	a := mustParse(t, "(1+2)*3")
	b := mustParse(t, "9")
	n, ok := CompareTrees(a, b)
	require.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestCompareTreesReverseDirectionIsNegated(t *testing.T) {
	a := mustParse(t, "9")
	b := mustParse(t, "(1+2)*3")
	n, ok := CompareTrees(a, b)
	require.True(t, ok)
	assert.Equal(t, -2, n)
}

func TestCompareTreesFractionAddition(t *testing.T) {
	a := mustParse(t, `\frac{1}{2}+\frac{1}{3}`)
	b := mustParse(t, `\frac{5}{6}`)
	n, ok := CompareTrees(a, b)
	require.True(t, ok)
	assert.Equal(t, 1, n)
}

func TestCompareTreesEqual(t *testing.T) {
	a := mustParse(t, "2+3")
	b := mustParse(t, "3+2")
	n, ok := CompareTrees(a, b)
	require.True(t, ok)
	assert.Equal(t, 0, n)
}

func TestCompareTreesUnrelatedSymbolic(t *testing.T) {
	a := mustParse(t, "a+b")
	b := mustParse(t, "c+d")
	_, ok := CompareTrees(a, b)
	assert.False(t, ok)
}

func TestCompareTreesDistribution(t *testing.T) {
	a := mustParse(t, "(a+b)*c")
	b := mustParse(t, "a*c+b*c")
	n, ok := CompareTrees(a, b)
	require.True(t, ok)
	assert.Equal(t, 0, n)
}

func TestJudgeTreeDenominatorReduced(t *testing.T) {
	unreduced := mustParse(t, `\frac{2}{4}+1`)
	assert.False(t, JudgeTreeDenominatorReduced(unreduced))

	reduced := mustParse(t, `\frac{1}{2}+1`)
	assert.True(t, JudgeTreeDenominatorReduced(reduced))
}

func TestIsRelativeBySimilaritySameTree(t *testing.T) {
	a := mustParse(t, "2+3")
	b := mustParse(t, "3+2")
	assert.True(t, IsRelativeBySimilarity(a, b))
}

func TestIsRelativeByEval(t *testing.T) {
	a := mustParse(t, "1+2*3")
	b := mustParse(t, "7")
	assert.True(t, IsRelativeByEval(a, b))
}
