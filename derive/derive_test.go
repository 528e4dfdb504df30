package derive

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

func containsID(nodes []*node.Node, id string) bool {
	for _, n := range nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}

func TestDeriveTreeContainsSelf(t *testing.T) {
	tree := mustParse(t, "2+3")
	result := DeriveTree(tree)
	assert.True(t, containsID(result, tree.ID))
}

func TestDeriveTreeCommutation(t *testing.T) {
	tree := mustParse(t, "2+3")
	result := DeriveTree(tree)
	commuted := mustParse(t, "3+2")
	assert.True(t, containsID(result, commuted.ID))
}

func TestDeriveTreeEquivalenceClassClosure(t *testing.T) {
	tree := mustParse(t, "2+3")
	result := DeriveTree(tree)
	commuted := mustParse(t, "3+2")
	resultFromCommuted := DeriveTree(commuted)

	assert.Equal(t, len(result), len(resultFromCommuted))
	for _, m := range result {
		assert.True(t, containsID(resultFromCommuted, m.ID))
	}
}

func TestDeriveTreeDistributionForward(t *testing.T) {
	tree := mustParse(t, "(a+b)*c")
	result := DeriveTree(tree)
	target := mustParse(t, "a*c+b*c")
	assert.True(t, containsID(result, target.ID))
}

func TestDeriveTreeDoubling(t *testing.T) {
	tree := mustParse(t, "a+a")
	result := DeriveTree(tree)
	target := mustParse(t, "a*2")
	assert.True(t, containsID(result, target.ID))
}

func TestDeriveTreeAssociation(t *testing.T) {
	tree := mustParse(t, "(a-b)+c")
	result := DeriveTree(tree)
	target := mustParse(t, "a-(b-c)")
	assert.True(t, containsID(result, target.ID))
}

func TestDeriveTreeLeafDecoration(t *testing.T) {
	leaf := node.NewImmediate(`1\frac{1}{2}`)
	result := DeriveTree(leaf)
	found := false
	for _, r := range result {
		if r.Character == `\frac{3}{2}` {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDeriveCommutationNonCommutativeOperator(t *testing.T) {
	tree := mustParse(t, "a-b")
	assert.Nil(t, deriveCommutation(tree))
}

func TestDeriveDoubleSubTreeRequiresIdenticalChildren(t *testing.T) {
	tree := mustParse(t, "a+b")
	assert.Nil(t, deriveDoubleSubTree(tree))
}
