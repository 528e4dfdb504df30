package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewImmediateID(t *testing.T) {
	n := NewImmediate("3")
	assert.Equal(t, "3", n.ID)
	assert.Equal(t, Immediate, n.Kind)
}

func TestNewOperatorID(t *testing.T) {
	a := NewImmediate("1")
	b := NewImmediate("2")
	op := NewOperator("+", a, b)
	assert.Equal(t, "1|2+", op.ID)
	assert.Equal(t, Operator, op.Kind)
	assert.Same(t, a, op.Left())
	assert.Same(t, b, op.Right())
}

func TestNewOperatorNestedID(t *testing.T) {
	a := NewImmediate("1")
	b := NewImmediate("2")
	c := NewImmediate("3")
	inner := NewOperator("+", a, b)
	outer := NewOperator("*", inner, c)
	assert.Equal(t, "1|2+|3*", outer.ID)
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 2, Priority("*"))
	assert.Equal(t, 2, Priority("/"))
	assert.Equal(t, 1, Priority("+"))
	assert.Equal(t, 1, Priority("-"))
	assert.Equal(t, 0, Priority("("))
}

func TestIsNegativeForm(t *testing.T) {
	assert.True(t, IsNegativeForm("-"))
	assert.True(t, IsNegativeForm("/"))
	assert.False(t, IsNegativeForm("+"))
	assert.False(t, IsNegativeForm("*"))
}

func TestToggle(t *testing.T) {
	assert.Equal(t, "-", Toggle("+"))
	assert.Equal(t, "+", Toggle("-"))
	assert.Equal(t, "/", Toggle("*"))
	assert.Equal(t, "*", Toggle("/"))
	assert.Equal(t, "(", Toggle("("))
}

func TestOperatorCount(t *testing.T) {
	a := NewImmediate("1")
	b := NewImmediate("2")
	c := NewImmediate("3")
	tree := NewOperator("*", NewOperator("+", a, b), c)
	assert.Equal(t, 2, OperatorCount(tree.ID))
	assert.Equal(t, 0, OperatorCount(a.ID))
}

func TestReplaceChild(t *testing.T) {
	a := NewImmediate("1")
	b := NewImmediate("2")
	c := NewImmediate("9")
	orig := NewOperator("+", a, b)

	left := ReplaceChild(orig, 0, c)
	assert.Equal(t, "9|2+", left.ID)
	assert.Equal(t, "1|2+", orig.ID, "ReplaceChild must not mutate orig")

	right := ReplaceChild(orig, 1, c)
	assert.Equal(t, "1|9+", right.ID)
}

func TestContainsID(t *testing.T) {
	a := NewImmediate("1")
	b := NewImmediate("2")
	c := NewImmediate("3")
	sum := NewOperator("+", a, b)
	product := NewOperator("*", sum, c)

	assert.True(t, ContainsID(product, sum))
	assert.True(t, ContainsID(product, a))
	assert.False(t, ContainsID(sum, product))
}

func TestClone(t *testing.T) {
	a := NewImmediate("1")
	b := NewImmediate("2")
	orig := NewOperator("+", a, b)
	clone := orig.Clone()

	assert.Equal(t, orig.ID, clone.ID)
	assert.NotSame(t, orig, clone)
	assert.Same(t, orig.Left(), clone.Left())
}
