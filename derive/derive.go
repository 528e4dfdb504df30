/*
Derivation Module - Equivalence Class Enumeration
=====================================================

This module enumerates every tree reachable from an input tree by the
rewrite rules of the comparison pipeline: commutation, association,
distribution (forward and reverse), doubling, and fraction/decimal
re-expression of leaves. The result set, keyed by tree id, is an
equivalence class -- every member's own DeriveTree call returns the exact
same set, which is what lets the comparator treat "b is in derive(a)" as a
symmetric closure property rather than a one-off search.

The cache is installed for an id *before* recursing into its children: this
is what breaks the infinite loop that commutation and association would
otherwise cause, since both rewrites are self-inverse (deriving a derives
back to a). Whichever tree's DeriveTree call runs first "owns" the
class -- every other member reuses that same result slice by reference.
*/
package derive

import (
	"formulacmp/evaluator"
	"formulacmp/node"
)

var cache = map[string][]*node.Node{}

// DeriveTree returns every tree equivalent to t under the rewrite rules
// below, including t itself, memoized by id.
func DeriveTree(t *node.Node) []*node.Node {
	if cached, ok := cache[t.ID]; ok {
		return cached
	}

	result := []*node.Node{t}
	cache[t.ID] = result

	if t.Kind == node.Immediate {
		result = applyStage(result, deriveFracFloatRule)
		for _, member := range result {
			cache[member.ID] = result
		}
		return result
	}

	result = applyStage(result, deriveCommutation)
	result = applyStage(result, childRecursion)
	result = applyStage(result, deriveDistribution)
	result = applyStage(result, deriveDistribution)
	result = applyStage(result, childRecursion)
	result = applyStage(result, deriveAssociation)
	result = applyStage(result, deriveDoubleSubTree)
	result = applyStage(result, childRecursion)
	result = applyStage(result, deriveCommutation)
	result = applyStage(result, childRecursion)

	for _, member := range result {
		cache[member.ID] = result
	}
	return result
}

// applyStage replaces result with the de-duplicated union, over the whole
// current result set, of rule(each member) -- every stage in DeriveTree's
// pipeline is one of these.
func applyStage(result []*node.Node, rule func(*node.Node) []*node.Node) []*node.Node {
	seen := map[string]bool{}
	var out []*node.Node
	add := func(n *node.Node) {
		if !seen[n.ID] {
			seen[n.ID] = true
			out = append(out, n)
		}
	}
	for _, r := range result {
		add(r)
		for _, derived := range rule(r) {
			add(derived)
		}
	}
	return out
}

// deriveCommutation emits b op a for t = a op b when op is commutative.
func deriveCommutation(t *node.Node) []*node.Node {
	if t.Kind != node.Operator {
		return nil
	}
	switch t.Character {
	case "+", "*":
		return []*node.Node{node.NewOperator(t.Character, t.Right(), t.Left())}
	default:
		return nil
	}
}

// childRecursion re-derives each child independently and re-inserts each
// derived child into the parent shape one child at a time: derived left
// children are paired with the original right child and vice versa.
func childRecursion(t *node.Node) []*node.Node {
	if t.Kind != node.Operator {
		return nil
	}
	var out []*node.Node
	for _, l := range DeriveTree(t.Left()) {
		out = append(out, node.NewOperator(t.Character, l, t.Right()))
	}
	for _, r := range DeriveTree(t.Right()) {
		out = append(out, node.NewOperator(t.Character, t.Left(), r))
	}
	return out
}

// deriveAssociation rotates t with a child of matching priority, per §4.4's
// sign-flip rule, then attempts doubling on the rotated shape's root and
// adds the rotated shape's full derivation set (whose child-recursion stages
// reach doubling inside each side).
func deriveAssociation(t *node.Node) []*node.Node {
	if t.Kind != node.Operator {
		return nil
	}
	var out []*node.Node
	for i, c := range t.Children {
		if c.Kind != node.Operator {
			continue
		}
		if node.Priority(c.Character) != node.Priority(t.Character) {
			continue
		}
		rotated := rotate(t, c, i)
		out = append(out, rotated)
		for _, doubled := range deriveDoubleSubTree(rotated) {
			out = append(out, doubled)
		}
		out = append(out, DeriveTree(rotated)...)
	}
	return out
}

// rotate swaps child c (at index i of t) with t, per §4.4's sign-flip rule.
// Verified against the identities (a-b)+c = a-(b-c), (a/b)*c = a/(b/c), and
// a-(b+c) = (a-b)-c, a/(b*c) = (a/b)/c:
//
// Left rotation (i=0): the new root keeps c's own operator unchanged; c's
// same-index child (g_same) becomes the new root's direct child, and the
// other grandchild (g_other) pairs with t's other child (w) as the new
// inner node, whose operator is t's own operator, toggled iff c's operator
// is a negative form ("-" or "/").
//
// Right rotation (i=1): the new root carries c's operator, toggled iff t's
// operator is a negative form, with c's same-index grandchild as its direct
// child; w pairs with the other grandchild as the new inner node, whose
// operator is t's own operator (so a+(b-c) = (a+b)-c, a-(b-c) = (a-b)+c).
func rotate(t, c *node.Node, i int) *node.Node {
	other := 1 - i
	gSame := c.Children[i]
	gOther := c.Children[other]
	w := t.Children[other]

	if i == 0 {
		innerOp := t.Character
		if node.IsNegativeForm(c.Character) {
			innerOp = node.Toggle(innerOp)
		}
		inner := node.NewOperator(innerOp, gOther, w)
		return node.NewOperator(c.Character, gSame, inner)
	}

	rootOp := c.Character
	if node.IsNegativeForm(t.Character) {
		rootOp = node.Toggle(rootOp)
	}
	inner := node.NewOperator(t.Character, w, gOther)
	return node.NewOperator(rootOp, inner, gSame)
}

// deriveDistribution covers both directions in one pass: forward
// distribution of a */‍ parent over a +/- child, and reverse extraction of a
// shared factor from a +/- parent over two */‍ children.
func deriveDistribution(t *node.Node) []*node.Node {
	if t.Kind != node.Operator {
		return nil
	}
	switch t.Character {
	case "*", "/":
		return distributeForward(t)
	case "+", "-":
		return distributeReverse(t)
	default:
		return nil
	}
}

// distributeForward rewrites (u op1 v) op2 w -> (u op2 w) op1 (v op2 w) for
// t = child op2 w, op1 in {+,-}, op2 in {*,/}. A sum/difference on the right
// of a division never distributes, since division doesn't distribute over a
// sum on the right.
func distributeForward(t *node.Node) []*node.Node {
	var out []*node.Node

	if left := t.Left(); left.Kind == node.Operator && isAdditive(left.Character) {
		u, v := left.Left(), left.Right()
		w := t.Right()
		out = append(out, node.NewOperator(left.Character,
			node.NewOperator(t.Character, u, w),
			node.NewOperator(t.Character, v, w),
		))
	}

	if t.Character == "*" {
		if right := t.Right(); right.Kind == node.Operator && isAdditive(right.Character) {
			u, v := right.Left(), right.Right()
			w := t.Left()
			out = append(out, node.NewOperator(right.Character,
				node.NewOperator(t.Character, w, u),
				node.NewOperator(t.Character, w, v),
			))
		}
	}

	return out
}

// distributeReverse extracts a shared factor from t = (a op b) +/- (a' op c)
// when a and a' occupy the same child index and either op is "*" at any
// index, or op is "/" with the shared operand on the left (the numerator).
// When one side is the bare shared operand instead of an op-tree, it's
// decorated one level deep as (a*1) or (a/1) before matching, per §4.4 and
// §9's note that this fallback only recurses one level.
func distributeReverse(t *node.Node) []*node.Node {
	left, right := t.Left(), t.Right()

	leftOp, leftOK := asMultiplicative(left)
	rightOp, rightOK := asMultiplicative(right)
	if !leftOK && !rightOK {
		return nil
	}
	if !leftOK {
		leftOp = decorateBare(left, rightOp.op)
	}
	if !rightOK {
		op := leftOp.op
		rightOp = decorateBare(right, op)
	}

	var out []*node.Node
	for _, idx := range []int{0, 1} {
		if idx == 1 && (leftOp.op == "/" || rightOp.op == "/") {
			continue
		}
		if leftOp.op != rightOp.op {
			continue
		}
		var shared, a, b *node.Node
		if idx == 0 {
			if leftOp.children[0].ID != rightOp.children[0].ID {
				continue
			}
			shared = leftOp.children[0]
			a, b = leftOp.children[1], rightOp.children[1]
		} else {
			if leftOp.children[1].ID != rightOp.children[1].ID {
				continue
			}
			shared = leftOp.children[1]
			a, b = leftOp.children[0], rightOp.children[0]
		}
		inner := node.NewOperator(t.Character, a, b)
		var rebuilt *node.Node
		if idx == 0 {
			rebuilt = node.NewOperator(leftOp.op, shared, inner)
		} else {
			rebuilt = node.NewOperator(leftOp.op, inner, shared)
		}
		out = append(out, rebuilt)
	}
	return out
}

type multiplicativeView struct {
	op       string
	children []*node.Node
}

func asMultiplicative(n *node.Node) (multiplicativeView, bool) {
	if n.Kind == node.Operator && (n.Character == "*" || n.Character == "/") {
		return multiplicativeView{op: n.Character, children: n.Children}, true
	}
	return multiplicativeView{}, false
}

// decorateBare synthesizes the one-level-deep (a*1) / (a/1) view of a bare
// operand so it can be matched against an (a op x) sibling during reverse
// distribution.
func decorateBare(n *node.Node, op string) multiplicativeView {
	one := node.NewImmediate("1")
	return multiplicativeView{op: op, children: []*node.Node{n, one}}
}

func isAdditive(character string) bool {
	return character == "+" || character == "-"
}

// deriveDoubleSubTree emits a*2 for t = a + b when id(a) = id(b).
func deriveDoubleSubTree(t *node.Node) []*node.Node {
	if t.Kind != node.Operator || t.Character != "+" {
		return nil
	}
	left, right := t.Left(), t.Right()
	if left.ID != right.ID {
		return nil
	}
	return []*node.Node{node.NewOperator("*", left, node.NewImmediate("2"))}
}

// Associate returns every single-step rotation of t with a child of
// matching priority, without the doubling/recursion DeriveTree's
// association stage also performs. Exported for the comparator's
// similarity search, which needs one-step associated forms to recurse into
// on its own terms.
func Associate(t *node.Node) []*node.Node {
	if t.Kind != node.Operator {
		return nil
	}
	var out []*node.Node
	for i, c := range t.Children {
		if c.Kind != node.Operator {
			continue
		}
		if node.Priority(c.Character) != node.Priority(t.Character) {
			continue
		}
		out = append(out, rotate(t, c, i))
	}
	return out
}

// DistributeForward is the exported form of distributeForward, for the
// comparator's similarity search over differently-prioritized roots.
func DistributeForward(t *node.Node) []*node.Node {
	if t.Kind != node.Operator {
		return nil
	}
	switch t.Character {
	case "*", "/":
		return distributeForward(t)
	default:
		return nil
	}
}

// deriveFracFloat re-expresses an IMMEDIATE leaf through every admissible
// decoration of its parsed value. DeriveFracFloat below is its exported form,
// for callers that want leaf-level re-expression without going through the
// full DeriveTree pipeline.
func deriveFracFloat(leaf *node.Node) []*node.Node {
	return evaluator.DeriveFracFloat(leaf)
}

// deriveFracFloatRule adapts deriveFracFloat to the rule signature applyStage
// expects (it already includes the leaf itself, which applyStage dedupes).
func deriveFracFloatRule(leaf *node.Node) []*node.Node {
	return deriveFracFloat(leaf)
}

// DeriveFracFloat is the exported form of deriveFracFloat.
func DeriveFracFloat(leaf *node.Node) []*node.Node {
	return deriveFracFloat(leaf)
}
