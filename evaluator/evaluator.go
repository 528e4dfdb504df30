/*
Evaluator Module - Constant Sub-Tree Collapse
=================================================

This module collapses a tree's constant-valued sub-expressions down to a
single canonical IMMEDIATE value, memoized by id the way the teacher's own
Eval collapses a parsed AST to a float64 -- generalized here to mixed
fraction arithmetic (rational package) and to returning every admissible
re-decoration of the collapsed literal (deriveFracFloat) rather than one
float.

EvalTree repeatedly applies a single-step reduction (ConstringeStep) to the
*deepest* operator node whose two children are both IMMEDIATE, until the
whole tree is one IMMEDIATE leaf, and returns every IMMEDIATE member of the
final decoration list. If a sub-expression contains an atom that is neither
a parseable fraction nor a decimal (a symbolic atom like "x"), collapse gets
stuck below the atom and EvalTree gives up gracefully, returning an empty
list -- the sentinel for "no value", which callers in the compare package
treat as "evaluations differ" / "cannot determine" per spec §7.
*/
package evaluator

import (
	"strconv"

	"formulacmp/config"
	"formulacmp/node"
	"formulacmp/rational"
)

var evalCache = map[string][]*node.Node{}

// EvalTree returns every IMMEDIATE tree the root folds down to, memoized on
// the root's id. A bare IMMEDIATE root returns itself. An empty result means
// the tree contains an atom that can't be evaluated.
func EvalTree(t *node.Node) []*node.Node {
	if t.Kind == node.Immediate {
		return []*node.Node{t}
	}
	if cached, ok := evalCache[t.ID]; ok {
		return cached
	}

	results := ConstringeStep(t)
	for results[0].Kind != node.Immediate {
		next := ConstringeStep(results[0])
		if next[0].ID == results[0].ID {
			// Stuck: a symbolic atom blocks further collapse.
			break
		}
		results = next
	}

	var out []*node.Node
	for _, r := range results {
		if r.Kind == node.Immediate {
			out = append(out, r)
		}
	}
	evalCache[t.ID] = out
	return out
}

// ConstringeStep performs a single collapse: it finds the deepest operator
// node whose children are both IMMEDIATE, evaluates it via evalNode, and
// returns one full tree per admissible decoration of the resulting literal
// (DecorateValue), each differing only in how that just-collapsed value is
// written. If the deepest collapsible node can't be evaluated (a symbolic
// operand), it is returned unchanged as the sole result.
func ConstringeStep(t *node.Node) []*node.Node {
	if t.Kind == node.Immediate {
		return []*node.Node{t}
	}

	left, right := t.Left(), t.Right()

	if left.Kind != node.Immediate {
		subs := ConstringeStep(left)
		out := make([]*node.Node, len(subs))
		for i, s := range subs {
			out[i] = node.NewOperator(t.Character, s, right)
		}
		return out
	}
	if right.Kind != node.Immediate {
		subs := ConstringeStep(right)
		out := make([]*node.Node, len(subs))
		for i, s := range subs {
			out[i] = node.NewOperator(t.Character, left, s)
		}
		return out
	}

	val, err := evalNode(left.Character, right.Character, t.Character)
	if err != nil {
		return []*node.Node{t}
	}
	return DecorateValue(val)
}

// evalNode parses both operand literals as mixed-fraction-or-decimal and
// performs the §4.1 arithmetic named by op.
func evalNode(a, b, op string) (rational.Rational, error) {
	ra, ok := rational.Parse(a)
	if !ok {
		return rational.Rational{}, errUnevaluable(a)
	}
	rb, ok := rational.Parse(b)
	if !ok {
		return rational.Rational{}, errUnevaluable(b)
	}
	switch op {
	case "+":
		return rational.Add(ra, rb), nil
	case "-":
		return rational.Sub(ra, rb), nil
	case "*":
		return rational.Mul(ra, rb), nil
	case "/":
		return rational.Div(ra, rb)
	default:
		return rational.Rational{}, errIllegalOperator(op)
	}
}

// DecorateValue returns every canonically-equivalent rewriting of a computed
// rational value: the reduced mixed form (always first, so it drives further
// collapse), the improper form (if distinct), an explicit integer+fraction
// sum tree when both parts are non-zero, and a decimal form when the
// fraction terminates within 10 digits.
func DecorateValue(v rational.Rational) []*node.Node {
	reduced := rational.ReduceFrac(v)
	reducedStr := rational.Stringify(reduced)

	out := []*node.Node{node.NewImmediate(reducedStr)}
	seen := map[string]bool{reducedStr: true}

	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, node.NewImmediate(s))
		}
	}

	improper := rational.ToImproper(reduced)
	add(rational.Stringify(improper))

	if reduced.I != 0 && reduced.N != 0 {
		fracPart := rational.Rational{I: 0, N: reduced.N, D: reduced.D}
		sumTree := node.NewOperator("+",
			node.NewImmediate(strconv.FormatInt(reduced.I, 10)),
			node.NewImmediate(rational.Stringify(fracPart)),
		)
		if !seen[sumTree.ID] {
			seen[sumTree.ID] = true
			out = append(out, sumTree)
		}
	}

	if dec, ok := rational.ToDecimal(reduced, config.DecimalMaxDigits); ok {
		add(dec)
	}

	return out
}

// DeriveFracFloat returns every canonically-equivalent rewriting of an
// IMMEDIATE leaf -- the leaf itself (the "original string" per spec §4.4),
// plus DecorateValue's alternate forms of its parsed value. A leaf that
// doesn't parse as a fraction or decimal (a symbolic atom) has no alternate
// forms and is returned alone.
func DeriveFracFloat(leaf *node.Node) []*node.Node {
	r, ok := rational.Parse(leaf.Character)
	if !ok {
		return []*node.Node{leaf}
	}

	out := []*node.Node{leaf}
	seen := map[string]bool{leaf.ID: true}
	for _, d := range DecorateValue(r) {
		if !seen[d.ID] {
			seen[d.ID] = true
			out = append(out, d)
		}
	}
	return out
}

type unevaluableError struct {
	atom string
}

func (e *unevaluableError) Error() string {
	return "cannot evaluate atom " + e.atom
}

func errUnevaluable(atom string) error {
	return &unevaluableError{atom: atom}
}

type illegalOperatorError struct {
	op string
}

func (e *illegalOperatorError) Error() string {
	return "illegal operator " + e.op
}

func errIllegalOperator(op string) error {
	return &illegalOperatorError{op: op}
}
