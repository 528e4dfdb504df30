/*
Comparator Module - Equivalence & Derivability Verdicts
===========================================================

This module answers "how related are two expression trees": JudgeTree is a
cheap structural containment check over raw ids; JudgeTreeEvalEquals
compares the two trees' first evaluated values; CompareTrees is the signed
step-count relation that escalates from a bounded constringe-branching
search to the full derivation set when that search finds no match, and
degrades to a pure evaluation check once the operator-count cutoff (> 4,
per §5's note on exponential branching) is crossed; JudgeSimilarity gives a
continuous [0,1] "close enough" score used for fast relatedness checks that
don't need an exact step count.
*/
package compare

import (
	"formulacmp/config"
	"formulacmp/derive"
	"formulacmp/evaluator"
	"formulacmp/node"
	"formulacmp/rational"
)

// JudgeTree performs a raw id containment check: 0 if identical, 1 if A's
// id contains B's id as a substring (A derives from B by further
// expansion), -1 for the reverse, or (ok=false) if neither contains the
// other.
func JudgeTree(a, b *node.Node) (int, bool) {
	if a.ID == b.ID {
		return 0, true
	}
	if node.ContainsID(a, b) {
		return 1, true
	}
	if node.ContainsID(b, a) {
		return -1, true
	}
	return 0, false
}

// JudgeTreeEvalEquals compares the first evaluated value of each tree under
// fraction reduction. It returns false if either side fails to evaluate to
// any immediate value.
func JudgeTreeEvalEquals(a, b *node.Node) bool {
	va, ok := firstEvalValue(a)
	if !ok {
		return false
	}
	vb, ok := firstEvalValue(b)
	if !ok {
		return false
	}
	return rational.ReduceFrac(va) == rational.ReduceFrac(vb)
}

func firstEvalValue(t *node.Node) (rational.Rational, bool) {
	vals := evaluator.EvalTree(t)
	if len(vals) == 0 {
		return rational.Rational{}, false
	}
	return rational.Parse(vals[0].Character)
}

// evalsDiffer reports whether a and b demonstrably evaluate to different
// values. When either side contains a symbolic atom and so has no defined
// value at all, this returns false -- absence of a value is not proof of a
// difference, which is what lets purely-symbolic structural rewrites (like
// distribution) still compare equal.
func evalsDiffer(a, b *node.Node) bool {
	va, oka := firstEvalValue(a)
	if !oka {
		return false
	}
	vb, okb := firstEvalValue(b)
	if !okb {
		return false
	}
	return rational.ReduceFrac(va) != rational.ReduceFrac(vb)
}

// CompareTrees returns the signed step count relating A to B: 0 if equal,
// a positive count if A reduces to B in that many constringe steps, a
// negative count if B reduces to A, or (ok=false) if the two are unrelated
// by this relation.
//
// When either tree's operator count exceeds the branching cutoff, the
// search degrades to a pure evaluation-based difference (k_A - k_B) gated
// on the two trees evaluating equal, per §5's explosive-branching note.
func CompareTrees(a, b *node.Node) (int, bool) {
	if a.ID == b.ID {
		return 0, true
	}

	kA := node.OperatorCount(a.ID)
	kB := node.OperatorCount(b.ID)

	if kA > config.OperatorCountCutoff || kB > config.OperatorCountCutoff {
		if !JudgeTreeEvalEquals(a, b) {
			return 0, false
		}
		return kA - kB, true
	}

	if kA >= kB {
		return compareTreesWithOrder(a, b, kA-kB)
	}
	n, ok := compareTreesWithOrder(b, a, kB-kA)
	if !ok {
		return 0, false
	}
	return -n, true
}

// compareTreesWithOrder assumes a is the operator-count-larger (or equal)
// side and searches for the smallest chain of constringe reductions (up to
// the bound maxSteps = k_A - k_B) taking a down to b's id, falling back to
// the full derivation set of a if the bounded search doesn't find one. A
// match found among a's structural derivation set at step 0 (distribution,
// commutation, association -- no arithmetic reduction needed) correctly
// reports 0, even when maxSteps is positive: the operator-count gap is only
// an upper bound on how many arithmetic steps the search is willing to take,
// not a claim that arithmetic reduction is what relates the two trees.
func compareTreesWithOrder(a, b *node.Node, maxSteps int) (int, bool) {
	if evalsDiffer(a, b) {
		return 0, false
	}

	canonicalB := traversalReduceFrac(b)

	if s, ok := stepsToMatch(a, canonicalB, maxSteps); ok {
		return s, true
	}

	for _, candidate := range derive.DeriveTree(a) {
		if s, ok := stepsToMatch(candidate, canonicalB, maxSteps); ok {
			return s, true
		}
	}
	return 0, false
}

// stepsToMatch does a level-by-level constringe search from a, branching to
// every one-step reduction at each level, and returns the smallest number of
// steps (at most maxSteps) at which some branch reaches b's id.
func stepsToMatch(a, b *node.Node, maxSteps int) (int, bool) {
	if a.ID == b.ID {
		return 0, true
	}
	frontier := []*node.Node{a}
	for step := 1; step <= maxSteps; step++ {
		var next []*node.Node
		seen := map[string]bool{}
		for _, f := range frontier {
			for _, n := range evaluator.ConstringeStep(f) {
				if !seen[n.ID] {
					seen[n.ID] = true
					next = append(next, n)
				}
			}
		}
		for _, n := range next {
			if n.ID == b.ID {
				return step, true
			}
		}
		frontier = next
	}
	return 0, false
}

// traversalReduceFrac rebuilds t with every IMMEDIATE leaf's fraction
// reduced in place, the canonicalization pass CompareTrees runs over B
// before searching, and the predicate JudgeTreeDenominatorReduced checks
// for a no-op.
func traversalReduceFrac(t *node.Node) *node.Node {
	if t.Kind == node.Immediate {
		r, ok := rational.Parse(t.Character)
		if !ok {
			return t
		}
		reduced := rational.Stringify(rational.ReduceFrac(r))
		if reduced == t.Character {
			return t
		}
		return node.NewImmediate(reduced)
	}
	return node.NewOperator(t.Character, traversalReduceFrac(t.Left()), traversalReduceFrac(t.Right()))
}

// JudgeTreeDenominatorReduced reports whether every leaf fraction in t is
// already in reduced form, i.e. traversalReduceFrac leaves t's id
// unchanged.
func JudgeTreeDenominatorReduced(t *node.Node) bool {
	return traversalReduceFrac(t).ID == t.ID
}

// JudgeSimilarity scores how closely target matches template on a
// continuous [0,1] scale: 0 unless both evaluate to the same value (a tree
// holding a symbolic atom has no value, so it always scores 0), 1 on exact id
// match / substring containment / either side being a bare IMMEDIATE,
// otherwise the maximum over child-wise average similarity combined with
// commutation, association (same priority) or forward distribution
// (different priority) branches.
func JudgeSimilarity(target, template *node.Node) float64 {
	if !JudgeTreeEvalEquals(target, template) {
		return 0
	}
	if target.ID == template.ID || node.ContainsID(target, template) || node.ContainsID(template, target) {
		return 1
	}
	if target.Kind == node.Immediate || template.Kind == node.Immediate {
		return 1
	}

	if node.OperatorCount(target.ID) < node.OperatorCount(template.ID) {
		return JudgeSimilarity(template, target)
	}

	childSim := (JudgeSimilarity(target.Left(), template.Left()) +
		JudgeSimilarity(target.Right(), template.Right())) / 2
	best := childSim

	if node.Priority(target.Character) == node.Priority(template.Character) {
		if target.Character == "+" || target.Character == "*" {
			commuted := node.NewOperator(target.Character, target.Right(), target.Left())
			if s := JudgeSimilarity(commuted, template); s > best {
				best = s
			}
			if best == 1 {
				return best
			}
		}
		for _, associated := range derive.Associate(target) {
			if s := JudgeSimilarity(associated, template); s > best {
				best = s
			}
			if best == 1 {
				return best
			}
		}
	} else {
		for _, rewrite := range derive.DistributeForward(target) {
			if s := JudgeSimilarity(rewrite, template); s > best {
				best = s
			}
			if best == 1 {
				return best
			}
		}
	}

	return best
}

// IsRelativeBySimilarity reports whether JudgeSimilarity considers a and b
// the same expression under the available rewrites.
func IsRelativeBySimilarity(a, b *node.Node) bool {
	return JudgeSimilarity(a, b) == 1
}

// IsRelativeByCompareTrees reports whether CompareTrees finds any
// derivation chain (in either direction) relating a and b.
func IsRelativeByCompareTrees(a, b *node.Node) bool {
	_, ok := CompareTrees(a, b)
	return ok
}

// IsRelativeByEval reports whether a and b evaluate to the same value.
func IsRelativeByEval(a, b *node.Node) bool {
	return JudgeTreeEvalEquals(a, b)
}
