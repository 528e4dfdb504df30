/*
Formula Module - External Entry Points
==========================================

This module is the public surface of the comparison pipeline: the five
exported operations of the system, each a thin orchestration of parser,
derive, compare, and evaluator underneath. Nothing outside this package's
callers needs to know about shunting-yard tokenizing, constringe steps, or
the derivation cache -- they hand in formula text or trees and get back a
tree, a verdict, or a signed step count.
*/
package formula

import (
	"formulacmp/compare"
	"formulacmp/derive"
	"formulacmp/node"
	"formulacmp/parser"
)

// GenerateTree parses formula text into an expression tree.
func GenerateTree(s string) (*node.Node, error) {
	return parser.Parse(s)
}

// GenerateTrees parses formula text and returns every tree in its
// derivation set (including the parsed tree itself).
func GenerateTrees(s string) ([]*node.Node, error) {
	tree, err := parser.Parse(s)
	if err != nil {
		return nil, err
	}
	return derive.DeriveTree(tree), nil
}

// CompareFormulas parses both formula texts and returns their signed
// step-count relation. The bool result is false when either formula fails
// to parse, or when the two parsed trees are unrelated.
func CompareFormulas(a, b string) (int, bool) {
	treeA, err := parser.Parse(a)
	if err != nil {
		return 0, false
	}
	treeB, err := parser.Parse(b)
	if err != nil {
		return 0, false
	}
	return CompareTrees(treeA, treeB)
}

// CompareTrees returns the signed step-count relation between two already
// parsed trees.
func CompareTrees(a, b *node.Node) (int, bool) {
	return compare.CompareTrees(a, b)
}

// IsRelativeBySimilarity reports whether a and b are the same expression
// under the available rewrites, per compare.JudgeSimilarity.
func IsRelativeBySimilarity(a, b *node.Node) bool {
	return compare.IsRelativeBySimilarity(a, b)
}

// IsRelativeByCompareTrees reports whether CompareTrees finds any
// derivation chain relating a and b.
func IsRelativeByCompareTrees(a, b *node.Node) bool {
	return compare.IsRelativeByCompareTrees(a, b)
}

// IsRelativeByEval reports whether a and b evaluate to the same value.
func IsRelativeByEval(a, b *node.Node) bool {
	return compare.IsRelativeByEval(a, b)
}

// JudgeTree performs the raw id containment check between two trees.
func JudgeTree(a, b *node.Node) (int, bool) {
	return compare.JudgeTree(a, b)
}

// JudgeTreeEvalEquals compares the first evaluated value of each tree.
func JudgeTreeEvalEquals(a, b *node.Node) bool {
	return compare.JudgeTreeEvalEquals(a, b)
}

// JudgeTreeDenominatorReduced reports whether every leaf fraction in t is
// already in reduced form.
func JudgeTreeDenominatorReduced(t *node.Node) bool {
	return compare.JudgeTreeDenominatorReduced(t)
}
