// Package setsim is a small toolbox of set-similarity and set-distance
// measures for network/graph-analysis and data-comparison workflows.
//
// 🚀 What is setsim?
//
//	A pure-Go library that computes classic similarity coefficients over
//	plain in-memory sets:
//	  • Overlap coefficient
//	  • Jaccard similarity
//	  • Dice–Sørensen coefficient
//	  • Cosine similarity (0/1 indicator vectors)
//	  • Simple matching coefficient
//	  • Hamming distance & Hamming coefficient
//
// ✨ Why choose setsim?
//
//   - One contract for every measure – a shared validation gate enforces
//     the same type, emptiness, and universe rules before any formula runs
//   - Non-fatal diagnostics – empty-input and bad-universe conditions are
//     reported through an opt-in warning channel, never as hard failures
//   - Pure Go – stateless, side-effect-free functions, safe for
//     concurrent use with no coordination
//
// Under the hood, everything is organized under two subpackages:
//
//	sets/       — the unordered Set container and its primitives
//	              (union, intersection, differences, superset tests)
//	similarity/ — the validation gate and the seven measures
//
// Quick example:
//
//	a := sets.New(1, 2, 3)
//	b := sets.New(2, 3, 4)
//	score, err := similarity.Jaccard(a, b) // 0.5
//
// See each subpackage's doc.go for formulas, complexity and error contracts.
//
//	go get github.com/katalvlaran/setsim
package setsim
