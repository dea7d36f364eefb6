// Package polytope is a toolkit for the geometry of piecewise-linear
// convex value functions: the upper envelopes of hyperplane sets over a
// probability simplex that arise in POMDP and multi-objective MDP
// solvers.
//
// What it offers:
//
//	• Vertex enumeration: every corner where a candidate hyperplane meets
//	  S−1 constraints drawn from known hyperplanes and simplex faces
//	• Optimistic bounds: the tightest value a belief point can still
//	  achieve given only partial (point, value) evidence, via a small LP
//	• Probability-table policies: PGA-APP gradient updates and greedy
//	  action selection over Q-tables
//
// Why choose polytope?
//
//   - Deterministic – same inputs, same outputs; seeded randomness only
//   - Pure Go – dense solves and LPs ride on gonum, no cgo
//   - Call-local state – every invocation owns its matrices; callers may
//     parallelize freely with no coordination
//
// Everything is organized under small focused subpackages:
//
//	simplex/  — Points, Hyperplanes, Vertices & probability projection
//	subsets/  — lexicographic k-subset enumeration with change tracking
//	linprog/  — linear-program builder over gonum's simplex
//	envelope/ — vertex enumeration & optimistic value bounds (the core)
//	policy/   — PGA-APP and greedy Q policies
//
// Dive into each package's doc.go for algorithm outlines, complexity
// notes and the full error list.
//
//	go get github.com/favorart/polytope
package polytope
