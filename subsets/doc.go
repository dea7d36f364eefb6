// Package subsets enumerates fixed-size index subsets of an integer
// interval in lexicographic order, reporting after each step which
// positions of the subset changed.
//
// The enumerator exists for callers that maintain per-index state
// alongside the subset, e.g. the rows of a linear system, one per
// selected index. Because lexicographic successors share a prefix with
// their predecessor, Advance returns the first position that changed,
// letting such callers refresh only the suffix. It also makes tail
// detection cheap: once the smallest index passes a threshold, every
// remaining subset lies entirely above it.
//
// # API
//
//	e, err := subsets.New(k, lo, hi) // k-subsets of [lo, hi)
//	for e.Valid() {
//	    use(e.Subset())    // ascending indices; slice reused per step
//	    first := e.Advance() // first changed position in the new subset
//	    _ = first
//	}
//	e.Reset() // start over
//
// The k = 0 case yields exactly one empty subset. Enumeration is backed
// by gonum's combination generator; this package adds offset mapping,
// resetability and change tracking.
//
// # Errors
//
//	ErrBadInterval   - hi < lo.
//	ErrBadSubsetSize - k < 0 or k > hi-lo.
//
// An Enumerator is not safe for concurrent use; construct one per
// goroutine (construction is cheap).
package subsets
