// Package unionfind provides a fixed-size disjoint-set (union-find) structure
// over the integers 0..n-1.
//
// What & Why
//
//   - Tracks a partition of n elements into disjoint sets and answers
//     "are x and y in the same set?" in near-constant amortized time.
//   - Kruskal's MST algorithm uses it to reject edges that would close a cycle.
//
// Guarantees
//
//   - Find uses full path compression: after Find(x) every node on the path
//     from x points directly at the root, so Find(Find(x)) == Find(x).
//   - Union attaches the lower-rank root under the higher-rank one and only
//     bumps the rank on a tie; rank is an upper bound on tree height.
//   - Find is iterative (two passes), so deep trees never grow the call stack.
//
// Complexity
//
//   - New: O(n). Find/Union: O(α(n)) amortized. Count/Len: O(1).
//
// Preconditions
//
//	Element indices must lie in [0, Len()). Violations panic with an
//	index-out-of-range message, the same contract as a slice index.
package unionfind
