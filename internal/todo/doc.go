// Package todo holds the task tree and its dotted-path addressing.
//
// A tree is an ordered sequence of top-level tasks. Every task owns an
// ordered sequence of child tasks, to any depth:
//
//	1. [ ] Clean
//	    1. [x] Kitchen
//	    2. [ ] Garage
//	        1. [ ] Shelves
//	2. [ ] Shop
//
// # Paths
//
// A path addresses a task by position at each level. Users write paths as
// dot-separated 1-based integers ("1.2.1" is "Shelves" above); ParsePath
// converts them to a 0-based Path for indexing:
//
//   - "1"      -> Path{0}
//   - "1.2.1"  -> Path{0, 1, 0}
//
// Segments must be positive decimal integers. Anything else fails with
// ErrInvalidPath before the tree is touched.
//
// # Resolution
//
// Resolve walks a path to a task. ResolveParent walks all but the last
// segment and returns the container holding the target together with the
// final index, which is how Add and Delete reach the sequence they mutate.
// The root sequence is returned the same way as any task's children.
//
// # Ownership
//
// Children are stored by value. A pointer returned by Resolve stays valid
// until the next Add or Delete on the same tree.
package todo
