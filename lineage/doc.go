// Package lineage provides breadth-first walks over the resolved links of a
// pedigree.Pedigree: ancestors (Up), descendants (Down) or every blood
// relative reachable through either (Both).
//
// What
//
//   - Visit individuals in non-decreasing generation distance from a start.
//   - Returns a Result with Order, Depth and Parent (discovery link), plus
//     PathTo for reconstructing the chain between two relatives.
//   - OnVisit hook (may abort with an error), neighbor Filter and MaxDepth.
//
// Determinism
//
//	Father is enqueued before mother, and offspring follow link order, so the
//	visit sequence is reproducible for a given pedigree.
//
// Cycles
//
//	Pedigrees are not validated; a malformed file may make someone their own
//	ancestor. Each individual is visited once, so walks always terminate.
//
// Usage
//
//	res, err := lineage.Ancestors(p, "KID", lineage.WithMaxDepth(2))
//	if err != nil {
//		// ErrPedigreeNil, ErrStartNotFound, ErrOptionViolation or hook errors
//	}
//	path, _ := res.PathTo("GRANDMA")
//
// Complexity (V = individuals, L = links)
//
//   - Time:   O(V + L)
//   - Memory: O(V)
package lineage
