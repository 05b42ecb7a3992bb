// SPDX-License-Identifier: MIT
//
// File: probands.go
// Role: Trio and quad proband detection.
//
// Determinism:
//   - Trios follow insertion order.
//   - Quads follow family first-appearance order, then declared member order;
//     a full-sibling set is ordered by the father's offspring list.
package pedigree

import (
	"fmt"
	"iter"
)

// ProbandKind tells the two shapes QuadProbands yields apart.
type ProbandKind int

const (
	// KindQuad marks exactly two full siblings sharing one father and one mother.
	KindQuad ProbandKind = iota + 1

	// KindSiblingPair marks an (individual, full sibling) pair.
	KindSiblingPair
)

// String implements fmt.Stringer.
func (k ProbandKind) String() string {
	switch k {
	case KindQuad:
		return "quad"
	case KindSiblingPair:
		return "sibling-pair"
	default:
		return fmt.Sprintf("ProbandKind(%d)", int(k))
	}
}

// Proband is one item produced by QuadProbands. Members always has length 2.
// For KindSiblingPair, Members[0] is the examined individual and Members[1]
// its sibling.
type Proband struct {
	Kind    ProbandKind
	Members []*Individual
}

// TrioProbands yields every individual whose paternal and maternal IDs are
// both known (not "0").
func (p *Pedigree) TrioProbands() iter.Seq[*Individual] {
	return p.selectWhere((*Individual).HasBothParents)
}

// QuadProbands walks each family's declared members and, for every
// individual with both parents known, intersects the father's and the
// mother's offspring by ID.
//
// Implementation:
//   - Stage 1: Skip members already reported as someone's sibling in this family.
//   - Stage 2: Compute the full-sibling set; unresolved parents yield nothing.
//   - Stage 3: If the set has exactly two members, yield them as KindQuad.
//   - Stage 4: For every other member of the set, mark it reported and yield
//     (individual, sibling) as KindSiblingPair.
//
// For two parents with exactly two children C1, C2 this yields the quad
// {C1, C2} once, followed by the pair (C1, C2); C2 is then skipped.
//
// Complexity:
//   - Time O(Σ over probands of (deg(father) + deg(mother))).
func (p *Pedigree) QuadProbands() iter.Seq[Proband] {
	return func(yield func(Proband) bool) {
		for _, famID := range p.familyOrder {
			yielded := make(Set)
			for _, id := range p.families[famID] {
				if yielded.Has(id) {
					continue
				}
				ind := p.individuals[id]
				if !ind.HasBothParents() {
					continue
				}
				sibs := p.fullSiblings(ind)
				if len(sibs) == 2 {
					if !yield(Proband{Kind: KindQuad, Members: sibs}) {
						return
					}
				}
				for _, sib := range sibs {
					if sib.ID == ind.ID {
						continue
					}
					yielded[sib.ID] = struct{}{}
					if !yield(Proband{Kind: KindSiblingPair, Members: []*Individual{ind, sib}}) {
						return
					}
				}
			}
		}
	}
}

// fullSiblings returns father.offspring ∩ mother.offspring by ID, ind included,
// ordered by the father's list. Nil if either parent is unresolved.
func (p *Pedigree) fullSiblings(ind *Individual) []*Individual {
	father, fok := p.linked(ind.father)
	mother, mok := p.linked(ind.mother)
	if !fok || !mok {
		return nil
	}

	maternal := NewSet(mother.offspring...)
	seen := make(Set, len(father.offspring))
	var out []*Individual
	for _, cid := range father.offspring {
		if !maternal.Has(cid) || seen.Has(cid) {
			continue
		}
		seen[cid] = struct{}{}
		if c, ok := p.individuals[cid]; ok {
			out = append(out, c)
		}
	}

	return out
}
