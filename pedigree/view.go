// File: view.go
// Role: Non-mutating views (deep copy, induced sub-pedigree).
// AI-HINT (file):
//   - Views do NOT mutate the input Pedigree.
//   - Subset keeps only IDs in 'keep' and links only between kept records.
package pedigree

// Clone returns a deep copy sharing no records or slices with p.
//
// Complexity: O(V + Σdeg).
func (p *Pedigree) Clone() *Pedigree {
	return p.subset(func(string) bool { return true })
}

// Subset returns a new Pedigree induced by keep: only individuals whose ID is
// in keep survive, and father/mother/offspring links are rebuilt among them.
// Unlike Filter, no placeholder is re-synthesized for a dropped parent.
//
// Complexity: O(V + Σdeg).
func (p *Pedigree) Subset(keep Set) *Pedigree {
	return p.subset(keep.Has)
}

func (p *Pedigree) subset(keep func(id string) bool) *Pedigree {
	out := newPedigree()
	out.log = p.log

	for _, id := range p.order {
		if !keep(id) {
			continue
		}
		src := p.individuals[id]
		cp := NewIndividual(src.FamilyID, src.ID, src.PaternalID, src.MaternalID, src.Sex, src.Phenotype)
		cp.Synthesized = src.Synthesized
		out.insert(cp)
	}
	for _, famID := range p.familyOrder {
		for _, id := range p.families[famID] {
			if !out.Has(id) {
				continue
			}
			if _, ok := out.families[famID]; !ok {
				out.familyOrder = append(out.familyOrder, famID)
			}
			out.families[famID] = append(out.families[famID], id)
		}
	}

	// Links that the source had already cut (Filter/Remove) must stay cut, so
	// only pairs linked in p are relinked here.
	for _, id := range out.order {
		src, dst := p.individuals[id], out.individuals[id]
		if father, ok := out.linked(src.father); ok {
			dst.father = father.ID
			father.offspring = append(father.offspring, id)
		}
		if mother, ok := out.linked(src.mother); ok {
			dst.mother = mother.ID
			mother.offspring = append(mother.offspring, id)
		}
	}

	return out
}
