// File: filter.go
// Role: In-place include/exclude filtering by family and individual ID.
package pedigree

// Filter selects which individuals survive (*Pedigree).Filter.
// A nil field means the step is skipped.
type Filter struct {
	IncludeFamilies    Set
	ExcludeFamilies    Set
	IncludeIndividuals Set
	ExcludeIndividuals Set
}

// IsZero reports whether no step is configured.
func (f Filter) IsZero() bool {
	return f.IncludeFamilies == nil && f.ExcludeFamilies == nil &&
		f.IncludeIndividuals == nil && f.ExcludeIndividuals == nil
}

// Filter removes individuals in four fixed steps, each applied to the state
// left by the previous one:
//
//	(a) IncludeFamilies:    drop records whose family is not in the set
//	(b) IncludeIndividuals: drop records whose ID is not in the set
//	(c) ExcludeFamilies:    drop records whose family is in the set
//	(d) ExcludeIndividuals: drop records whose ID is in the set
//
// Removal cascades through families and parent/offspring links exactly like
// Remove. Filtering down to an empty pedigree is not an error. It returns
// the number of records removed.
//
// Complexity: O(V + Σdeg) per configured step.
func (p *Pedigree) Filter(f Filter) int {
	before := p.Len()
	if f.IncludeFamilies != nil {
		p.removeWhere(func(ind *Individual) bool { return !f.IncludeFamilies.Has(ind.FamilyID) })
	}
	if f.IncludeIndividuals != nil {
		p.removeWhere(func(ind *Individual) bool { return !f.IncludeIndividuals.Has(ind.ID) })
	}
	if f.ExcludeFamilies != nil {
		p.removeWhere(func(ind *Individual) bool { return f.ExcludeFamilies.Has(ind.FamilyID) })
	}
	if f.ExcludeIndividuals != nil {
		p.removeWhere(func(ind *Individual) bool { return f.ExcludeIndividuals.Has(ind.ID) })
	}
	removed := before - p.Len()
	if removed > 0 {
		p.log.Debug("pedigree filtered", "removed", removed, "remaining", p.Len())
	}

	return removed
}

// removeWhere collects matching IDs first, then removes them in one batch.
func (p *Pedigree) removeWhere(match func(*Individual) bool) {
	victims := make(Set)
	for _, id := range p.order {
		if match(p.individuals[id]) {
			victims[id] = struct{}{}
		}
	}
	if len(victims) > 0 {
		p.removeAll(victims)
	}
}
