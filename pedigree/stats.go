// File: stats.go
// Role: Read-only summary counts.
package pedigree

// Stats is a snapshot of pedigree counts.
type Stats struct {
	Individuals int
	Declared    int
	Synthesized int
	Families    int

	Males        int
	Females      int
	UnknownSex   int
	Affected     int
	Unaffected   int
	TrioProbands int
	ParentPairs  int // distinct resolved (father, mother) pairs with at least one child
}

// Stats produces a deterministic snapshot in one pass over the arena.
//
// Complexity: O(V).
func (p *Pedigree) Stats() *Stats {
	s := Stats{
		Individuals: len(p.individuals),
		Families:    len(p.familyOrder),
	}
	pairs := make(map[[2]string]struct{})
	for _, id := range p.order {
		ind := p.individuals[id]
		if ind.Synthesized {
			s.Synthesized++
		} else {
			s.Declared++
		}
		switch {
		case ind.IsMale():
			s.Males++
		case ind.IsFemale():
			s.Females++
		default:
			s.UnknownSex++
		}
		if ind.IsAffected() {
			s.Affected++
		}
		if ind.IsUnaffected() {
			s.Unaffected++
		}
		if ind.HasBothParents() {
			s.TrioProbands++
		}
		if ind.father != "" && ind.mother != "" {
			pairs[[2]string{ind.father, ind.mother}] = struct{}{}
		}
	}
	s.ParentPairs = len(pairs)

	return &s
}
