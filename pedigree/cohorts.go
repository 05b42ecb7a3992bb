// File: cohorts.go
// Role: Lazy cohort queries (sex, phenotype) and loose sibling lookup.
//
// Every query returns an iter.Seq that walks the current insertion order on
// each range; sequences are finite and restartable.
package pedigree

import "iter"

// AllMale yields individuals with Sex == "1".
func (p *Pedigree) AllMale() iter.Seq[*Individual] {
	return p.selectWhere((*Individual).IsMale)
}

// AllFemale yields individuals with Sex == "2".
func (p *Pedigree) AllFemale() iter.Seq[*Individual] {
	return p.selectWhere((*Individual).IsFemale)
}

// AllAffected yields individuals whose first phenotype column is "2".
func (p *Pedigree) AllAffected() iter.Seq[*Individual] {
	return p.selectWhere((*Individual).IsAffected)
}

// AllUnaffected yields individuals whose first phenotype column is "1".
func (p *Pedigree) AllUnaffected() iter.Seq[*Individual] {
	return p.selectWhere((*Individual).IsUnaffected)
}

// Siblings yields every individual sharing the paternal ID OR the maternal ID
// of id, id itself included. Half-siblings match, and so does anyone whose
// parent column holds the same "0" sentinel: the comparison is on raw columns.
//
// Errors:
//   - ErrIndividualNotFound: id is not in the graph. Checked eagerly, before
//     the sequence is returned.
func (p *Pedigree) Siblings(id string) (iter.Seq[*Individual], error) {
	ind, err := p.Get(id)
	if err != nil {
		return nil, err
	}
	pat, mat := ind.PaternalID, ind.MaternalID

	return p.selectWhere(func(o *Individual) bool {
		return o.PaternalID == pat || o.MaternalID == mat
	}), nil
}
