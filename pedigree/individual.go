// File: individual.go
// Role: Individual construction, predicates and PED rendering.
package pedigree

import "strings"

// NewIndividual builds a record from the six PED columns. No value domain is
// checked; father/mother start unresolved and offspring starts empty.
//
// Complexity: O(len(phenotype)) for the defensive copy.
func NewIndividual(familyID, id, paternalID, maternalID, sex string, phenotype []string) *Individual {
	ph := make([]string, len(phenotype))
	copy(ph, phenotype)

	return &Individual{
		FamilyID:   familyID,
		ID:         id,
		PaternalID: paternalID,
		MaternalID: maternalID,
		Sex:        sex,
		Phenotype:  ph,
	}
}

// newPlaceholder builds the record synthesized for a parent ID that never had its own line.
func newPlaceholder(familyID, id, sex string) *Individual {
	ind := NewIndividual(familyID, id, Unknown, Unknown, sex, []string{Unknown})
	ind.Synthesized = true

	return ind
}

// IsMale reports Sex == "1".
func (ind *Individual) IsMale() bool { return ind.Sex == SexMale }

// IsFemale reports Sex == "2".
func (ind *Individual) IsFemale() bool { return ind.Sex == SexFemale }

// PhenotypeCode returns the first phenotype column, or "" when there is none.
// The cohort predicates treat this value as the scalar phenotype.
func (ind *Individual) PhenotypeCode() string {
	if len(ind.Phenotype) == 0 {
		return ""
	}

	return ind.Phenotype[0]
}

// IsAffected reports PhenotypeCode() == "2".
func (ind *Individual) IsAffected() bool { return ind.PhenotypeCode() == PhenotypeAffected }

// IsUnaffected reports PhenotypeCode() == "1".
func (ind *Individual) IsUnaffected() bool { return ind.PhenotypeCode() == PhenotypeUnaffected }

// HasBothParents reports whether neither parent ID is the "0" sentinel.
// This is the raw-column test; it does not require the parents to be resolved.
func (ind *Individual) HasBothParents() bool {
	return ind.PaternalID != Unknown && ind.MaternalID != Unknown
}

// Fields returns the PED columns in file order: family, individual,
// paternal, maternal, sex, then every phenotype column.
func (ind *Individual) Fields() []string {
	out := make([]string, 0, 5+len(ind.Phenotype))
	out = append(out, ind.FamilyID, ind.ID, ind.PaternalID, ind.MaternalID, ind.Sex)

	return append(out, ind.Phenotype...)
}

// String renders the record as one tab-separated PED line without a newline.
func (ind *Individual) String() string {
	return strings.Join(ind.Fields(), "\t")
}
