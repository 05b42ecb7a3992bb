// Package pedigree parses PED family files into an in-memory relationship
// graph and answers cohort, sibling, trio and quad queries over it.
//
// What
//
//   - One Individual per declared line: family, individual, paternal and
//     maternal IDs, sex code and every trailing column as a phenotype list.
//   - Parents that are referenced but never declared are synthesized as
//     placeholders (sex "1" for fathers, "2" for mothers, phenotype "0").
//   - father/mother/offspring links are resolved after every placeholder
//     exists, so every non-"0" parent ID resolves.
//
// Input format (tab-separated, "#" comments and blank lines skipped):
//
//	family<TAB>individual<TAB>paternal<TAB>maternal<TAB>sex<TAB>phenotype[<TAB>...]
//
// Ownership
//
//	The Pedigree owns every Individual in a single ID-keyed arena. Links are
//	stored as IDs and resolved through Father, Mother and Offspring, so the
//	parent↔child cycle never shows up as pointer ownership.
//
// Determinism
//
//	Queries follow insertion order: declared lines in file order, then
//	placeholders in the order their first child was seen. Families follow
//	first-appearance order.
//
// Mutation
//
//	Filter and Remove are the only mutators. Removal cascades: the record
//	leaves its family list, its parents' offspring lists and its children's
//	father/mother links. Raw PaternalID/MaternalID columns are never rewritten.
//
// Usage
//
//	p, err := pedigree.ParseFile("cohort.ped")
//	if err != nil {
//		// errors.Is(err, pedigree.ErrDuplicateIndividual) / ErrMalformedLine
//	}
//	p.Filter(pedigree.Filter{IncludeFamilies: pedigree.NewSet("FAM1")})
//	for ind := range p.TrioProbands() {
//		fmt.Println(ind.ID)
//	}
//
// Errors
//
//   - ErrDuplicateIndividual  an ID declared on more than one line (fatal).
//   - ErrMalformedLine        fewer than five columns or an empty ID column (fatal).
//   - ErrIndividualNotFound   query on an absent ID (recoverable).
//   - ErrFamilyNotFound       query on a family with no declared members.
//   - ErrOptionViolation      invalid Option.
//   - ErrNilReader            nil source.
//
// Concurrency
//
//	None. A Pedigree must not be mutated while another goroutine reads it.
package pedigree
