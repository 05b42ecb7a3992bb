package pedigree_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pedigraph/pedigree"
)

// ids drains a sequence into its IDs.
func ids(seq iter.Seq[*pedigree.Individual]) []string {
	var out []string
	for ind := range seq {
		out = append(out, ind.ID)
	}

	return out
}

// twoFamilies mixes sexes, phenotypes and an unknown-sex record across two families.
var twoFamilies = []string{
	"FAM1 P1 0 0 1 1",
	"FAM1 P2 0 0 2 2",
	"FAM1 C1 P1 P2 1 2",
	"FAM1 C2 P1 P2 2 1",
	"FAM2 Q1 0 0 1 1",
	"FAM2 Q2 0 0 2 1",
	"FAM2 D1 Q1 Q2 0 2",
}

func TestCohorts_SexPartition(t *testing.T) {
	p := mustParse(t, twoFamilies...)

	males := ids(p.AllMale())
	females := ids(p.AllFemale())
	assert.Equal(t, []string{"P1", "C1", "Q1"}, males)
	assert.Equal(t, []string{"P2", "C2", "Q2"}, females)

	seen := map[string]int{}
	for _, id := range append(males, females...) {
		seen[id]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "%s in both cohorts", id)
	}
	for ind := range p.Individuals() {
		if _, ok := seen[ind.ID]; !ok {
			assert.False(t, ind.IsMale() || ind.IsFemale(), "%s missing from cohorts", ind.ID)
		}
	}
}

func TestCohorts_Phenotype(t *testing.T) {
	p := mustParse(t, twoFamilies...)
	assert.Equal(t, []string{"P2", "C1", "D1"}, ids(p.AllAffected()))
	assert.Equal(t, []string{"P1", "C2", "Q1", "Q2"}, ids(p.AllUnaffected()))
}

func TestCohorts_Restartable(t *testing.T) {
	p := mustParse(t, twoFamilies...)
	seq := p.AllMale()
	assert.Equal(t, ids(seq), ids(seq))

	// early break must not panic
	for range seq {
		break
	}
}

func TestCohorts_PlaceholdersAreCounted(t *testing.T) {
	p := mustParse(t, "F1 KID DAD MOM 0 1")
	assert.Equal(t, []string{"DAD"}, ids(p.AllMale()))
	assert.Equal(t, []string{"MOM"}, ids(p.AllFemale()))
	// placeholder phenotype "0" is neither affected nor unaffected
	assert.Equal(t, []string{"KID"}, ids(p.AllUnaffected()))
	assert.Empty(t, ids(p.AllAffected()))
}

func TestSiblings(t *testing.T) {
	p := mustParse(t,
		"F1 DAD 0 0 1 1",
		"F1 MOM 0 0 2 1",
		"F1 MOM2 0 0 2 1",
		"F1 A DAD MOM 1 1",
		"F1 B DAD MOM 2 1",
		"F1 H DAD MOM2 1 1",
		"F1 M X MOM 1 1",
	)

	seq, err := p.Siblings("A")
	require.NoError(t, err)
	// full sibs, paternal half-sib H and maternal half-sib M; A itself included
	assert.Equal(t, []string{"A", "B", "H", "M"}, ids(seq))

	seq, err = p.Siblings("H")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "H"}, ids(seq))

	// founders share the "0" sentinel, so they are each other's siblings
	seq, err = p.Siblings("DAD")
	require.NoError(t, err)
	assert.Equal(t, []string{"DAD", "MOM", "MOM2", "X"}, ids(seq))

	_, err = p.Siblings("nobody")
	assert.ErrorIs(t, err, pedigree.ErrIndividualNotFound)
}

func TestSiblings_AlwaysIncludesSelf(t *testing.T) {
	p := mustParse(t, twoFamilies...)
	for _, id := range p.IDs() {
		seq, err := p.Siblings(id)
		require.NoError(t, err)
		assert.Contains(t, ids(seq), id)
	}
}

func TestTrioProbands(t *testing.T) {
	p := mustParse(t, append([]string{"FAM3 HALF DAD 0 1 1"}, twoFamilies...)...)
	assert.Equal(t, []string{"C1", "C2", "D1"}, ids(p.TrioProbands()))
}

func TestStats(t *testing.T) {
	p := mustParse(t, append(twoFamilies, "FAM3 K3 X Y 2 2")...)
	s := p.Stats()

	assert.Equal(t, 10, s.Individuals)
	assert.Equal(t, 8, s.Declared)
	assert.Equal(t, 2, s.Synthesized)
	assert.Equal(t, 3, s.Families)
	assert.Equal(t, 4, s.Males)
	assert.Equal(t, 5, s.Females)
	assert.Equal(t, 1, s.UnknownSex)
	assert.Equal(t, 4, s.Affected)
	assert.Equal(t, 4, s.Unaffected)
	assert.Equal(t, 4, s.TrioProbands)
	assert.Equal(t, 3, s.ParentPairs)
}
