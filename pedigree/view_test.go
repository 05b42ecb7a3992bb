package pedigree_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pedigraph/pedigree"
)

func TestWriteTo_RoundTrip(t *testing.T) {
	src := ped(
		"F1 DAD 0 0 1 1",
		"F1 KID DAD MOM 2 2 0.51 extra",
		"F2 SOLO 0 0 0 -9",
		"F2 NOPHENO X 0 1",
	)
	p, err := pedigree.Parse(strings.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := p.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(src)), n)
	assert.Equal(t, src, buf.String(), "placeholders MOM and X must not be written")

	again, err := pedigree.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, p.IDs(), again.IDs())
}

func TestWrite_Options(t *testing.T) {
	p := mustParse(t, "F1 KID DAD 0 1 1")

	var buf bytes.Buffer
	_, err := p.Write(&buf, pedigree.WriteOptions{IncludeSynthesized: true, Header: "fam\tid"})
	require.NoError(t, err)
	assert.Equal(t, "#fam\tid\nF1\tKID\tDAD\t0\t1\t1\nF1\tDAD\t0\t0\t1\t0\n", buf.String())
}

func TestIndividual_StringAndFields(t *testing.T) {
	ind := pedigree.NewIndividual("F", "I", "P", "M", "2", []string{"1", "x"})
	assert.Equal(t, []string{"F", "I", "P", "M", "2", "1", "x"}, ind.Fields())
	assert.Equal(t, "F\tI\tP\tM\t2\t1\tx", ind.String())
	assert.True(t, ind.IsFemale())
	assert.True(t, ind.IsUnaffected())
	assert.True(t, ind.HasBothParents())
	assert.Equal(t, "1", ind.PhenotypeCode())
}

func TestNewIndividual_CopiesPhenotype(t *testing.T) {
	ph := []string{"2"}
	ind := pedigree.NewIndividual("F", "I", "0", "0", "1", ph)
	ph[0] = "1"
	assert.True(t, ind.IsAffected())
}

func TestClone_IsIndependent(t *testing.T) {
	p := mustParse(t, quadRows...)
	cp := p.Clone()

	cp.Filter(pedigree.Filter{ExcludeIndividuals: pedigree.NewSet("P1")})

	assert.True(t, p.Has("P1"))
	father, err := p.Father("C1")
	require.NoError(t, err)
	assert.Equal(t, "P1", father.ID)

	kids, err := p.Offspring("P2")
	require.NoError(t, err)
	assert.Len(t, kids, 2)

	orig, _ := p.Get("C1")
	copied, _ := cp.Get("C1")
	assert.NotSame(t, orig, copied)
}

func TestSubset(t *testing.T) {
	p := mustParse(t, twoFamilies...)
	sub := p.Subset(pedigree.NewSet("P1", "C1", "C2", "Q1"))

	assert.Equal(t, []string{"P1", "C1", "C2", "Q1"}, sub.IDs())
	assert.Equal(t, []string{"FAM1", "FAM2"}, sub.Families())

	kids, err := sub.Offspring("P1")
	require.NoError(t, err)
	assert.Len(t, kids, 2)

	mother, err := sub.Mother("C1")
	require.NoError(t, err)
	assert.Nil(t, mother)

	assert.Equal(t, 7, p.Len(), "source untouched")
}

func TestSubset_KeepsCutLinksCut(t *testing.T) {
	p := mustParse(t, quadRows...)
	require.NoError(t, p.Remove("P2"))
	sub := p.Clone()

	mother, err := sub.Mother("C1")
	require.NoError(t, err)
	assert.Nil(t, mother)
	assert.Equal(t, p.Stats(), sub.Stats())
}
