package lineage_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pedigraph/lineage"
	"github.com/katalvlaran/pedigraph/pedigree"
)

// threeGenerations:
//
//	GF ─┬─ GM
//	    │
//	   DAD ─┬─ MOM
//	        │
//	   KID1   KID2
func threeGenerations(t *testing.T) *pedigree.Pedigree {
	t.Helper()
	src := strings.Join([]string{
		"F\tGF\t0\t0\t1\t1",
		"F\tGM\t0\t0\t2\t1",
		"F\tDAD\tGF\tGM\t1\t1",
		"F\tMOM\t0\t0\t2\t1",
		"F\tKID1\tDAD\tMOM\t1\t2",
		"F\tKID2\tDAD\tMOM\t2\t1",
	}, "\n")
	p, err := pedigree.Parse(strings.NewReader(src))
	require.NoError(t, err)

	return p
}

func TestWalk_Errors(t *testing.T) {
	_, err := lineage.Ancestors(nil, "A")
	assert.ErrorIs(t, err, lineage.ErrPedigreeNil)

	p := threeGenerations(t)
	_, err = lineage.Ancestors(p, "nobody")
	assert.ErrorIs(t, err, lineage.ErrStartNotFound)

	_, err = lineage.Ancestors(p, "KID1", lineage.WithMaxDepth(-1))
	assert.ErrorIs(t, err, lineage.ErrOptionViolation)

	_, err = lineage.Walk(p, "KID1", lineage.Direction(9))
	assert.ErrorIs(t, err, lineage.ErrOptionViolation)
}

func TestAncestors(t *testing.T) {
	p := threeGenerations(t)
	res, err := lineage.Ancestors(p, "KID1")
	require.NoError(t, err)

	assert.Equal(t, []string{"KID1", "DAD", "MOM", "GF", "GM"}, res.Order)
	assert.Equal(t, 2, res.Depth["GM"])
	assert.False(t, res.Reached("KID2"))

	path, err := res.PathTo("GM")
	require.NoError(t, err)
	assert.Equal(t, []string{"KID1", "DAD", "GM"}, path)

	_, err = res.PathTo("KID2")
	assert.Error(t, err)
}

func TestDescendants(t *testing.T) {
	p := threeGenerations(t)
	res, err := lineage.Descendants(p, "GM")
	require.NoError(t, err)
	assert.Equal(t, []string{"GM", "DAD", "KID1", "KID2"}, res.Order)
}

func TestRelatives_MaxDepth(t *testing.T) {
	p := threeGenerations(t)
	res, err := lineage.Relatives(p, "DAD", lineage.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"DAD", "GF", "GM", "KID1", "KID2"}, res.Order)

	res, err = lineage.Relatives(p, "DAD")
	require.NoError(t, err)
	assert.Len(t, res.Order, 6)
	assert.Equal(t, 2, res.Depth["MOM"])
}

func TestWalk_FilterAndHook(t *testing.T) {
	p := threeGenerations(t)
	var visited []string
	res, err := lineage.Ancestors(p, "KID1",
		lineage.WithFilter(func(_, to string) bool { return to != "MOM" }),
		lineage.WithOnVisit(func(id string, _ int) error {
			visited = append(visited, id)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Order, visited)
	assert.NotContains(t, visited, "MOM")

	stop := errors.New("stop")
	_, err = lineage.Ancestors(p, "KID1", lineage.WithOnVisit(func(id string, _ int) error {
		if id == "DAD" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestWalk_Cancelled(t *testing.T) {
	p := threeGenerations(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := lineage.Descendants(p, "GF", lineage.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalk_CyclicInputTerminates(t *testing.T) {
	src := "F\tA\tB\t0\t1\t1\nF\tB\tA\t0\t1\t1\n"
	p, err := pedigree.Parse(strings.NewReader(src))
	require.NoError(t, err)

	res, err := lineage.Ancestors(p, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestCommonAncestors(t *testing.T) {
	p := threeGenerations(t)
	common, err := lineage.CommonAncestors(p, "KID1", "KID2")
	require.NoError(t, err)
	assert.Equal(t, []string{"DAD", "MOM", "GF", "GM"}, common)

	common, err = lineage.CommonAncestors(p, "KID1", "DAD")
	require.NoError(t, err)
	assert.Equal(t, []string{"GF", "GM"}, common)

	_, err = lineage.CommonAncestors(p, "KID1", "nobody")
	assert.ErrorIs(t, err, lineage.ErrStartNotFound)
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]lineage.Direction{
		"up": lineage.Up, "ancestors": lineage.Up,
		"down": lineage.Down, "both": lineage.Both,
	} {
		got, err := lineage.ParseDirection(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NotEmpty(t, got.String())
	}
	_, err := lineage.ParseDirection("sideways")
	assert.ErrorIs(t, err, lineage.ErrOptionViolation)
}
