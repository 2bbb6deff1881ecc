package claim_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aoc2018/claim"
	"github.com/katalvlaran/aoc2018/lines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `#1 @ 1,3: 4x4
#2 @ 3,1: 4x4
#3 @ 5,5: 2x2`

func mustParse(t testing.TB, line string) claim.Claim {
	t.Helper()
	c, err := claim.Parse(line)
	require.NoError(t, err)

	return c
}

//----------------------------------------------------------------------------//
// Intersection / IntersectsWith
//----------------------------------------------------------------------------//

// TestIntersection_Some checks the overlap of claims 1 and 2: (3,3)-(4,4).
func TestIntersection_Some(t *testing.T) {
	a, b := mustParse(t, "#1 @ 1,3: 4x4"), mustParse(t, "#2 @ 3,1: 4x4")

	got, ok := claim.Intersection(a, b)
	require.True(t, ok)
	assert.Equal(t, claim.Claim{X1: 3, Y1: 3, X2: 4, Y2: 4}, got)
	assert.Equal(t, uint64(4), got.Area())
	assert.True(t, claim.IntersectsWith(a, b))
}

// TestIntersection_None checks claims 1 and 3, which only touch diagonally.
func TestIntersection_None(t *testing.T) {
	a, b := mustParse(t, "#1 @ 1,3: 4x4"), mustParse(t, "#3 @ 5,5: 2x2")

	_, ok := claim.Intersection(a, b)
	assert.False(t, ok)
	assert.False(t, claim.IntersectsWith(a, b))
}

// TestIntersection_Edges covers shared edges, containment and identity.
func TestIntersection_Edges(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want claim.Claim
		ok   bool
	}{
		{"SharedColumn", "#1 @ 0,0: 2x2", "#2 @ 1,0: 2x2", claim.Claim{X1: 1, Y1: 0, X2: 1, Y2: 1}, true},
		{"Adjacent", "#1 @ 0,0: 2x2", "#2 @ 2,0: 2x2", claim.Claim{}, false},
		{"Contained", "#1 @ 0,0: 10x10", "#2 @ 3,4: 2x1", claim.Claim{X1: 3, Y1: 4, X2: 4, Y2: 4}, true},
		{"Identical", "#1 @ 5,5: 1x1", "#2 @ 5,5: 1x1", claim.Claim{X1: 5, Y1: 5, X2: 5, Y2: 5}, true},
		{"Below", "#1 @ 0,0: 3x3", "#2 @ 0,3: 3x3", claim.Claim{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := claim.Intersection(mustParse(t, tc.a), mustParse(t, tc.b))
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestIntersection_Symmetric checks symmetry on random claims, and that the
// boolean test agrees with the materialized overlap.
func TestIntersection_Symmetric(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	random := func() claim.Claim {
		x, y := uint32(r.Intn(50)), uint32(r.Intn(50))
		w, h := uint32(r.Intn(20)+1), uint32(r.Intn(20)+1)
		return claim.Claim{ID: uint32(r.Intn(1000)), X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
	}
	for i := 0; i < 500; i++ {
		a, b := random(), random()
		ab, okAB := claim.Intersection(a, b)
		ba, okBA := claim.Intersection(b, a)
		require.Equal(t, okAB, okBA)
		require.Equal(t, ab, ba)
		require.Equal(t, claim.IntersectsWith(a, b), claim.IntersectsWith(b, a))
		require.Equal(t, okAB, claim.IntersectsWith(a, b))
		if okAB {
			require.Zero(t, ab.ID)
			require.LessOrEqual(t, ab.X1, ab.X2)
			require.LessOrEqual(t, ab.Y1, ab.Y2)
		}
	}
}

// TestPoints enumerates a 2×3 claim row by row and honours early exit.
func TestPoints(t *testing.T) {
	c := claim.Claim{X1: 1, Y1: 1, X2: 2, Y2: 3}
	var got []claim.Point
	for p := range c.Points() {
		got = append(got, p)
	}
	assert.Equal(t, []claim.Point{
		{X: 1, Y: 1}, {X: 2, Y: 1},
		{X: 1, Y: 2}, {X: 2, Y: 2},
		{X: 1, Y: 3}, {X: 2, Y: 3},
	}, got)

	n := 0
	for range c.Points() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

//----------------------------------------------------------------------------//
// ContestedArea / UniqueClaim
//----------------------------------------------------------------------------//

// TestContestedArea runs the published sample and a triple overlap.
func TestContestedArea(t *testing.T) {
	claims, err := claim.ParseAll(lines.Split(sample, "\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, claim.ContestedArea(claims))

	// three claims stacked on the same 2×2 square still contest only 4 squares
	stacked := []claim.Claim{
		mustParse(t, "#1 @ 0,0: 2x2"),
		mustParse(t, "#2 @ 0,0: 2x2"),
		mustParse(t, "#3 @ 0,0: 2x2"),
	}
	assert.Equal(t, 4, claim.ContestedArea(stacked))
	assert.Zero(t, claim.ContestedArea(nil))
}

// TestUniqueClaim runs the published sample and the first-in-order tie-break.
func TestUniqueClaim(t *testing.T) {
	claims, err := claim.ParseAll(lines.Split(sample, "\n"))
	require.NoError(t, err)
	id, err := claim.UniqueClaim(claims)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), id)

	isolated := []claim.Claim{
		mustParse(t, "#7 @ 0,0: 1x1"),
		mustParse(t, "#8 @ 9,9: 1x1"),
	}
	id, err = claim.UniqueClaim(isolated)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), id)
}

// TestUniqueClaim_None reports ErrNoUniqueClaim when all claims overlap.
func TestUniqueClaim_None(t *testing.T) {
	_, err := claim.UniqueClaim([]claim.Claim{
		mustParse(t, "#1 @ 0,0: 2x2"),
		mustParse(t, "#2 @ 1,1: 2x2"),
	})
	assert.ErrorIs(t, err, claim.ErrNoUniqueClaim)

	_, err = claim.UniqueClaim(nil)
	assert.ErrorIs(t, err, claim.ErrNoUniqueClaim)
}
