package claim_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aoc2018/claim"
)

// randomClaims builds n claims on a 1000×1000 fabric with sides in [1..30].
// The generator is seeded so every run sees the same input.
func randomClaims(n int) []claim.Claim {
	r := rand.New(rand.NewSource(7))
	out := make([]claim.Claim, n)
	for i := range out {
		x, y := uint32(r.Intn(970)), uint32(r.Intn(970))
		w, h := uint32(r.Intn(30)+1), uint32(r.Intn(30)+1)
		out[i] = claim.Claim{ID: uint32(i + 1), X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
	}

	return out
}

// BenchmarkContestedArea measures the pairwise set-based count on a
// puzzle-sized input.
func BenchmarkContestedArea(b *testing.B) {
	claims := randomClaims(1300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = claim.ContestedArea(claims)
	}
}

// BenchmarkUniqueClaim measures the boolean-only pairwise scan.
func BenchmarkUniqueClaim(b *testing.B) {
	claims := randomClaims(1300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = claim.UniqueClaim(claims)
	}
}
