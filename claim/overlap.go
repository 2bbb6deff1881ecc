package claim

// ContestedArea returns the number of unit squares covered by two or more
// claims. Every unordered pair is intersected and the squares of each overlap
// are collected in a set, so a square shared by three claims counts once.
func ContestedArea(claims []Claim) int {
	contested := make(map[Point]struct{})
	for i := 0; i < len(claims); i++ {
		for j := i + 1; j < len(claims); j++ {
			overlap, ok := Intersection(claims[i], claims[j])
			if !ok {
				continue
			}
			for p := range overlap.Points() {
				contested[p] = struct{}{}
			}
		}
	}

	return len(contested)
}

// UniqueClaim returns the ID of the first claim, in input order, that
// intersects no other claim. Later candidates are not examined.
// Returns ErrNoUniqueClaim if every claim overlaps another one.
func UniqueClaim(claims []Claim) (uint32, error) {
outer:
	for i := range claims {
		for j := range claims {
			if i != j && IntersectsWith(claims[i], claims[j]) {
				continue outer
			}
		}

		return claims[i].ID, nil
	}

	return 0, ErrNoUniqueClaim
}
