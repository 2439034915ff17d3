package p256coz

import "testing"

func TestScalarMultBaseCoZRejectsBoundaryScalars(t *testing.T) {
	var zero, one Scalar
	one[0] = 1
	minus1 := scalarSubSmall(&ORDER, 1)
	minus2 := scalarSubSmall(&ORDER, 2)

	for _, k := range []*Scalar{&zero, &one, &minus1, &minus2} {
		if _, ok := ScalarMultBaseCoZ(k); ok {
			t.Fatalf("ScalarMultBaseCoZ should reject boundary scalar %x", k)
		}
	}
}

func TestScalarMultBaseRandomizedCoZMatchesPlainCoZ(t *testing.T) {
	var k Scalar
	k[0] = 9

	plain, ok := ScalarMultBaseCoZ(&k)
	if !ok {
		t.Fatalf("k=9 should be in the co-Z domain")
	}

	var seed Fe
	seed.n[0] = 2 // nonzero, non-one Z seed, normal (non-Montgomery) domain

	randomized, ok := ScalarMultBaseRandomizedCoZ(&k, &seed)
	if !ok {
		t.Fatalf("k=9 should be in the co-Z domain (randomized)")
	}
	if plain != randomized {
		t.Fatalf("randomized-Z co-Z ladder disagrees with the unrandomized result: %x vs %x", plain, randomized)
	}
}

func TestLadderJacAndCoZAgreeOverSmallScalars(t *testing.T) {
	for kv := byte(3); kv < 40; kv++ {
		var k Scalar
		k[0] = kv
		jac := ScalarMultBaseJac(&k)
		coz, ok := ScalarMultBaseCoZ(&k)
		if !ok {
			continue
		}
		if jac != coz {
			t.Fatalf("ladders disagree at k=%d: jac=%x coz=%x", kv, jac, coz)
		}
	}
}
