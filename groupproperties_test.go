package p256coz

import (
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) [32]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		t.Fatalf("bad hex fixture %q: %v", s, err)
	}
	var out [32]byte
	copy(out[:], b)
	return out
}

const (
	gxHex = "6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"
	gyHex = "4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"

	doubleGxHex = "7cf27b188d034f7e8a52380304b51ac3c08969e277f21b35a60b48fc47669978"
	doubleGyHex = "07775510db8ed040293d9ac69f7430dbba7dade63ce982299e04b79d227873d1"

	negGyHex = "b01cbd1c01e58065711814b583f061e9d431cca994cea1313449bf97c840ae0a"

	arbKHex = "c51e4753afdec1e6b6c6a5b992f43f8dd0c7a8933072708b6522468b2ffb06fd"
	arbXHex = "942c9f408ead9d82d34a1b9a6a827ebe3e2ddf782b448d23be1b6143988ccef4"
	arbYHex = "8c9eaf6c0d14d992fc63bad3e2496be2eee61cb5b97f65f428ca94a5d0ee19a1"

	twelveGxHex = "741dd5bda817d95e4626537320e5d55179983028b2f82c99d500c5ee8624e3c4"
	twelveGyHex = "0770b46a9c385fdc567383554887b1548eeb912c35ba5ca71995ff22cd4481d3"
)

func TestScalarMultOneIsBasePointJac(t *testing.T) {
	var k Scalar
	k[0] = 1
	got := ScalarMultBaseJac(&k)

	wantX := mustHex(t, gxHex)
	wantY := mustHex(t, gyHex)
	if got.X != wantX || got.Y != wantY {
		t.Fatalf("[1]G != G: got x=%x y=%x", got.X, got.Y)
	}
}

func TestScalarMultTwoMatchesKnownVector(t *testing.T) {
	var k Scalar
	k[0] = 2
	got := ScalarMultBaseJac(&k)

	wantX := mustHex(t, doubleGxHex)
	wantY := mustHex(t, doubleGyHex)
	if got.X != wantX || got.Y != wantY {
		t.Fatalf("[2]G mismatch: got x=%x y=%x", got.X, got.Y)
	}
}

func TestScalarMultTwoAgreesAcrossLadders(t *testing.T) {
	var k Scalar
	k[0] = 2
	gotJac := ScalarMultBaseJac(&k)
	gotCoZ, ok := ScalarMultBaseCoZ(&k)
	if !ok {
		t.Fatalf("k=2 should be in the co-Z domain")
	}
	if gotJac != gotCoZ {
		t.Fatalf("[2]G differs between Jacobian and co-Z ladders: %x vs %x", gotJac, gotCoZ)
	}
}

func TestScalarMultOrderMinusOneIsNegativeBasePoint(t *testing.T) {
	k := scalarSubSmall(&ORDER, 1)
	got := ScalarMultBaseJac(&k)

	wantX := mustHex(t, gxHex)
	wantY := mustHex(t, negGyHex)
	if got.X != wantX || got.Y != wantY {
		t.Fatalf("[ORDER-1]G should be -G: got x=%x y=%x", got.X, got.Y)
	}
}

func TestScalarMultOrderIsIdentity(t *testing.T) {
	base := PointJac{X: xG, Y: yG, Z: feOne}
	result := ladderJac(&ORDER, &base)
	if !feEqual(&result.Z, &feZero) {
		t.Fatalf("[ORDER]G should be the point at infinity (Z=0), got Z=%+v", result.Z)
	}
}

func TestScalarMultArbitraryMatchesKnownVector(t *testing.T) {
	var k Scalar
	kb := mustHex(t, arbKHex)
	for i := 0; i < 32; i++ {
		k[i] = kb[31-i] // big-endian hex -> little-endian Scalar
	}

	got := ScalarMultBaseJac(&k)
	wantX := mustHex(t, arbXHex)
	wantY := mustHex(t, arbYHex)
	if got.X != wantX || got.Y != wantY {
		t.Fatalf("arbitrary scalar mismatch: got x=%x y=%x", got.X, got.Y)
	}
}

func TestScalarMultArbitraryAgreesAcrossLadders(t *testing.T) {
	var k Scalar
	kb := mustHex(t, arbKHex)
	copy(k[:32], kb[:])

	gotJac := ScalarMultBaseJac(&k)
	gotCoZ, ok := ScalarMultBaseCoZ(&k)
	if !ok {
		t.Fatalf("arbitrary scalar should be in the co-Z domain")
	}
	if gotJac != gotCoZ {
		t.Fatalf("Jacobian and co-Z ladders disagree on an arbitrary scalar: %x vs %x", gotJac, gotCoZ)
	}
}

func TestAdditiveHomomorphism(t *testing.T) {
	var k1, k2 Scalar
	k1[0] = 5
	k2[0] = 7

	base := PointJac{X: xG, Y: yG, Z: feOne}
	r1 := ladderJac(&k1, &base)
	r2 := ladderJac(&k2, &base)
	var sum PointJac
	pointAddJac(&sum, &r1, &r2)

	var xm, ym Fe
	pointJacToAffine(&xm, &ym, &sum)
	var x, y Fe
	feFromMontgomery(&x, &xm)
	feFromMontgomery(&y, &ym)
	var sumAffine PointAffine
	feToBytesBE(&sumAffine.X, &x)
	feToBytesBE(&sumAffine.Y, &y)

	wantX := mustHex(t, twelveGxHex)
	wantY := mustHex(t, twelveGyHex)
	if sumAffine.X != wantX || sumAffine.Y != wantY {
		t.Fatalf("[5]G+[7]G != [12]G: got x=%x y=%x", sumAffine.X, sumAffine.Y)
	}

	var k12 Scalar
	k12[0] = 12
	got12 := ScalarMultBaseJac(&k12)
	if got12 != sumAffine {
		t.Fatalf("ladder [12]G disagrees with [5]G+[7]G")
	}
}
