package p256coz

// PointJac is a point in Jacobian projective coordinates (X, Y, Z),
// representing the affine point (X/Z^2, Y/Z^3) when Z != 0, and the
// point at infinity when Z == 0. Used by ladderJac.
type PointJac struct {
	X, Y, Z Fe
}

// PointCoZ is a point carried in the co-Z XY-only representation: a
// pair of PointCoZ values share an implicit Z-coordinate that is never
// materialized between ladder steps. Used by ladderCoZ.
type PointCoZ struct {
	X, Y Fe
}

// PointAffine is a curve point in normal (non-Montgomery) affine
// coordinates, the final output format of both ladder drivers.
type PointAffine struct {
	X, Y [32]byte // big-endian
}

// pointJacCSwap swaps a and b in place iff cond == 1.
func pointJacCSwap(cond uint64, a, b *PointJac) {
	feCSwap(cond, &a.X, &b.X)
	feCSwap(cond, &a.Y, &b.Y)
	feCSwap(cond, &a.Z, &b.Z)
}

// pointCoZCSwap swaps a and b in place iff cond == 1.
func pointCoZCSwap(cond uint64, a, b *PointCoZ) {
	feCSwap(cond, &a.X, &b.X)
	feCSwap(cond, &a.Y, &b.Y)
}
