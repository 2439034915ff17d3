package p256coz

// Scalar padding and the two Montgomery ladder drivers: ladderJac
// (classical Jacobian coordinates) and ladderCoZ (co-Z, XY-only).
// Both drivers process a fixed 257-bit padded scalar regardless of
// the true bit length of k, so their running time is independent of
// k's value.

// padScalar returns k' with k' = k (mod ORDER) and bit 256 of k' set,
// by adding ORDER once or twice. Since the base point has order
// ORDER, [k']G = [k]G for either padding, so the choice between the
// two candidates carries no information about k.
func padScalar(k *Scalar) Scalar {
	once := scalarAdd(k, &ORDER)
	twice := scalarAdd(&once, &ORDER)
	bit256 := scalarBit(&once, 256)
	return scalarCSelect(bit256, &once, &twice)
}

// ladderJac computes [k]base using a 257-step Montgomery ladder over
// Jacobian points, following §4.6.1: a swap driven by the XOR of
// consecutive scalar bits before each step, and a final swap on the
// loop's last pbit value. base is assumed to be on the curve and not
// the point at infinity.
func ladderJac(k *Scalar, base *PointJac) PointJac {
	padded := padScalar(k)

	r0 := *base
	var r1 PointJac
	pointDoubleJac(&r1, base)

	pbit := uint64(0)
	for i := 255; i >= 0; i-- {
		kbit := uint64(scalarBit(&padded, i))
		pbit ^= kbit
		pointJacCSwap(pbit, &r0, &r1)
		pbit = kbit

		var sum PointJac
		pointAddJac(&sum, &r0, &r1)
		pointDoubleJac(&r0, &r0)
		r1 = sum
	}
	pointJacCSwap(pbit, &r0, &r1)
	return r0
}

// ladderCoZ computes [G's base point scalar multiple] using a
// 257-step Montgomery ladder over co-Z XY-only points (§4.6.2),
// following the same swap-on-bit-transition schedule as ladderJac but
// updating the running pair with cozAddC/cozAdd instead of
// point_add/point_double, and recovering the shared Z only once at
// the very end (§4.4.7). Per §9 ("Final conditional swap
// discrepancy"), the post-loop swap here uses the loop's final kbit,
// not pbit as in ladderJac -- this difference is preserved verbatim
// from the reference rather than unified away.
//
// initialZ, if non-nil, is folded in by cozInitDblJac as a
// coordinate-randomization seed (§4.6.2 step 1, §9 "Initial Z
// randomization"); it does not change the result, only the internal
// representation the ladder computes with.
//
// Per the scalar-domain boundary discussed in the accompanying design
// notes, co-Z callers reject k in {0, 1, ORDER-1, ORDER-2}: the co-Z
// XY-only representation has no point at infinity, and for those four
// scalars one of the running registers reaches it (or the two
// registers become mutual negatives) during the ladder.
func ladderCoZ(k *Scalar, initialZ *Fe) (x, y Fe) {
	padded := padScalar(k)

	base := PointJac{X: xG, Y: yG, Z: feOne}
	r0, r1 := cozInitDblJac(&base, initialZ)

	pbit := uint64(0)
	var kbit uint64
	for i := 255; i >= 0; i-- {
		kbit = uint64(scalarBit(&padded, i))
		pbit ^= kbit
		pointCoZCSwap(pbit, &r0, &r1)
		pbit = kbit

		cozAddC(&r0, &r1) // (r0, r1) <- (r0+r1, r0-r1)
		cozAdd(&r0, &r1)  // (r0, r1) <- (r0+r1, r0')
	}
	pointCoZCSwap(kbit, &r0, &r1)
	// (r0, r1) = ([k]G, [k+1]G)

	cozGetInvariant(&r0, &r1)
	// (r0, r1) = (invariant, [k]G), both at some unrecovered shared Z.

	// Z-recovery (§4.4.7): z = X'*yG * (Y'*xG)^-1, the ratio that maps
	// the ladder's unknown shared Z down to the affine frame (Z=1) --
	// applying it to r0 must yield exactly (xG, yG).
	var z Fe
	feMul(&z, &r0.Y, &xG)
	feInverse(&z, &z)
	feMul(&z, &z, &yG)
	feMul(&z, &z, &r0.X)

	applyZ(&r0, &z)
	applyZ(&r1, &z)

	// Unconditional masked correction: r0 now equals (xG, yG) exactly,
	// and XORing that identity into r1 surfaces any perturbation in r0
	// as an incorrect output rather than silently corrupting it.
	// Preserved verbatim per §4.4, §9 ("XOR correction at end of co-Z
	// ladder"): this is not a conditional swap or an assertion, just an
	// unconditional limb-wise XOR.
	feXorInPlace(&r1.X, &r0.X, &xG)
	feXorInPlace(&r1.Y, &r0.Y, &yG)

	return r1.X, r1.Y
}

// scalarInCoZDomain reports whether k avoids the four values the co-Z
// ladder's addition formulas cannot handle: 0, 1, ORDER-1 and
// ORDER-2. Callers of ladderCoZ must check this first, as
// ScalarMultBaseCoZ and ScalarMultBaseRandomizedCoZ do; ladderCoZ does
// not check it itself, so the check stays out of the ladder's hot,
// fully branch-free loop. All four comparisons are always made, and
// none of them branches on k's bytes.
func scalarInCoZDomain(k *Scalar) bool {
	var zero, one Scalar
	one[0] = 1
	orderMinus1 := scalarSubSmall(&ORDER, 1)
	orderMinus2 := scalarSubSmall(&ORDER, 2)

	// eq returns 1 if a == b and 0 otherwise.
	eq := func(a, b *Scalar) byte {
		diff := byte(0)
		for i := 0; i < 33; i++ {
			diff |= a[i] ^ b[i]
		}
		return byte((uint16(diff)-1)>>8) & 1
	}
	hit := eq(k, &zero) | eq(k, &one) | eq(k, &orderMinus1) | eq(k, &orderMinus2)
	return hit == 0
}

// basePointJac is the standard P-256 base point G in Jacobian
// coordinates with Z=ONE (Montgomery form throughout).
func basePointJac() PointJac {
	return PointJac{X: xG, Y: yG, Z: feOne}
}

// ScalarMultBaseJac computes [k]G using the Jacobian ladder and
// returns the result in affine coordinates.
func ScalarMultBaseJac(k *Scalar) PointAffine {
	base := basePointJac()
	r := ladderJac(k, &base)
	return affineFromJac(&r)
}

// ScalarMultBaseCoZ computes [k]G using the co-Z ladder and returns
// the result in affine coordinates. k must satisfy
// scalarInCoZDomain(k); ok is false otherwise and the returned point
// is the zero value.
func ScalarMultBaseCoZ(k *Scalar) (p PointAffine, ok bool) {
	if !scalarInCoZDomain(k) {
		return PointAffine{}, false
	}
	xm, ym := ladderCoZ(k, nil)
	return affineFromMontgomery(&xm, &ym), true
}

// ScalarMultBaseRandomizedCoZ behaves like ScalarMultBaseCoZ, except
// the ladder's internal representation is re-randomized from zSeed
// (a normal-domain, nonzero field element) instead of the implicit
// Z=1 cozInitDblJac otherwise uses, exercising the same
// projective-coordinate randomization hook the reference co-Z ladder
// exposes as a side-channel hardening knob (§9 "Initial Z
// randomization"). The returned affine point is unchanged by the
// choice of seed.
func ScalarMultBaseRandomizedCoZ(k *Scalar, zSeed *Fe) (p PointAffine, ok bool) {
	if !scalarInCoZDomain(k) {
		return PointAffine{}, false
	}
	xm, ym := ladderCoZ(k, zSeed)
	return affineFromMontgomery(&xm, &ym), true
}

// affineFromJac converts a Jacobian point, in Montgomery form, to
// affine coordinates serialized as plain big-endian bytes.
func affineFromJac(p *PointJac) PointAffine {
	var xm, ym Fe
	pointJacToAffine(&xm, &ym, p)
	return affineFromMontgomery(&xm, &ym)
}

// affineFromMontgomery converts a pair of Montgomery-domain affine
// coordinates to their plain big-endian byte serialization.
func affineFromMontgomery(xm, ym *Fe) PointAffine {
	var x, y Fe
	feFromMontgomery(&x, xm)
	feFromMontgomery(&y, ym)

	var out PointAffine
	feToBytesBE(&out.X, &x)
	feToBytesBE(&out.Y, &y)
	return out
}

// feToBytesBE writes a's normal-domain little-endian limbs out as
// 32 big-endian bytes.
func feToBytesBE(out *[32]byte, a *Fe) {
	for i := 0; i < 4; i++ {
		limb := a.n[i]
		for j := 0; j < 8; j++ {
			out[31-(i*8+j)] = byte(limb >> (8 * uint(j)))
		}
	}
}
