package p256coz

// This file implements the co-Z (shared-Z) XY-only point arithmetic
// used by ladderCoZ: cozAddC, cozAdd, cozGetInvariant, cozInitDblJac
// and applyZ. The two points carried by a PointCoZ pair always share
// an implicit Z that is never materialized until applyZ folds a
// recovered Z back in at the very end of the ladder.
//
// The operation graphs below are reproduced verbatim from the
// published Meloni / Goundar-Joye-Miyaji co-Z formulas (as realized
// by the reference implementation's XYcoZ_addC/XYcoZ_add/
// XYcoZ_getinvariant/XYcoZ_initdbljac): the scratch-variable reuse and
// the exact order of sub/sqr/mul/add is part of the correctness
// contract and must not be reordered or "simplified" without
// re-deriving the algebra.

// cozAddC transforms (r0, r1) -> (r0+r1, r0-r1) at a new shared Z.
func cozAddC(r0, r1 *PointCoZ) {
	t1, t2, t3, t4 := r0.X, r0.Y, r1.X, r1.Y
	var t5, t6, t7 Fe

	feSub(&t5, &t3, &t1)
	feSqr(&t5, &t5)
	feMul(&t6, &t1, &t5)
	feMul(&t1, &t3, &t5)
	feAdd(&t5, &t4, &t2)
	feSub(&t4, &t4, &t2)
	feSub(&t3, &t1, &t6)
	feMul(&t7, &t2, &t3)
	feAdd(&t3, &t1, &t6)

	feSqr(&t1, &t4)
	feSub(&t1, &t1, &t3)
	feSub(&t2, &t6, &t1)
	feMul(&t2, &t4, &t2)

	feSub(&t2, &t2, &t7)
	feSqr(&t4, &t5)
	feSub(&t3, &t4, &t3)
	feSub(&t4, &t3, &t6)
	feMul(&t4, &t4, &t5)
	feSub(&t4, &t4, &t7)

	r0.X, r0.Y, r1.X, r1.Y = t1, t2, t3, t4
}

// cozAdd transforms (r0, r1) -> (r0+r1, r0') where r0' is r0
// re-expressed at the new shared Z.
func cozAdd(r0, r1 *PointCoZ) {
	t1, t2, t3, t4 := r0.X, r0.Y, r1.X, r1.Y
	var t5, t6 Fe

	feSub(&t5, &t3, &t1)  // X1 - X0
	feSqr(&t5, &t5)       // (X1-X0)^2 = A
	feMul(&t6, &t3, &t5)  // X1*A = B
	feMul(&t3, &t1, &t5)  // X0*A = C
	feSub(&t5, &t4, &t2)  // Y1 - Y0
	feSqr(&t1, &t5)       // (Y1-Y0)^2
	feSub(&t1, &t1, &t3)  // - C
	feSub(&t1, &t1, &t6)  // - B = X3

	feSub(&t6, &t6, &t3) // B - C
	feMul(&t4, &t2, &t6) // Y0*(B-C)
	feSub(&t2, &t3, &t1) // C - X3
	feMul(&t2, &t5, &t2) // (Y1-Y0)*(C-X3)
	feSub(&t2, &t2, &t4) // Y3

	r0.X, r0.Y, r1.X, r1.Y = t1, t2, t3, t4
}

// cozGetInvariant transforms (r0, r1) -> (r1-r0, r0') at a new shared
// Z; r1-r0 is the ladder invariant, equal to the base point.
func cozGetInvariant(r0, r1 *PointCoZ) {
	t1, t2, t3, t4 := r0.X, r0.Y, r1.X, r1.Y
	var t5, t6 Fe

	feSub(&t5, &t3, &t1) // X1 - X0
	feSqr(&t5, &t5)      // A
	feMul(&t6, &t3, &t5) // X1*A = B
	feMul(&t3, &t1, &t5) // X0*A = C

	feAdd(&t5, &t4, &t2) // Y1 + Y0
	feSqr(&t1, &t5)      // (Y1+Y0)^2
	feSub(&t1, &t1, &t3) // - C
	feSub(&t1, &t1, &t6) // - B = X3

	feSub(&t6, &t6, &t3) // B - C
	feMul(&t4, &t2, &t6) // Y0*(B-C)
	feSub(&t2, &t3, &t1) // C - X3
	feMul(&t2, &t5, &t2) // (Y1+Y0)*(C-X3)
	feAdd(&t2, &t2, &t4) // + Y0*(B-C)

	r0.X, r0.Y, r1.X, r1.Y = t1, t2, t3, t4
}

// applyZ sets p = (z^2*X, z^3*Y), upgrading a shared-Z XY-only point
// to its representation at the new Z value z.
func applyZ(p *PointCoZ, z *Fe) {
	var t1 Fe
	feSqr(&t1, z)
	feMul(&p.X, &p.X, &t1)
	feMul(&t1, &t1, z)
	feMul(&p.Y, &p.Y, &t1)
}

// cozInitDblJac produces (r0, r1) = (P, [2]P) in XY-only shared-Z
// form from a Jacobian-with-Z==1 point p, optionally re-randomizing
// the coordinates first by folding in initialZ (nil means use 1).
func cozInitDblJac(p *PointJac, initialZ *Fe) (r0, r1 PointCoZ) {
	pp := PointCoZ{X: p.X, Y: p.Y}
	var z Fe
	if initialZ != nil {
		feToMontgomery(&z, initialZ)
		applyZ(&pp, &z)
	} else {
		z = feOne
	}

	var t1, t2, t3, t4, t5, t6, t7 Fe

	feSqr(&t7, &pp.X)  // X^2
	feAdd(&t2, &t7, &t7)
	feAdd(&t7, &t7, &t2) // 3*X^2
	feSqr(&t1, &z)
	feSqr(&t1, &t1) // Z^4

	feAdd(&t5, &t1, &t1)
	feAdd(&t5, &t5, &t1) // 3*Z^4
	feSub(&t7, &t7, &t5) // alpha = 3*X^2 - 3*Z^4

	feSqr(&t2, &pp.Y)    // Y^2
	feAdd(&t2, &t2, &t2) // 2*Y^2
	feAdd(&t5, &t2, &t2) // 4*Y^2
	feMul(&t1, &t5, &pp.X) // 4*X*Y^2
	feSqr(&t6, &t7)        // alpha^2

	feSub(&t6, &t6, &t1) // alpha^2 - 4*beta
	feSub(&t3, &t6, &t1) // X3 = alpha^2 - 8*beta
	feSub(&t6, &t1, &t3) // 4*beta - X3

	feMul(&t6, &t6, &t7) // alpha*(4*beta - X3)
	feSqr(&t2, &t2)       // (2*Y^2)^2 = 4*Y^4
	feAdd(&t2, &t2, &t2)  // 8*Y^4
	feSub(&t4, &t6, &t2)  // Y3

	r0 = PointCoZ{X: t1, Y: t2}
	r1 = PointCoZ{X: t3, Y: t4}
	return r0, r1
}
