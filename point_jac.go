package p256coz

// pointDoubleJac sets r = 2*p, for p in Jacobian coordinates on the
// a=-3 curve. Formula is the standard a=-3 doubling (dbl-2001-b):
//
//	delta = Z1^2
//	gamma = Y1^2
//	beta  = X1*gamma
//	alpha = 3*(X1-delta)*(X1+delta)
//	X3    = alpha^2 - 8*beta
//	Z3    = (Y1+Z1)^2 - gamma - delta
//	Y3    = alpha*(4*beta-X3) - 8*gamma^2
//
// r may alias p.
func pointDoubleJac(r, p *PointJac) {
	var delta, gamma, beta, alpha Fe
	var t0, t1, t2 Fe

	feSqr(&delta, &p.Z)
	feSqr(&gamma, &p.Y)
	feMul(&beta, &p.X, &gamma)

	feSub(&t0, &p.X, &delta)
	feAdd(&t1, &p.X, &delta)
	feMul(&t0, &t0, &t1)
	feMulBy3(&alpha, &t0)

	feAdd(&t1, &p.Y, &p.Z)
	feSqr(&t1, &t1)
	feSub(&t1, &t1, &gamma)
	var z3 Fe
	feSub(&z3, &t1, &delta)

	feSqr(&t2, &alpha)
	var beta8 Fe
	feMulBy2(&beta8, &beta)
	feMulBy2(&beta8, &beta8)
	feMulBy2(&beta8, &beta8)
	var x3 Fe
	feSub(&x3, &t2, &beta8)

	var beta4 Fe
	feMulBy2(&beta4, &beta)
	feMulBy2(&beta4, &beta4)
	feSub(&t0, &beta4, &x3)
	feMul(&t0, &alpha, &t0)
	var gamma2 Fe
	feSqr(&gamma2, &gamma)
	var gamma8 Fe
	feMulBy2(&gamma8, &gamma2)
	feMulBy2(&gamma8, &gamma8)
	feMulBy2(&gamma8, &gamma8)
	var y3 Fe
	feSub(&y3, &t0, &gamma8)

	r.X = x3
	r.Y = y3
	r.Z = z3
}

// pointAddJac sets r = p+q, for p, q in Jacobian coordinates with
// (in general) distinct Z-coordinates. Formula is add-2007-bl. Mutual
// negatives yield Z = 0, the point at infinity. An operand at infinity
// (Z = 0) is handled after the formula by a branch-free selection of
// the other operand. Equal operands (p == q) are not handled: the
// formula does not produce 2p for them. The ladder's two running
// points always differ by the base point, so they never coincide.
// r may not alias p or q.
func pointAddJac(r, p, q *PointJac) {
	var z1z1, z2z2 Fe
	feSqr(&z1z1, &p.Z)
	feSqr(&z2z2, &q.Z)

	var u1, u2 Fe
	feMul(&u1, &p.X, &z2z2)
	feMul(&u2, &q.X, &z1z1)

	var s1, s2 Fe
	feMul(&s1, &p.Y, &q.Z)
	feMul(&s1, &s1, &z2z2)
	feMul(&s2, &q.Y, &p.Z)
	feMul(&s2, &s2, &z1z1)

	var h Fe
	feSub(&h, &u2, &u1)

	var i Fe
	feMulBy2(&i, &h)
	feSqr(&i, &i)

	var j Fe
	feMul(&j, &h, &i)

	var rr Fe
	feSub(&rr, &s2, &s1)
	feMulBy2(&rr, &rr)

	var v Fe
	feMul(&v, &u1, &i)

	var x3 Fe
	feSqr(&x3, &rr)
	feSub(&x3, &x3, &j)
	var v2 Fe
	feMulBy2(&v2, &v)
	feSub(&x3, &x3, &v2)

	var y3 Fe
	feSub(&y3, &v, &x3)
	feMul(&y3, &rr, &y3)
	var s1j Fe
	feMul(&s1j, &s1, &j)
	feMulBy2(&s1j, &s1j)
	feSub(&y3, &y3, &s1j)

	var z3 Fe
	feAdd(&z3, &p.Z, &q.Z)
	feSqr(&z3, &z3)
	feSub(&z3, &z3, &z1z1)
	feSub(&z3, &z3, &z2z2)
	feMul(&z3, &z3, &h)

	// The formula above does not cover an operand at infinity (Z = 0);
	// the sum is then the other operand, selected without a branch.
	pz := p.Z.n[0] | p.Z.n[1] | p.Z.n[2] | p.Z.n[3]
	qz := q.Z.n[0] | q.Z.n[1] | q.Z.n[2] | q.Z.n[3]
	sum := PointJac{X: x3, Y: y3, Z: z3}
	other := *q
	pointJacCSwap(1^((pz|-pz)>>63), &sum, &other)
	other = *p
	pointJacCSwap(1^((qz|-qz)>>63), &sum, &other)
	*r = sum
}

// pointJacToAffine converts p from Jacobian to affine coordinates,
// both in Montgomery form: x = X/Z^2, y = Y/Z^3.
func pointJacToAffine(x, y *Fe, p *PointJac) {
	var zInv, zInv2, zInv3 Fe
	feInverse(&zInv, &p.Z)
	feSqr(&zInv2, &zInv)
	feMul(&zInv3, &zInv2, &zInv)
	feMul(x, &p.X, &zInv2)
	feMul(y, &p.Y, &zInv3)
}
