// Package p256coz implements constant-time scalar multiplication by the
// NIST P-256 base point, using two alternative point-arithmetic
// strategies: classical Jacobian coordinates, and the co-Z (shared-Z)
// XY-only representation with its specialized addition formulas.
package p256coz

import (
	"encoding/binary"

	"crypto/subtle"
)

// Fe is an element of GF(p), p = 2^256 - 2^224 + 2^192 + 2^96 - 1, held
// in Montgomery form: Fe{n} represents n[0] + n[1]*2^64 + n[2]*2^128 +
// n[3]*2^192 = a*R mod p, with R = 2^256. Every stored Fe is fully
// reduced, i.e. in [0, p), unless a primitive's doc comment says
// otherwise.
type Fe struct {
	n [4]uint64
}

// fieldP is the P-256 prime, little-endian limbs.
var fieldP = Fe{n: [4]uint64{
	0xffffffffffffffff,
	0x00000000ffffffff,
	0x0000000000000000,
	0xffffffff00000001,
}}

// fieldB is the P-256 curve parameter b (y^2 = x^3 - 3x + b), in normal
// (non-Montgomery) domain. Not used by the ladder's a=-3 formulas; kept
// for curve-membership self-checks in tests.
var fieldB = Fe{n: [4]uint64{
	0x3bce3c3e27d2604b,
	0x651d06b0cc53b0f6,
	0xb3ebbd55769886bc,
	0x5ac635d8aa3a93e7,
}}

// feOne is ONE, the Montgomery image of 1 (R mod p).
var feOne = Fe{n: [4]uint64{
	0x0000000000000001,
	0xffffffff00000000,
	0xffffffffffffffff,
	0x00000000fffffffe,
}}

// feZero is the (Montgomery and normal-domain) representation of 0.
var feZero = Fe{}

// xG, yG are the standard P-256 base point coordinates, already in
// Montgomery form, reproduced verbatim from the reference
// implementation's constant tables.
var xG = Fe{n: [4]uint64{
	0x79e730d418a9143c,
	0x75ba95fc5fedb601,
	0x79fb732b77622510,
	0x18905f76a53755c6,
}}

var yG = Fe{n: [4]uint64{
	0xddf25357ce95560a,
	0x8b4ab8e4ba19e45c,
	0xd2e88688dd21f325,
	0x8571ff1825885d85,
}}

// feAdd sets r = a+b mod p.
func feAdd(r, a, b *Fe) {
	var sum [4]uint64
	var carry uint64
	sum[0], carry = addc64(a.n[0], b.n[0], 0)
	sum[1], carry = addc64(a.n[1], b.n[1], carry)
	sum[2], carry = addc64(a.n[2], b.n[2], carry)
	sum[3], carry = addc64(a.n[3], b.n[3], carry)
	feReduceAfterAdd(r, &sum, carry)
}

// feReduceAfterAdd reduces a 257-bit value (sum, carry) modulo p by
// conditionally subtracting p once; carry is the 257th bit.
func feReduceAfterAdd(r *Fe, sum *[4]uint64, carry uint64) {
	var diff [4]uint64
	var borrow uint64
	diff[0], borrow = subb64(sum[0], fieldP.n[0], 0)
	diff[1], borrow = subb64(sum[1], fieldP.n[1], borrow)
	diff[2], borrow = subb64(sum[2], fieldP.n[2], borrow)
	diff[3], borrow = subb64(sum[3], fieldP.n[3], borrow)

	// sum >= p iff the 257-bit value overflowed 256 bits, or the
	// subtraction above didn't need to borrow.
	useDiff := carry | (1 - borrow)
	mask := uint64(0) - (useDiff & 1)
	r.n[0] = (diff[0] & mask) | (sum[0] &^ mask)
	r.n[1] = (diff[1] & mask) | (sum[1] &^ mask)
	r.n[2] = (diff[2] & mask) | (sum[2] &^ mask)
	r.n[3] = (diff[3] & mask) | (sum[3] &^ mask)
}

// feSub sets r = a-b mod p.
func feSub(r, a, b *Fe) {
	var diff [4]uint64
	var borrow uint64
	diff[0], borrow = subb64(a.n[0], b.n[0], 0)
	diff[1], borrow = subb64(a.n[1], b.n[1], borrow)
	diff[2], borrow = subb64(a.n[2], b.n[2], borrow)
	diff[3], borrow = subb64(a.n[3], b.n[3], borrow)

	mask := uint64(0) - borrow
	var sum [4]uint64
	var carry uint64
	sum[0], carry = addc64(diff[0], fieldP.n[0]&mask, 0)
	sum[1], carry = addc64(diff[1], fieldP.n[1]&mask, carry)
	sum[2], carry = addc64(diff[2], fieldP.n[2]&mask, carry)
	sum[3], _ = addc64(diff[3], fieldP.n[3]&mask, carry)
	r.n = sum
}

// feNeg sets r = -a mod p.
func feNeg(r, a *Fe) {
	feSub(r, &feZero, a)
}

// feMulBy2 sets r = 2*a mod p.
func feMulBy2(r, a *Fe) {
	feAdd(r, a, a)
}

// feMulBy3 sets r = 3*a mod p.
func feMulBy3(r, a *Fe) {
	var double Fe
	feAdd(&double, a, a)
	feAdd(r, &double, a)
}

// feDiv2 sets r = a/2 mod p, i.e. r such that 2r = a. Since p is odd,
// this is (a + (a&1)*p) >> 1, computed without a data-dependent branch
// on a's low bit.
func feDiv2(r, a *Fe) {
	odd := uint64(0) - (a.n[0] & 1)
	var sum [4]uint64
	var carry uint64
	sum[0], carry = addc64(a.n[0], fieldP.n[0]&odd, 0)
	sum[1], carry = addc64(a.n[1], fieldP.n[1]&odd, carry)
	sum[2], carry = addc64(a.n[2], fieldP.n[2]&odd, carry)
	sum[3], carry = addc64(a.n[3], fieldP.n[3]&odd, carry)

	r.n[0] = (sum[0] >> 1) | (sum[1] << 63)
	r.n[1] = (sum[1] >> 1) | (sum[2] << 63)
	r.n[2] = (sum[2] >> 1) | (sum[3] << 63)
	r.n[3] = (sum[3] >> 1) | (carry << 63)
}

// feEqual reports whether a and b represent the same field element, in
// constant time.
func feEqual(a, b *Fe) bool {
	var ab, bb [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(ab[i*8:], a.n[i])
		binary.LittleEndian.PutUint64(bb[i*8:], b.n[i])
	}
	return subtle.ConstantTimeCompare(ab[:], bb[:]) == 1
}

// feCSwap swaps a and b in place iff cond == 1. cond must be 0 or 1;
// behaviour otherwise is undefined. Branch-free per spec section 4.1.
func feCSwap(cond uint64, a, b *Fe) {
	mask := uint64(0) - cond
	for i := range a.n {
		t := (a.n[i] ^ b.n[i]) & mask
		a.n[i] ^= t
		b.n[i] ^= t
	}
}

// feXorInPlace sets r ^= (a ^ b), limb-wise. Used only for the co-Z
// ladder's final unconditional masked correction (§4.4, §9): once a
// and b are known equal, this is a no-op; any perturbation in a
// surfaces as a corrupted r instead of silently vanishing.
func feXorInPlace(r, a, b *Fe) {
	for i := range r.n {
		r.n[i] ^= a.n[i] ^ b.n[i]
	}
}
