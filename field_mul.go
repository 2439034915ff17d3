package p256coz

import "math/bits"

// addc64/subb64 are bits.Add64/Sub64 under names that read the same as
// the carry chains in field.go.
func addc64(x, y, carry uint64) (uint64, uint64) { return bits.Add64(x, y, carry) }
func subb64(x, y, borrow uint64) (uint64, uint64) { return bits.Sub64(x, y, borrow) }

// feWideMul computes the full 512-bit product a*b as 8 little-endian
// 64-bit limbs, schoolbook style.
func feWideMul(a, b *Fe) [8]uint64 {
	var t [8]uint64
	for i := 0; i < 4; i++ {
		var hiPrev, carryPrev uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a.n[i], b.n[j])
			var c1, c2, c3 uint64
			t[i+j], c1 = addc64(t[i+j], lo, 0)
			t[i+j], c2 = addc64(t[i+j], hiPrev, 0)
			t[i+j], c3 = addc64(t[i+j], carryPrev, 0)
			hiPrev = hi
			carryPrev = c1 + c2 + c3
		}
		idx := i + 4
		var c1, c2 uint64
		t[idx], c1 = addc64(t[idx], hiPrev, 0)
		t[idx], c2 = addc64(t[idx], carryPrev, 0)
		carry := c1 + c2
		for k := idx + 1; k < 8; k++ {
			t[k], carry = addc64(t[k], carry, 0)
		}
	}
	return t
}

// montReduce applies Montgomery reduction to a 512-bit wide value,
// returning wide*R^-1 mod p. The P-256 prime satisfies p = -1 mod 2^64,
// so the Montgomery reduction constant n0' is 1 and each reduction step
// simply reuses the limb being eliminated as the multiplier.
func montReduce(wide [8]uint64) Fe {
	var t [9]uint64
	copy(t[:8], wide[:])

	for i := 0; i < 4; i++ {
		m := t[i] // m = t[i] * n0' mod 2^64, n0' == 1
		var hiPrev, carryPrev uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(m, fieldP.n[j])
			var c1, c2, c3 uint64
			t[i+j], c1 = addc64(t[i+j], lo, 0)
			t[i+j], c2 = addc64(t[i+j], hiPrev, 0)
			t[i+j], c3 = addc64(t[i+j], carryPrev, 0)
			hiPrev = hi
			carryPrev = c1 + c2 + c3
		}
		idx := i + 4
		var c1, c2 uint64
		t[idx], c1 = addc64(t[idx], hiPrev, 0)
		t[idx], c2 = addc64(t[idx], carryPrev, 0)
		carry := c1 + c2
		for k := idx + 1; k < 9; k++ {
			t[k], carry = addc64(t[k], carry, 0)
		}
	}

	var r Fe
	sum := [4]uint64{t[4], t[5], t[6], t[7]}
	feReduceAfterAdd(&r, &sum, t[8])
	return r
}

// feMul sets r = a*b*R^-1 mod p, i.e. Montgomery multiplication.
func feMul(r, a, b *Fe) {
	*r = montReduce(feWideMul(a, b))
}

// feSqr sets r = a*a*R^-1 mod p.
func feSqr(r, a *Fe) {
	feMul(r, a, a)
}

// feSqrN sets r = a^(2^n), i.e. a squared n times.
func feSqrN(r, a *Fe, n int) {
	*r = *a
	for i := 0; i < n; i++ {
		feSqr(r, r)
	}
}

// feFromMontgomery sets r to the normal-domain (non-Montgomery) integer
// represented by the Montgomery-form a, i.e. r = a*R^-1 mod p.
func feFromMontgomery(r, a *Fe) {
	var wide [8]uint64
	copy(wide[:4], a.n[:])
	*r = montReduce(wide)
}

// feToMontgomery sets r to the Montgomery-form representative of the
// normal-domain integer a, i.e. r = a*R mod p. Computed as 256
// successive modular doublings of a (a*2^256 mod p = a*R mod p); domain
// conversion is not on the ladder's hot path (only the initial_Z
// randomization hook and test fixtures use it), so this favors a small,
// obviously-correct implementation over a precomputed R^2 constant.
func feToMontgomery(r, a *Fe) {
	*r = *a
	for i := 0; i < 256; i++ {
		feMulBy2(r, r)
	}
}

// feInverse computes r = a^(p-2) mod p = a^-1 mod p (for a != 0), via
// the fixed addition chain for the exponent
//
//	p-2 = ffffffff 00000001 00000000 00000000 00000000 ffffffff ffffffff fffffffd
//
// built from the windows a^2, a^3, a^15 (=a^f), a^ff, a^ffff, a^ffffffff,
// plus the auxiliary windows a^63, a^16383, a^(2^30-1) needed to reach
// the final word's 0xfffffffd pattern. Every input to this function
// takes the identical sequence of operations: the exponent is a public
// constant, so there is no data-dependent control flow here even though
// the routine is not branch-structured around secret bits.
func feInverse(r, a *Fe) {
	var a2, a3, aF, aFF, aFFFF, aFFFFFFFF Fe
	var a6, a14, a30 Fe
	var acc, tmp Fe

	feSqr(&a2, a)
	feMul(&a3, &a2, a)

	feSqrN(&aF, &a3, 2)
	feMul(&aF, &aF, &a3)

	feSqrN(&aFF, &aF, 4)
	feMul(&aFF, &aFF, &aF)

	feSqrN(&aFFFF, &aFF, 8)
	feMul(&aFFFF, &aFFFF, &aFF)

	feSqrN(&aFFFFFFFF, &aFFFF, 16)
	feMul(&aFFFFFFFF, &aFFFFFFFF, &aFFFF)

	// a^63 = a^(2^6-1)
	feSqrN(&a6, &aF, 2)
	feMul(&a6, &a6, &a3)

	// a^16383 = a^(2^14-1)
	feSqrN(&a14, &aFF, 6)
	feMul(&a14, &a14, &a6)

	// a^(2^30-1)
	feSqrN(&a30, &aFFFF, 14)
	feMul(&a30, &a30, &a14)

	// word 7: ffffffff
	acc = aFFFFFFFF

	// word 6: 00000001
	feSqrN(&acc, &acc, 32)
	feMul(&acc, &acc, a)

	// word 5: 00000000
	feSqrN(&acc, &acc, 32)

	// word 4: 00000000
	feSqrN(&acc, &acc, 32)

	// word 3: 00000000
	feSqrN(&acc, &acc, 32)

	// word 2: ffffffff
	feSqrN(&acc, &acc, 32)
	feMul(&acc, &acc, &aFFFFFFFF)

	// word 1: ffffffff
	feSqrN(&acc, &acc, 32)
	feMul(&acc, &acc, &aFFFFFFFF)

	// word 0: fffffffd
	feSqrN(&acc, &acc, 32)
	feSqrN(&tmp, &a30, 2)
	feMul(&tmp, &tmp, a)
	feMul(&acc, &acc, &tmp)

	*r = acc
}
