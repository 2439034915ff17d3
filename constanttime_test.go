package p256coz

import (
	"testing"
	"time"
)

// TestLadderTimingIndependentOfScalarWeight is a lightweight,
// dudect-style smoke check: it compares the wall-clock cost of the
// Jacobian ladder across scalars of very different Hamming weight
// (all-zero-ish vs all-one-ish bit patterns). A data-dependent branch
// or early exit would show up as a large, consistent gap; normal
// timer noise would not. This is not a substitute for a full
// leakage-detection run, only a regression guard against an
// accidentally-introduced branch on secret bits.
func TestLadderTimingIndependentOfScalarWeight(t *testing.T) {
	if testing.Short() {
		t.Skip("timing smoke test skipped in short mode")
	}

	base := PointJac{X: xG, Y: yG, Z: feOne}

	var light, heavy Scalar
	light[0] = 1
	for i := range heavy {
		heavy[i] = 0xff
	}
	heavy[32] = 0

	const rounds = 200
	measure := func(k *Scalar) time.Duration {
		start := time.Now()
		for i := 0; i < rounds; i++ {
			_ = ladderJac(k, &base)
		}
		return time.Since(start)
	}

	// Warm up to avoid measuring one-time setup costs.
	measure(&light)
	measure(&heavy)

	lightTime := measure(&light)
	heavyTime := measure(&heavy)

	ratio := float64(heavyTime) / float64(lightTime)
	if ratio > 3.0 || ratio < 1.0/3.0 {
		t.Fatalf("ladder timing differs too much between low- and high-weight scalars: light=%v heavy=%v ratio=%.2f", lightTime, heavyTime, ratio)
	}
}

func TestScalarCSwapTimingIdentity(t *testing.T) {
	// scalar_cselect/scalarCSwap must perform the identical sequence
	// of operations for cond==0 and cond==1; this checks the output
	// identity that a fixed op-count implementation guarantees,
	// rather than timing directly (timing is covered above at the
	// ladder level, where it matters end to end).
	a := Scalar{1, 2, 3, 4}
	b := Scalar{5, 6, 7, 8}

	a0, b0 := a, b
	scalarCSwap(0, &a0, &b0)
	if a0 != a || b0 != b {
		t.Fatalf("scalarCSwap(0,...) must be a no-op")
	}

	a1, b1 := a, b
	scalarCSwap(1, &a1, &b1)
	if a1 != b || b1 != a {
		t.Fatalf("scalarCSwap(1,...) must fully swap")
	}
}
