package afstft

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-afstft/internal/testutil"
)

func randomFrame(rng *rand.Rand, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return out
}

// TestHybridComplementarity pins the defining property of the splitting
// pair: collapsing a split frame recovers the coarse frame exactly, up to
// the fixed group delay. This holds for arbitrary complex input, not just
// Hermitian spectra.
func TestHybridComplementarity(t *testing.T) {
	const hop = 32
	const frames = 20

	h := newHybridStage(hop, 1)
	rng := rand.New(rand.NewSource(3))

	history := make([][]complex128, frames)
	split := makeFrames(1, hop+1+hybridLowBands)
	coarse := make([]complex128, hop+1)

	for i := 0; i < frames; i++ {
		history[i] = randomFrame(rng, hop+1)
		h.forward(split, [][]complex128{history[i]})
		h.inverse(coarse, split[0])

		if i < hybridGroupDelay {
			continue
		}
		want := history[i-hybridGroupDelay]
		testutil.RequireComplexSliceNearlyEqual(t, coarse, want, 1e-12)
	}
}

func TestHybridHighBinsShifted(t *testing.T) {
	const hop = 32

	h := newHybridStage(hop, 1)
	src := make([]complex128, hop+1)
	for k := hybridLowBands + 1; k <= hop; k++ {
		src[k] = complex(float64(k), -float64(k))
	}
	split := makeFrames(1, hop+1+hybridLowBands)

	// The marker frame surfaces after the group delay.
	for i := 0; i <= hybridGroupDelay; i++ {
		frame := make([]complex128, hop+1)
		if i == 0 {
			copy(frame, src)
		}
		h.forward(split, [][]complex128{frame})
	}

	for k := hybridLowBands + 1; k <= hop; k++ {
		if split[0][k+hybridLowBands] != src[k] {
			t.Fatalf("bin %d: got %v at slot %d, want %v",
				k, split[0][k+hybridLowBands], k+hybridLowBands, src[k])
		}
	}
	if split[0][0] != src[0] {
		t.Fatalf("bin 0: got %v, want %v", split[0][0], src[0])
	}
}

// A constant coarse spectrum must split into sub-band pairs that sum back
// to it, and bin 0 must pass through untouched.
func TestHybridSubBandPairsSum(t *testing.T) {
	const hop = 64

	h := newHybridStage(hop, 1)
	src := make([]complex128, hop+1)
	for k := range src {
		src[k] = complex(1, 0.5)
	}
	split := makeFrames(1, hop+1+hybridLowBands)

	// Constant input makes the delayed state equal to the input after the
	// history warms up.
	for i := 0; i < hybridHistoryLen+1; i++ {
		h.forward(split, [][]complex128{src})
	}

	coarse := make([]complex128, hop+1)
	h.inverse(coarse, split[0])
	testutil.RequireComplexSliceNearlyEqual(t, coarse, src, 1e-12)
}

func TestHybridClearResets(t *testing.T) {
	const hop = 32

	h := newHybridStage(hop, 1)
	rng := rand.New(rand.NewSource(9))
	split := makeFrames(1, hop+1+hybridLowBands)
	for i := 0; i < 5; i++ {
		h.forward(split, [][]complex128{randomFrame(rng, hop+1)})
	}

	h.clear()

	// After clear, a zero frame must produce zero output: no residue from
	// the history.
	zeroFrame := make([]complex128, hop+1)
	h.forward(split, [][]complex128{zeroFrame})
	for k, v := range split[0] {
		if v != 0 {
			t.Fatalf("bin %d = %v after clear, want 0", k, v)
		}
	}
}
