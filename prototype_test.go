package afstft

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-afstft/internal/testutil"
)

var testHopSizes = []int{32, 64, 128, 256, 512, 1024}

func TestPrototypeWindowLengths(t *testing.T) {
	for _, hop := range testHopSizes {
		for _, lowDelay := range []bool{false, true} {
			analysis, synthesis := prototypeWindows(hop, lowDelay)
			if len(analysis) != totalHops*hop {
				t.Fatalf("hop %d lowDelay %v: analysis len = %d, want %d",
					hop, lowDelay, len(analysis), totalHops*hop)
			}
			if len(synthesis) != totalHops*hop {
				t.Fatalf("hop %d lowDelay %v: synthesis len = %d, want %d",
					hop, lowDelay, len(synthesis), totalHops*hop)
			}
			testutil.RequireFinite(t, analysis)
			testutil.RequireFinite(t, synthesis)
		}
	}
}

func TestStandardWindowsShared(t *testing.T) {
	for _, hop := range testHopSizes {
		analysis, synthesis := prototypeWindows(hop, false)
		testutil.RequireSliceNearlyEqual(t, analysis, synthesis, 0)
	}
}

func TestLowDelayWindowsMirrored(t *testing.T) {
	for _, hop := range testHopSizes {
		analysis, synthesis := prototypeWindows(hop, true)
		hLen := len(analysis)
		for i := range analysis {
			if analysis[i] != synthesis[hLen-1-i] {
				t.Fatalf("hop %d: analysis[%d] = %v, synthesis[%d] = %v, want mirror pair",
					hop, i, analysis[i], hLen-1-i, synthesis[hLen-1-i])
			}
		}
		// The pair is mirrored, not identical.
		same := true
		for i := range analysis {
			if analysis[i] != synthesis[i] {
				same = false
				break
			}
		}
		if same {
			t.Fatalf("hop %d: low-delay windows are pointwise identical", hop)
		}
	}
}

// TestStandardPolyphaseOrthogonality checks the property that makes the
// standard mode reconstruct exactly: every length-totalHops polyphase
// sequence of the analysis window is orthonormal to its even-offset
// shifts. The property must survive decimation, so it is checked at every
// supported hop size.
func TestStandardPolyphaseOrthogonality(t *testing.T) {
	for _, hop := range testHopSizes {
		analysis, _ := prototypeWindows(hop, false)
		for phase := 0; phase < hop; phase++ {
			var s [totalHops]float64
			for j := 0; j < totalHops; j++ {
				s[j] = analysis[phase+j*hop]
			}
			for k := 0; k <= 4; k++ {
				sum := 0.0
				for j := 0; j+2*k < totalHops; j++ {
					sum += s[j] * s[j+2*k]
				}
				want := 0.0
				if k == 0 {
					want = 1.0
				}
				if math.Abs(sum-want) > 1e-12 {
					t.Fatalf("hop %d phase %d offset %d: autocorrelation = %v, want %v",
						hop, phase, 2*k, sum, want)
				}
			}
		}
	}
}

func TestValidHopSize(t *testing.T) {
	for _, hop := range testHopSizes {
		if !validHopSize(hop) {
			t.Fatalf("hop %d reported invalid", hop)
		}
	}
	for _, hop := range []int{0, -128, 1, 16, 48, 100, 2048} {
		if validHopSize(hop) {
			t.Fatalf("hop %d reported valid", hop)
		}
	}
}
