package afstft

// Hybrid half-band filter constants. The coefficient values, the tap
// layout and the band-parity sign assignment define the filter exactly
// and are fixed data: a changed sign degrades reconstruction silently,
// which is why the complementarity tests pin the composition rather than
// the individual terms.
const (
	hybridCoeff1 = 0.031273141818515176
	hybridCoeff2 = 0.281273130415211792

	// hybridHistoryLen is the number of retained pre-hybrid frames per
	// channel.
	hybridHistoryLen = 7

	// hybridGroupDelay is the fixed delay, in hops, paid on the forward
	// side of the hybrid stage.
	hybridGroupDelay = 3

	// hybridLowBands is the number of coarse bins that get split in two.
	hybridLowBands = 4
)

// hybridTapOffsets are the history taps, in hops behind the current write
// position, feeding the correction term; hybridTapWeights are their
// matching antisymmetric weights.
var (
	hybridTapOffsets = [4]int{0, 2, 4, 6}
	hybridTapWeights = [4]float64{hybridCoeff1, hybridCoeff2, -hybridCoeff2, -hybridCoeff1}
)

// hybridStage refines the four lowest bins of a hopSize+1-bin spectrum
// into eight half-width sub-bands, producing hopSize+5 bins. All higher
// bins pass through delayed and shifted up by four positions.
//
// Each channel keeps a rotating history of the last hybridHistoryLen
// pre-hybrid frames; the write pointer is shared by all channels of the
// same direction. Slot (ptr-t) mod 7 always holds the frame analyzed t
// hops ago.
type hybridStage struct {
	hopSize int
	hist    [][]complex128 // per channel, hybridHistoryLen*(hopSize+1) bins
	ptr     int            // slot holding the most recent frame
}

func newHybridStage(hopSize, channels int) *hybridStage {
	return &hybridStage{
		hopSize: hopSize,
		hist:    makeFrames(channels, hybridHistoryLen*(hopSize+1)),
	}
}

// forward stores each channel's coarse frame from src into the history and
// writes the split hopSize+5-bin frame into dst. The shared write pointer
// advances once per call.
func (h *hybridStage) forward(dst [][]complex128, src [][]complex128) {
	n := h.hopSize
	frameLen := n + 1

	h.ptr++
	if h.ptr >= hybridHistoryLen {
		h.ptr = 0
	}
	ptr := h.ptr

	for ch := range h.hist {
		hist := h.hist[ch]
		copy(hist[ptr*frameLen:(ptr+1)*frameLen], src[ch][:frameLen])

		// Frame delayed by the fixed group delay.
		del := ptr - hybridGroupDelay
		if del < 0 {
			del += hybridHistoryLen
		}
		delayed := hist[del*frameLen : (del+1)*frameLen]

		out := dst[ch]
		out[0] = delayed[0]
		for k := hybridLowBands + 1; k <= n; k++ {
			out[k+hybridLowBands] = delayed[k]
		}

		for band := 1; band <= hybridLowBands; band++ {
			half := 0.5 * delayed[band]

			var corr complex128
			for t, off := range hybridTapOffsets {
				slot := ptr - off
				if slot < 0 {
					slot += hybridHistoryLen
				}
				tap := hist[slot*frameLen+band]
				// 90 degree rotation: multiply by -i.
				w := hybridTapWeights[t]
				corr += complex(w*imag(tap), -w*real(tap))
			}

			if band&1 == 1 {
				out[2*band-1] = half - corr
				out[2*band] = half + corr
			} else {
				out[2*band-1] = half + corr
				out[2*band] = half - corr
			}
		}
	}
}

// inverse collapses a split hopSize+5-bin frame back to hopSize+1 bins:
// each sub-band pair sums into its coarse bin and the higher bins shift
// down by four positions. The filter pair reconstructs exactly on
// summation, so no state is consulted; the history exists only so that
// both directions carry the per-channel storage the instance owns.
func (h *hybridStage) inverse(dst []complex128, src []complex128) {
	n := h.hopSize
	dst[0] = src[0]
	for band := 1; band <= hybridLowBands; band++ {
		dst[band] = src[2*band-1] + src[2*band]
	}
	for k := hybridLowBands + 1; k <= n; k++ {
		dst[k] = src[k+hybridLowBands]
	}
}

func (h *hybridStage) setChannelCount(channels int) {
	h.hist = resizeFrames(h.hist, channels, hybridHistoryLen*(h.hopSize+1))
}

func (h *hybridStage) clear() {
	for _, hist := range h.hist {
		zeroComplex(hist)
	}
	h.ptr = 0
}
