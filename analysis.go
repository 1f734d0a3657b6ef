package afstft

import (
	"github.com/cwbudde/algo-vecmath"
)

// analysisBank turns hop-sized time blocks into spectral frames, one frame
// per channel per call.
//
// Each channel owns a ring of totalHops hop slots. A call writes the new
// hop at the shared write cursor, then folds all ten windowed slots into a
// 2*hopSize accumulation buffer: even-indexed ring slots accumulate into
// the first half, odd-indexed into the second. The fold realizes the full
// totalHops*hopSize-tap windowed FIR with a transform of only 2*hopSize
// points, exploiting the transform's periodicity.
type analysisBank struct {
	hopSize  int
	window   []float64   // analysis window, totalHops*hopSize coefficients
	rings    [][]float64 // per channel, totalHops*hopSize samples
	hopIndex int         // next ring slot to write

	accum []float64 // 2*hopSize fold accumulator
	prod  []float64 // hopSize windowed-segment scratch
}

func newAnalysisBank(hopSize, channels int, window []float64) *analysisBank {
	return &analysisBank{
		hopSize: hopSize,
		window:  window,
		rings:   makeBuffers(channels, totalHops*hopSize),
		accum:   make([]float64, 2*hopSize),
		prod:    make([]float64, hopSize),
	}
}

// forward ingests one hop per channel from src and writes each channel's
// hopSize+1 spectral bins into dst. The shared write cursor advances once
// per call, after all channels are processed.
func (b *analysisBank) forward(dst [][]complex128, src [][]float64, tf *realTransform) {
	n := b.hopSize
	cur := b.hopIndex

	for ch := range b.rings {
		ring := b.rings[ch]
		copy(ring[cur*n:(cur+1)*n], src[ch][:n])

		zero(b.accum)
		for j := 0; j < totalHops; j++ {
			// Slot holding the j-th oldest hop; j == totalHops-1 is the
			// hop written above.
			slot := cur + 1 + j
			if slot >= totalHops {
				slot -= totalHops
			}
			half := (slot & 1) * n
			vecmath.MulBlock(b.prod, ring[slot*n:(slot+1)*n], b.window[j*n:(j+1)*n])
			vecmath.AddBlockInPlace(b.accum[half:half+n], b.prod)
		}

		tf.forward(dst[ch][:n+1], b.accum)
	}

	b.hopIndex = cur + 1
	if b.hopIndex >= totalHops {
		b.hopIndex = 0
	}
}

func (b *analysisBank) setChannelCount(channels int) {
	b.rings = resizeBuffers(b.rings, channels, totalHops*b.hopSize)
}

func (b *analysisBank) clear() {
	for _, ring := range b.rings {
		zero(ring)
	}
	b.hopIndex = 0
}
