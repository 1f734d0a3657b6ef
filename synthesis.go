package afstft

import (
	"github.com/cwbudde/algo-vecmath"
)

// synthesisBank consumes one spectral frame per channel per call and
// produces hop-sized time blocks by weighted overlap-add.
//
// Each call zeroes the ring slot about to become the new write target,
// advances the write cursor, overlap-adds all ten windowed halves of the
// inverse-transformed frame into the ring, then emits the slot at the
// read cursor. Zeroing exactly one slot per call is what keeps the
// accumulation bounded; the read cursor trails the write cursor so that a
// slot is emitted only after all totalHops contributions have landed.
//
// In low-delay mode every odd-indexed bin is negated before the inverse
// transform, which is an exact half-frame circular shift in the frequency
// domain and the only behavioral difference between the modes here.
type synthesisBank struct {
	hopSize  int
	window   []float64 // synthesis window, totalHops*hopSize coefficients
	lowDelay bool

	rings      [][]float64 // per channel, totalHops*hopSize samples
	writeIndex int         // next slot to zero and start accumulating into
	readIndex  int         // next slot to emit
	initWrite  int         // cursor start offset (compensates hybrid delay)

	work  []complex128 // hopSize+1 working spectrum
	frame []float64    // 2*hopSize inverse-transform output
	prod  []float64    // hopSize windowed-segment scratch
}

// newSynthesisBank creates a bank whose cursors start cursorOffset slots
// into the ring. A non-zero offset re-aligns the overlap-add fold when an
// odd spectral-domain delay (the hybrid stage's 3 hops) sits between
// analysis and synthesis.
func newSynthesisBank(hopSize, channels int, window []float64, lowDelay bool, cursorOffset int) *synthesisBank {
	b := &synthesisBank{
		hopSize:   hopSize,
		window:    window,
		lowDelay:  lowDelay,
		rings:     makeBuffers(channels, totalHops*hopSize),
		initWrite: cursorOffset % totalHops,
		work:      make([]complex128, hopSize+1),
		frame:     make([]float64, 2*hopSize),
		prod:      make([]float64, hopSize),
	}
	b.resetCursors()
	return b
}

func (b *synthesisBank) resetCursors() {
	b.writeIndex = b.initWrite
	b.readIndex = b.initWrite + 1
	if b.readIndex >= totalHops {
		b.readIndex = 0
	}
}

// backward consumes one hopSize+1-bin frame per channel from src and
// writes each channel's hop of time samples into dst. Both shared cursors
// advance once per call, after all channels are processed.
func (b *synthesisBank) backward(dst [][]float64, src [][]complex128, tf *realTransform) {
	n := b.hopSize
	z := b.writeIndex

	for ch := range b.rings {
		copy(b.work, src[ch][:n+1])
		if b.lowDelay {
			for k := 1; k <= n; k += 2 {
				b.work[k] = -b.work[k]
			}
		}
		tf.inverse(b.frame, b.work)

		ring := b.rings[ch]
		zero(ring[z*n : (z+1)*n])
		for j := 0; j < totalHops; j++ {
			// Same oldest-to-newest ordering as the analysis fold; the
			// just-zeroed slot is the newest.
			slot := z + 1 + j
			if slot >= totalHops {
				slot -= totalHops
			}
			half := (slot & 1) * n
			vecmath.MulBlock(b.prod, b.frame[half:half+n], b.window[j*n:(j+1)*n])
			vecmath.AddBlockInPlace(ring[slot*n:(slot+1)*n], b.prod)
		}

		copy(dst[ch][:n], ring[b.readIndex*n:(b.readIndex+1)*n])
	}

	b.writeIndex = z + 1
	if b.writeIndex >= totalHops {
		b.writeIndex = 0
	}
	b.readIndex++
	if b.readIndex >= totalHops {
		b.readIndex = 0
	}
}

func (b *synthesisBank) setChannelCount(channels int) {
	b.rings = resizeBuffers(b.rings, channels, totalHops*b.hopSize)
}

func (b *synthesisBank) clear() {
	for _, ring := range b.rings {
		zero(ring)
	}
	b.resetCursors()
}
