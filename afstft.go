package afstft

import (
	"fmt"
)

const (
	standardDelayHops = 9
	lowDelayHops      = 4
)

type config struct {
	lowDelay bool
	hybrid   bool
}

// Option configures a Filterbank at construction.
type Option func(*config)

// WithLowDelay selects the low-delay prototype pair, trading passband
// selectivity for reduced end-to-end latency.
func WithLowDelay() Option {
	return func(cfg *config) { cfg.lowDelay = true }
}

// WithHybrid enables the hybrid stage, which splits the four lowest
// frequency bins into eight half-width sub-bands at the cost of a fixed
// 3-hop group delay.
func WithHybrid() Option {
	return func(cfg *config) { cfg.hybrid = true }
}

// Filterbank is an analysis/synthesis time-frequency filterbank instance.
//
// Hop size, low-delay mode and hybrid mode are immutable for the life of
// the instance; channel counts may be changed via ChangeChannelCounts.
// See the package documentation for the real-time calling contract.
type Filterbank struct {
	hopSize    int
	lowDelay   bool
	hybrid     bool
	numInputs  int
	numOutputs int

	transform *realTransform
	analysis  *analysisBank
	synthesis *synthesisBank
	hybridIn  *hybridStage
	hybridOut *hybridStage

	preHybrid  [][]complex128 // per input channel, hopSize+1 coarse bins
	postHybrid [][]complex128 // per output channel, hopSize+1 coarse bins
}

// New creates a filterbank for the given hop size and channel counts.
//
// hopSize must be one of 32, 64, 128, 256, 512 or 1024 (matching the
// supported transform lengths). Once constructed, Forward and Backward
// cannot fail.
func New(hopSize, numInputs, numOutputs int, opts ...Option) (*Filterbank, error) {
	if err := validateHopSize(hopSize); err != nil {
		return nil, err
	}
	if err := validateChannelCounts(numInputs, numOutputs); err != nil {
		return nil, err
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	tf, err := newRealTransform(2 * hopSize)
	if err != nil {
		return nil, fmt.Errorf("hop size %d: %w", hopSize, err)
	}

	analysisWindow, synthesisWindow := prototypeWindows(hopSize, cfg.lowDelay)

	// The hybrid stage delays the spectral stream by an odd number of
	// hops; starting the synthesis cursors 3 slots early re-aligns the
	// overlap-add fold with the analysis fold.
	cursorOffset := 0
	if cfg.hybrid {
		cursorOffset = totalHops - hybridGroupDelay
	}

	fb := &Filterbank{
		hopSize:    hopSize,
		lowDelay:   cfg.lowDelay,
		hybrid:     cfg.hybrid,
		numInputs:  numInputs,
		numOutputs: numOutputs,
		transform:  tf,
		analysis:   newAnalysisBank(hopSize, numInputs, analysisWindow),
		synthesis:  newSynthesisBank(hopSize, numOutputs, synthesisWindow, cfg.lowDelay, cursorOffset),
	}
	if cfg.hybrid {
		fb.hybridIn = newHybridStage(hopSize, numInputs)
		fb.hybridOut = newHybridStage(hopSize, numOutputs)
		fb.preHybrid = makeFrames(numInputs, hopSize+1)
		fb.postHybrid = makeFrames(numOutputs, hopSize+1)
	}
	return fb, nil
}

// HopSize returns the immutable hop size in samples.
func (fb *Filterbank) HopSize() int { return fb.hopSize }

// LowDelay reports whether the low-delay prototype pair is active.
func (fb *Filterbank) LowDelay() bool { return fb.lowDelay }

// Hybrid reports whether the hybrid splitting stage is active.
func (fb *Filterbank) Hybrid() bool { return fb.hybrid }

// NumInputs returns the current number of analysis channels.
func (fb *Filterbank) NumInputs() int { return fb.numInputs }

// NumOutputs returns the current number of synthesis channels.
func (fb *Filterbank) NumOutputs() int { return fb.numOutputs }

// BandCount returns the number of spectral bins per channel frame:
// hopSize+1, or hopSize+5 with the hybrid stage.
func (fb *Filterbank) BandCount() int {
	if fb.hybrid {
		return fb.hopSize + 1 + hybridLowBands
	}
	return fb.hopSize + 1
}

// ProcessingDelay returns the fixed analysis+synthesis latency of the
// configuration, in samples.
func (fb *Filterbank) ProcessingDelay() int {
	hops := standardDelayHops
	if fb.lowDelay {
		hops = lowDelayHops
	}
	if fb.hybrid {
		hops += hybridGroupDelay
	}
	return hops * fb.hopSize
}

// Forward converts one hop of time samples per input channel into one
// spectral frame per channel.
//
// src must hold NumInputs slices of at least HopSize samples; dst must
// hold NumInputs slices of at least BandCount bins. Forward allocates
// nothing and must be called exactly once per hop, in hop order.
func (fb *Filterbank) Forward(dst [][]complex128, src [][]float64) {
	if fb.hybrid {
		fb.analysis.forward(fb.preHybrid, src, fb.transform)
		fb.hybridIn.forward(dst, fb.preHybrid)
		return
	}
	fb.analysis.forward(dst, src, fb.transform)
}

// Backward converts one spectral frame per output channel into one hop of
// time samples per channel.
//
// src must hold NumOutputs slices of at least BandCount bins; dst must
// hold NumOutputs slices of at least HopSize samples. Backward allocates
// nothing and must be called exactly once per hop, in hop order.
func (fb *Filterbank) Backward(dst [][]float64, src [][]complex128) {
	if fb.hybrid {
		for ch := 0; ch < fb.numOutputs; ch++ {
			fb.hybridOut.inverse(fb.postHybrid[ch], src[ch])
		}
		fb.synthesis.backward(dst, fb.postHybrid, fb.transform)
		return
	}
	fb.synthesis.backward(dst, src, fb.transform)
}

// ChangeChannelCounts resizes the per-channel state. Surviving channels
// keep their ring-buffer and history contents bit-for-bit; newly added
// channels start zeroed; removed channels' storage is released.
//
// Must not be called concurrently with Forward or Backward on the same
// instance.
func (fb *Filterbank) ChangeChannelCounts(numInputs, numOutputs int) error {
	if err := validateChannelCounts(numInputs, numOutputs); err != nil {
		return err
	}

	fb.analysis.setChannelCount(numInputs)
	fb.synthesis.setChannelCount(numOutputs)
	if fb.hybrid {
		fb.hybridIn.setChannelCount(numInputs)
		fb.hybridOut.setChannelCount(numOutputs)
		fb.preHybrid = resizeFrames(fb.preHybrid, numInputs, fb.hopSize+1)
		fb.postHybrid = resizeFrames(fb.postHybrid, numOutputs, fb.hopSize+1)
	}
	fb.numInputs = numInputs
	fb.numOutputs = numOutputs
	return nil
}

// ClearBuffers zeroes all ring buffers and hybrid history and resets the
// hop cursors to their initial offsets. Channel counts and modes are
// untouched.
func (fb *Filterbank) ClearBuffers() {
	fb.analysis.clear()
	fb.synthesis.clear()
	if fb.hybrid {
		fb.hybridIn.clear()
		fb.hybridOut.clear()
	}
}
