package afstft

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-afstft/internal/testutil"
)

type roundTripConfig struct {
	hopSize  int
	lowDelay bool
	hybrid   bool
	eps      float64
}

func (c roundTripConfig) String() string {
	name := fmt.Sprintf("hop%d", c.hopSize)
	if c.lowDelay {
		name += "/lowdelay"
	}
	if c.hybrid {
		name += "/hybrid"
	}
	return name
}

func (c roundTripConfig) options() []Option {
	var opts []Option
	if c.lowDelay {
		opts = append(opts, WithLowDelay())
	}
	if c.hybrid {
		opts = append(opts, WithHybrid())
	}
	return opts
}

// The standard prototype reconstructs at machine precision; the low-delay
// prototype trades a bounded reconstruction error for 5 hops less latency.
var roundTripConfigs = []roundTripConfig{
	{hopSize: 32, eps: 1e-9},
	{hopSize: 128, eps: 1e-9},
	{hopSize: 512, eps: 1e-9},
	{hopSize: 128, hybrid: true, eps: 1e-9},
	{hopSize: 32, lowDelay: true, eps: 1e-2},
	{hopSize: 128, lowDelay: true, eps: 1e-2},
	{hopSize: 1024, lowDelay: true, eps: 1e-2},
	{hopSize: 128, lowDelay: true, hybrid: true, eps: 1e-2},
}

// feedThrough streams the per-channel inputs hop by hop through analysis
// and synthesis and returns the per-channel outputs. Input length must be
// a multiple of the hop size.
func feedThrough(fb *Filterbank, inputs [][]float64) [][]float64 {
	hop := fb.HopSize()
	channels := len(inputs)
	length := len(inputs[0])

	frames := makeFrames(channels, fb.BandCount())
	outputs := makeBuffers(channels, length)
	srcHops := make([][]float64, channels)
	dstHops := make([][]float64, channels)

	for off := 0; off < length; off += hop {
		for ch := 0; ch < channels; ch++ {
			srcHops[ch] = inputs[ch][off : off+hop]
			dstHops[ch] = outputs[ch][off : off+hop]
		}
		fb.Forward(frames, srcHops)
		fb.Backward(dstHops, frames)
	}
	return outputs
}

func TestRoundTripNoise(t *testing.T) {
	for _, cfg := range roundTripConfigs {
		t.Run(cfg.String(), func(t *testing.T) {
			fb, err := New(cfg.hopSize, 2, 2, cfg.options()...)
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			length := 40 * cfg.hopSize
			inputs := [][]float64{
				testutil.DeterministicNoise(17, 0.5, length),
				testutil.DeterministicNoise(23, 0.5, length),
			}
			outputs := feedThrough(fb, inputs)

			delay := fb.ProcessingDelay()
			for ch := range outputs {
				testutil.RequireFinite(t, outputs[ch])
				testutil.RequireSliceNearlyEqual(t,
					outputs[ch][delay:], inputs[ch][:length-delay], cfg.eps)
			}
		})
	}
}

func TestRoundTripImpulseDelay(t *testing.T) {
	for _, cfg := range roundTripConfigs {
		t.Run(cfg.String(), func(t *testing.T) {
			fb, err := New(cfg.hopSize, 1, 1, cfg.options()...)
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			length := 40 * cfg.hopSize
			pos := 3*cfg.hopSize + 5
			inputs := [][]float64{testutil.Impulse(length, pos)}
			outputs := feedThrough(fb, inputs)

			peak, peakVal := 0, 0.0
			for i, v := range outputs[0] {
				if v > peakVal {
					peak, peakVal = i, v
				}
			}
			want := pos + fb.ProcessingDelay()
			if peak != want {
				t.Fatalf("impulse peak at %d, want %d", peak, want)
			}
			if diff := peakVal - 1; diff > cfg.eps || diff < -cfg.eps {
				t.Fatalf("peak value = %v, want 1 within %v", peakVal, cfg.eps)
			}
		})
	}
}

func TestRoundTripSine(t *testing.T) {
	for _, cfg := range roundTripConfigs {
		t.Run(cfg.String(), func(t *testing.T) {
			fb, err := New(cfg.hopSize, 1, 1, cfg.options()...)
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			length := 40 * cfg.hopSize
			inputs := [][]float64{testutil.DeterministicSine(440, 48000, 0.5, length)}
			outputs := feedThrough(fb, inputs)

			delay := fb.ProcessingDelay()
			testutil.RequireSliceNearlyEqual(t,
				outputs[0][delay:], inputs[0][:length-delay], cfg.eps)
		})
	}
}
