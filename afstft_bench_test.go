package afstft

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-afstft/internal/testutil"
)

func benchConfigs() []roundTripConfig {
	return []roundTripConfig{
		{hopSize: 128},
		{hopSize: 128, hybrid: true},
		{hopSize: 128, lowDelay: true},
		{hopSize: 1024},
	}
}

func BenchmarkForward(b *testing.B) {
	for _, cfg := range benchConfigs() {
		b.Run(cfg.String(), func(b *testing.B) {
			fb, err := New(cfg.hopSize, 1, 1, cfg.options()...)
			if err != nil {
				b.Fatalf("New: %v", err)
			}
			frames := makeFrames(1, fb.BandCount())
			src := [][]float64{testutil.DeterministicNoise(61, 1.0, cfg.hopSize)}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				fb.Forward(frames, src)
			}
		})
	}
}

func BenchmarkBackward(b *testing.B) {
	for _, cfg := range benchConfigs() {
		b.Run(cfg.String(), func(b *testing.B) {
			fb, err := New(cfg.hopSize, 1, 1, cfg.options()...)
			if err != nil {
				b.Fatalf("New: %v", err)
			}
			frames := makeFrames(1, fb.BandCount())
			src := [][]float64{testutil.DeterministicNoise(67, 1.0, cfg.hopSize)}
			dst := makeBuffers(1, cfg.hopSize)
			fb.Forward(frames, src)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				fb.Backward(dst, frames)
			}
		})
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	for _, channels := range []int{1, 4, 16} {
		b.Run(fmt.Sprintf("hop128/ch%d", channels), func(b *testing.B) {
			fb, err := New(128, channels, channels)
			if err != nil {
				b.Fatalf("New: %v", err)
			}
			frames := makeFrames(channels, fb.BandCount())
			src := make([][]float64, channels)
			for ch := range src {
				src[ch] = testutil.DeterministicNoise(int64(70+ch), 1.0, 128)
			}
			dst := makeBuffers(channels, 128)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				fb.Forward(frames, src)
				fb.Backward(dst, frames)
			}
		})
	}
}
