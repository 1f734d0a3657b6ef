package afstft

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-afstft/internal/testutil"
)

func TestNewRejectsUnsupportedHopSize(t *testing.T) {
	for _, hop := range []int{0, -128, 1, 31, 48, 100, 2048} {
		_, err := New(hop, 1, 1)
		if !errors.Is(err, ErrUnsupportedHopSize) {
			t.Fatalf("hop %d: err = %v, want ErrUnsupportedHopSize", hop, err)
		}
	}
}

func TestNewRejectsNegativeChannelCounts(t *testing.T) {
	if _, err := New(128, -1, 2); !errors.Is(err, ErrNegativeChannelCount) {
		t.Fatalf("err = %v, want ErrNegativeChannelCount", err)
	}
	if _, err := New(128, 2, -1); !errors.Is(err, ErrNegativeChannelCount) {
		t.Fatalf("err = %v, want ErrNegativeChannelCount", err)
	}
}

func TestNewAllowsZeroChannels(t *testing.T) {
	fb, err := New(128, 0, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fb.Forward(nil, nil)
	fb.Backward(nil, nil)
}

func TestGetters(t *testing.T) {
	fb, err := New(256, 3, 2, WithLowDelay(), WithHybrid())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if fb.HopSize() != 256 {
		t.Fatalf("HopSize = %d, want 256", fb.HopSize())
	}
	if fb.NumInputs() != 3 || fb.NumOutputs() != 2 {
		t.Fatalf("channels = %d/%d, want 3/2", fb.NumInputs(), fb.NumOutputs())
	}
	if !fb.LowDelay() || !fb.Hybrid() {
		t.Fatalf("modes = %v/%v, want true/true", fb.LowDelay(), fb.Hybrid())
	}
}

func TestBandCount(t *testing.T) {
	cases := []struct {
		hopSize int
		hybrid  bool
		want    int
	}{
		{32, false, 33},
		{32, true, 37},
		{128, false, 129},
		{128, true, 133},
		{1024, false, 1025},
		{1024, true, 1029},
	}
	for _, c := range cases {
		var opts []Option
		if c.hybrid {
			opts = append(opts, WithHybrid())
		}
		fb, err := New(c.hopSize, 1, 1, opts...)
		if err != nil {
			t.Fatalf("New(%d): %v", c.hopSize, err)
		}
		if got := fb.BandCount(); got != c.want {
			t.Fatalf("hop %d hybrid %v: BandCount = %d, want %d",
				c.hopSize, c.hybrid, got, c.want)
		}
	}
}

func TestProcessingDelay(t *testing.T) {
	cases := []struct {
		hopSize  int
		lowDelay bool
		hybrid   bool
		want     int
	}{
		{128, false, false, 9 * 128},
		{128, false, true, 12 * 128},
		{128, true, false, 4 * 128},
		{128, true, true, 7 * 128},
		{512, false, false, 9 * 512},
		{32, true, true, 7 * 32},
	}
	for _, c := range cases {
		var opts []Option
		if c.lowDelay {
			opts = append(opts, WithLowDelay())
		}
		if c.hybrid {
			opts = append(opts, WithHybrid())
		}
		fb, err := New(c.hopSize, 1, 1, opts...)
		if err != nil {
			t.Fatalf("New(%d): %v", c.hopSize, err)
		}
		if got := fb.ProcessingDelay(); got != c.want {
			t.Fatalf("hop %d lowDelay %v hybrid %v: ProcessingDelay = %d, want %d",
				c.hopSize, c.lowDelay, c.hybrid, got, c.want)
		}
	}
}

func TestForwardEdgeBinsReal(t *testing.T) {
	const hop = 64
	fb, err := New(hop, 1, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	frames := makeFrames(1, fb.BandCount())
	src := [][]float64{testutil.DeterministicNoise(5, 1.0, hop)}
	for i := 0; i < totalHops; i++ {
		fb.Forward(frames, src)
		if imag(frames[0][0]) != 0 {
			t.Fatalf("hop %d: bin 0 imaginary part = %v, want exactly 0", i, imag(frames[0][0]))
		}
		if imag(frames[0][hop]) != 0 {
			t.Fatalf("hop %d: top bin imaginary part = %v, want exactly 0", i, imag(frames[0][hop]))
		}
	}
}

func TestChangeChannelCountsRejectsNegative(t *testing.T) {
	fb, err := New(128, 2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := fb.ChangeChannelCounts(-1, 2); !errors.Is(err, ErrNegativeChannelCount) {
		t.Fatalf("err = %v, want ErrNegativeChannelCount", err)
	}
	if fb.NumInputs() != 2 || fb.NumOutputs() != 2 {
		t.Fatalf("channel counts changed after failed call: %d/%d",
			fb.NumInputs(), fb.NumOutputs())
	}
}

// Shrinking must leave the surviving channel's state untouched: a 2-channel
// instance shrunk to 1 channel must continue to produce bit-identical output
// to a 1-channel instance that saw the same signal all along.
func TestChangeChannelCountsPreservesSurvivors(t *testing.T) {
	const hop = 32
	const warmHops = 10
	const tailHops = 10

	wide, err := New(hop, 2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	narrow, err := New(hop, 1, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	sig0 := testutil.DeterministicNoise(31, 1.0, (warmHops+tailHops)*hop)
	sig1 := testutil.DeterministicNoise(37, 1.0, warmHops*hop)

	wideFrames := makeFrames(2, wide.BandCount())
	narrowFrames := makeFrames(1, narrow.BandCount())
	wideOut := makeBuffers(2, hop)
	narrowOut := makeBuffers(1, hop)

	for i := 0; i < warmHops; i++ {
		off := i * hop
		wide.Forward(wideFrames, [][]float64{sig0[off : off+hop], sig1[off : off+hop]})
		wide.Backward(wideOut, wideFrames)
		narrow.Forward(narrowFrames, [][]float64{sig0[off : off+hop]})
		narrow.Backward(narrowOut, narrowFrames)
	}

	if err := wide.ChangeChannelCounts(1, 1); err != nil {
		t.Fatalf("ChangeChannelCounts: %v", err)
	}

	for i := warmHops; i < warmHops+tailHops; i++ {
		off := i * hop
		wide.Forward(wideFrames[:1], [][]float64{sig0[off : off+hop]})
		wide.Backward(wideOut[:1], wideFrames[:1])
		narrow.Forward(narrowFrames, [][]float64{sig0[off : off+hop]})
		narrow.Backward(narrowOut, narrowFrames)

		testutil.RequireSliceNearlyEqual(t, wideOut[0], narrowOut[0], 0)
	}
}

// A channel removed and re-added starts with zeroed state.
func TestChangeChannelCountsZeroesReaddedChannel(t *testing.T) {
	const hop = 32
	fb, err := New(hop, 2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	frames := makeFrames(2, fb.BandCount())
	out := makeBuffers(2, hop)
	noise := testutil.DeterministicNoise(41, 1.0, hop)
	for i := 0; i < 10; i++ {
		fb.Forward(frames, [][]float64{noise, noise})
		fb.Backward(out, frames)
	}

	if err := fb.ChangeChannelCounts(1, 1); err != nil {
		t.Fatalf("shrink: %v", err)
	}
	if err := fb.ChangeChannelCounts(2, 2); err != nil {
		t.Fatalf("grow: %v", err)
	}

	silence := make([]float64, hop)
	for i := 0; i < totalHops; i++ {
		fb.Forward(frames, [][]float64{silence, silence})
		fb.Backward(out, frames)
		for k, v := range out[1] {
			if v != 0 {
				t.Fatalf("hop %d sample %d: re-added channel emitted %v, want 0", i, k, v)
			}
		}
	}
}

// ClearBuffers returns the instance to its initial state: output after a
// clear is bit-identical to a freshly constructed instance.
func TestClearBuffers(t *testing.T) {
	const hop = 32
	for _, hybrid := range []bool{false, true} {
		var opts []Option
		if hybrid {
			opts = append(opts, WithHybrid())
		}
		used, err := New(hop, 1, 1, opts...)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		fresh, err := New(hop, 1, 1, opts...)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		frames := makeFrames(1, used.BandCount())
		out := makeBuffers(1, hop)
		noise := testutil.DeterministicNoise(43, 1.0, hop)
		for i := 0; i < 15; i++ {
			used.Forward(frames, [][]float64{noise})
			used.Backward(out, frames)
		}

		used.ClearBuffers()

		usedFrames := makeFrames(1, used.BandCount())
		freshFrames := makeFrames(1, fresh.BandCount())
		usedOut := makeBuffers(1, hop)
		freshOut := makeBuffers(1, hop)
		for i := 0; i < 15; i++ {
			used.Forward(usedFrames, [][]float64{noise})
			used.Backward(usedOut, usedFrames)
			fresh.Forward(freshFrames, [][]float64{noise})
			fresh.Backward(freshOut, freshFrames)

			testutil.RequireComplexSliceNearlyEqual(t, usedFrames[0], freshFrames[0], 0)
			testutil.RequireSliceNearlyEqual(t, usedOut[0], freshOut[0], 0)
		}
	}
}

func TestForwardBackwardAllocationFree(t *testing.T) {
	for _, hybrid := range []bool{false, true} {
		var opts []Option
		if hybrid {
			opts = append(opts, WithHybrid())
		}
		fb, err := New(128, 2, 2, opts...)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		frames := makeFrames(2, fb.BandCount())
		src := [][]float64{
			testutil.DeterministicNoise(51, 1.0, 128),
			testutil.DeterministicNoise(53, 1.0, 128),
		}
		dst := makeBuffers(2, 128)

		// Warm up once so lazy state, if any, is settled.
		fb.Forward(frames, src)
		fb.Backward(dst, frames)

		allocs := testing.AllocsPerRun(20, func() {
			fb.Forward(frames, src)
			fb.Backward(dst, frames)
		})
		if allocs != 0 {
			t.Fatalf("hybrid %v: %v allocations per hop, want 0", hybrid, allocs)
		}
	}
}
