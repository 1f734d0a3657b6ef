// Package afstft implements a real-time analysis/synthesis time-frequency
// filterbank for spatial-audio processing.
//
// The filterbank converts hop-sized blocks of per-channel time-domain
// samples into complex spectral frames and back. The analysis side folds a
// ten-hop windowed FIR prototype into a transform of only 2*hopSize points
// (time-domain aliasing fold); the synthesis side reverses the process via
// weighted overlap-add. Spectral frames can be modified freely between the
// two directions, which is what spatial algorithms (rotation, decoding,
// beamforming, HRTF convolution) do.
//
// Two independent design options are fixed at construction:
//
//   - [WithLowDelay] swaps in an asymmetric analysis/synthesis prototype
//     pair, reducing the end-to-end latency from 9 to 4 hops at the cost
//     of passband selectivity.
//   - [WithHybrid] subdivides the four lowest frequency bins into eight
//     half-width sub-bands for better low-frequency resolution, adding a
//     fixed 3-hop group delay.
//
// Basic usage:
//
//	fb, err := afstft.New(128, 2, 2)
//	if err != nil {
//	    // unsupported hop size
//	}
//	spec := make([][]complex128, 2)
//	for ch := range spec {
//	    spec[ch] = make([]complex128, fb.BandCount())
//	}
//	// per hop, with in/out being [2][128]float64 blocks:
//	fb.Forward(spec, in)
//	// ... operate on spec ...
//	fb.Backward(out, spec)
//
// # Real-time contract
//
// Forward and Backward allocate nothing, never block, and have a fixed
// per-call cost. Every buffer they touch is sized at construction or at
// the last ChangeChannelCounts call.
//
// A Filterbank is not safe for concurrent use. Forward calls must occur
// exactly once per hop, in hop order, and likewise Backward; the two
// directions keep independent cursors and may be interleaved freely, but
// neither may run concurrently with ChangeChannelCounts or ClearBuffers on
// the same instance. Callers coordinating reconfiguration against live
// processing should build a fresh instance off the real-time thread and
// swap it in, rather than mutating a live instance.
//
// Calling out of hop order, or skipping a hop, desynchronizes the
// internal fold permanently and is not detected.
package afstft
