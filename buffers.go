package afstft

func zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

func zeroComplex(buf []complex128) {
	for i := range buf {
		buf[i] = 0
	}
}

// makeBuffers allocates channels zeroed buffers of length n.
func makeBuffers(channels, n int) [][]float64 {
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, n)
	}
	return out
}

func makeFrames(channels, n int) [][]complex128 {
	out := make([][]complex128, channels)
	for ch := range out {
		out[ch] = make([]complex128, n)
	}
	return out
}

// resizeBuffers grows or shrinks a per-channel buffer collection,
// preserving the contents of surviving channels and zero-initializing any
// newly added ones. Shrinking drops the removed channels' storage.
func resizeBuffers(bufs [][]float64, channels, n int) [][]float64 {
	out := make([][]float64, channels)
	copy(out, bufs)
	for ch := len(bufs); ch < channels; ch++ {
		out[ch] = make([]float64, n)
	}
	return out
}

func resizeFrames(frames [][]complex128, channels, n int) [][]complex128 {
	out := make([][]complex128, channels)
	copy(out, frames)
	for ch := len(frames); ch < channels; ch++ {
		out[ch] = make([]complex128, n)
	}
	return out
}
