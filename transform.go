package afstft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// realTransform adapts a complex FFT plan of length 2*hopSize into the
// real-input forward/backward transform the filterbank consumes: the
// forward direction emits the hopSize+1 unique bins of a real signal, the
// backward direction accepts them and reconstructs the real frame via
// Hermitian expansion.
//
// All scratch is allocated once; forward and inverse are allocation-free.
// The plan calls cannot fail for the fixed, construction-validated buffer
// lengths, so their errors are discarded on the per-hop path.
type realTransform struct {
	size int // 2*hopSize
	plan *algofft.Plan[complex128]
	work []complex128
}

func newRealTransform(size int) (*realTransform, error) {
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("afstft: failed to create FFT plan: %w", err)
	}
	return &realTransform{
		size: size,
		plan: plan,
		work: make([]complex128, size),
	}, nil
}

// forward transforms the real frame src (length size) into its size/2+1
// unique spectral bins. Bins 0 and size/2 are forced purely real, which
// they are analytically for any real input.
func (t *realTransform) forward(dst []complex128, src []float64) {
	for i, v := range src {
		t.work[i] = complex(v, 0)
	}
	_ = t.plan.Forward(t.work, t.work)

	half := t.size / 2
	copy(dst[:half+1], t.work[:half+1])
	dst[0] = complex(real(dst[0]), 0)
	dst[half] = complex(real(dst[half]), 0)
}

// inverse expands the size/2+1 bins in src to the full Hermitian spectrum
// and transforms back, writing the real frame into dst (length size).
func (t *realTransform) inverse(dst []float64, src []complex128) {
	half := t.size / 2
	t.work[0] = complex(real(src[0]), 0)
	t.work[half] = complex(real(src[half]), 0)
	for k := 1; k < half; k++ {
		t.work[k] = src[k]
		t.work[t.size-k] = complex(real(src[k]), -imag(src[k]))
	}
	_ = t.plan.Inverse(t.work, t.work)

	for i := range dst[:t.size] {
		dst[i] = real(t.work[i])
	}
}
