package afstft

import (
	"testing"

	"github.com/cwbudde/algo-afstft/internal/testutil"
)

func TestRealTransformRoundTrip(t *testing.T) {
	const size = 256
	tf, err := newRealTransform(size)
	if err != nil {
		t.Fatalf("newRealTransform: %v", err)
	}

	src := testutil.DeterministicNoise(7, 1.0, size)
	spec := make([]complex128, size/2+1)
	tf.forward(spec, src)

	dst := make([]float64, size)
	tf.inverse(dst, spec)

	testutil.RequireSliceNearlyEqual(t, dst, src, 1e-12)
}

func TestRealTransformEdgeBinsReal(t *testing.T) {
	const size = 64
	tf, err := newRealTransform(size)
	if err != nil {
		t.Fatalf("newRealTransform: %v", err)
	}

	src := testutil.DeterministicNoise(11, 1.0, size)
	spec := make([]complex128, size/2+1)
	tf.forward(spec, src)

	if imag(spec[0]) != 0 {
		t.Fatalf("bin 0 imaginary part = %v, want exactly 0", imag(spec[0]))
	}
	if imag(spec[size/2]) != 0 {
		t.Fatalf("Nyquist bin imaginary part = %v, want exactly 0", imag(spec[size/2]))
	}
}

func TestRealTransformDC(t *testing.T) {
	const size = 64
	tf, err := newRealTransform(size)
	if err != nil {
		t.Fatalf("newRealTransform: %v", err)
	}

	src := testutil.DC(0.25, size)
	spec := make([]complex128, size/2+1)
	tf.forward(spec, src)

	if diff := real(spec[0]) - 0.25*size; diff > 1e-12 || diff < -1e-12 {
		t.Fatalf("DC bin = %v, want %v", real(spec[0]), 0.25*size)
	}
	for k := 1; k < len(spec); k++ {
		re, im := real(spec[k]), imag(spec[k])
		if re > 1e-10 || re < -1e-10 || im > 1e-10 || im < -1e-10 {
			t.Fatalf("bin %d = %v, want 0 for DC input", k, spec[k])
		}
	}
}
