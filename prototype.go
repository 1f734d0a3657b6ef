package afstft

// totalHops is the number of hop-sized segments spanned by the prototype
// filters. Ring buffers and window vectors all cover totalHops*hopSize
// samples.
const totalHops = 10

// baseHopSize is the hop resolution the coefficient tables are stored at.
// Smaller hop sizes decimate the tables by stride baseHopSize/hopSize.
const baseHopSize = 1024

func validHopSize(hopSize int) bool {
	switch hopSize {
	case 32, 64, 128, 256, 512, 1024:
		return true
	}
	return false
}

// prototypeWindows derives the analysis and synthesis window vectors of
// length totalHops*hopSize for the given mode.
//
// In standard mode both directions share the same time-reversed copy of
// the standard table. In low-delay mode the pair is mirror-image
// complementary: analysis gets the reversed low-delay table and synthesis
// the un-reversed one. The asymmetry shifts the cascaded group delay
// off-center, which is where the latency reduction comes from.
func prototypeWindows(hopSize int, lowDelay bool) (analysis, synthesis []float64) {
	hLen := totalHops * hopSize
	stride := baseHopSize / hopSize

	table := &protoFilter1024
	if lowDelay {
		table = &protoFilter1024LD
	}

	fwd := make([]float64, hLen)
	rev := make([]float64, hLen)
	for k := 0; k < hLen; k++ {
		v := table[k*stride]
		fwd[k] = v
		rev[hLen-1-k] = v
	}

	if lowDelay {
		return rev, fwd
	}
	return rev, rev
}
