package afstft

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedHopSize is returned by New for hop sizes outside the
	// supported power-of-two set.
	ErrUnsupportedHopSize = errors.New("unsupported hop size")

	// ErrNegativeChannelCount is returned when a channel count is negative.
	ErrNegativeChannelCount = errors.New("channel count must not be negative")
)

func validateHopSize(hopSize int) error {
	if !validHopSize(hopSize) {
		return fmt.Errorf("%w: %d (supported: 32, 64, 128, 256, 512, 1024)",
			ErrUnsupportedHopSize, hopSize)
	}
	return nil
}

func validateChannelCounts(numInputs, numOutputs int) error {
	if numInputs < 0 || numOutputs < 0 {
		return fmt.Errorf("%w: %d inputs, %d outputs",
			ErrNegativeChannelCount, numInputs, numOutputs)
	}
	return nil
}
