package afstft_test

import (
	"fmt"
	"log"

	afstft "github.com/cwbudde/algo-afstft"
)

func ExampleNew() {
	fb, err := afstft.New(128, 2, 2, afstft.WithHybrid())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("bands:", fb.BandCount())
	fmt.Println("delay:", fb.ProcessingDelay())
	// Output:
	// bands: 133
	// delay: 1536
}

func ExampleWithLowDelay() {
	standard, err := afstft.New(128, 1, 1)
	if err != nil {
		log.Fatal(err)
	}
	lowDelay, err := afstft.New(128, 1, 1, afstft.WithLowDelay())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("standard delay:", standard.ProcessingDelay())
	fmt.Println("low delay:", lowDelay.ProcessingDelay())
	// Output:
	// standard delay: 1152
	// low delay: 512
}

func ExampleFilterbank_Forward() {
	const hop = 128

	fb, err := afstft.New(hop, 1, 1)
	if err != nil {
		log.Fatal(err)
	}

	frames := [][]complex128{make([]complex128, fb.BandCount())}
	in := [][]float64{make([]float64, hop)}
	out := [][]float64{make([]float64, hop)}
	for i := range in[0] {
		in[0][i] = 1
	}

	// A constant input reappears at the output once the processing delay
	// of 9 hops has elapsed.
	for i := 0; i < 12; i++ {
		fb.Forward(frames, in)
		fb.Backward(out, frames)
	}
	fmt.Printf("%.3f\n", out[0][0])
	// Output: 1.000
}
