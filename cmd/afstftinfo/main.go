// Command afstftinfo prints latency and band-layout properties of
// filterbank configurations.
//
// Usage:
//
//	afstftinfo [flags]
//
// Without flags it prints a table covering every supported hop size in
// all four mode combinations.
//
// Examples:
//
//	afstftinfo
//	afstftinfo -hop 128
//	afstftinfo -hop 64 -rate 44100
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	afstft "github.com/cwbudde/algo-afstft"
)

var hopSizes = []int{32, 64, 128, 256, 512, 1024}

type modeEntry struct {
	name string
	opts []afstft.Option
}

var modes = []modeEntry{
	{"standard", nil},
	{"standard+hybrid", []afstft.Option{afstft.WithHybrid()}},
	{"low-delay", []afstft.Option{afstft.WithLowDelay()}},
	{"low-delay+hybrid", []afstft.Option{afstft.WithLowDelay(), afstft.WithHybrid()}},
}

func main() {
	hop := flag.Int("hop", 0, "restrict output to one hop size (default: all)")
	rate := flag.Float64("rate", 48000, "sample rate in Hz for the latency column")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: afstftinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints latency and band-layout properties of filterbank configurations.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  afstftinfo\n")
		fmt.Fprintf(os.Stderr, "  afstftinfo -hop 128\n")
		fmt.Fprintf(os.Stderr, "  afstftinfo -hop 64 -rate 44100\n")
	}
	flag.Parse()

	sizes := hopSizes
	if *hop != 0 {
		sizes = []int{*hop}
	}

	if err := printTable(sizes, *rate); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printTable(sizes []int, rate float64) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Hop\tMode\tBands\tDelay [smp]\tDelay [ms]\tRing [smp]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "---\t----\t-----\t-----------\t----------\t----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, size := range sizes {
		for _, mode := range modes {
			fb, err := afstft.New(size, 0, 0, mode.opts...)
			if err != nil {
				return err
			}
			delay := fb.ProcessingDelay()
			if _, err := fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%.2f\t%d\n",
				size,
				mode.name,
				fb.BandCount(),
				delay,
				float64(delay)/rate*1000,
				10*size,
			); err != nil {
				return fmt.Errorf("failed to write output row: %w", err)
			}
		}
	}
	return tw.Flush()
}
