package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hdrstats/hdrhistogram"
	"github.com/hdrstats/hdrhistogram/internal/textformat"
)

func newShowCmd() *cobra.Command {
	var (
		compressed           bool
		csv                  bool
		ticksPerHalfDistance int32
		scale                float64
	)

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "print a recorded histogram file's percentile distribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			var h *hdrhistogram.Histogram
			if compressed {
				h, err = hdrhistogram.DecodeCompressed(f, 1)
			} else {
				h, err = hdrhistogram.Decode(f, 1)
			}
			if err != nil {
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}

			if csv {
				return textformat.WritePercentileCSV(os.Stdout, h, ticksPerHalfDistance, scale)
			}
			return textformat.WritePercentileDistribution(os.Stdout, h, ticksPerHalfDistance, scale)
		},
	}

	cmd.Flags().BoolVar(&compressed, "compressed", false, "the file is in the deflate-compressed wire format")
	cmd.Flags().BoolVar(&csv, "csv", false, "emit CSV instead of the text report")
	cmd.Flags().Int32Var(&ticksPerHalfDistance, "ticks-per-half-distance", 5, "percentile iterator resolution")
	cmd.Flags().Float64Var(&scale, "scale", 1, "divide every reported value by this factor")

	return cmd
}
