package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hdrstats/hdrhistogram"
)

func newRecordCmd() *cobra.Command {
	var (
		lowest, highest int64
		sigFigs         int
		output          string
		compress        bool
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "record integer values from stdin (one per line) into a histogram file",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := hdrhistogram.New(lowest, highest, sigFigs)
			if err != nil {
				return fmt.Errorf("constructing histogram: %w", err)
			}

			scanner := bufio.NewScanner(os.Stdin)
			var recorded int
			for scanner.Scan() {
				line := scanner.Text()
				if line == "" {
					continue
				}
				v, err := strconv.ParseInt(line, 10, 64)
				if err != nil {
					logger.WithError(err).WithField("line", line).Warn("skipping unparsable value")
					continue
				}
				if err := h.Record(v); err != nil {
					logger.WithError(err).WithField("value", v).Warn("skipping unrecordable value")
					continue
				}
				recorded++
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			logger.WithField("count", recorded).Debug("recorded values")

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()

			if compress {
				return h.EncodeCompressed(f)
			}
			return h.Encode(f)
		},
	}

	cmd.Flags().Int64Var(&lowest, "lowest", 1, "lowest trackable value")
	cmd.Flags().Int64Var(&highest, "highest", 3600000000, "highest trackable value")
	cmd.Flags().IntVar(&sigFigs, "significant-figures", 3, "significant decimal digits of precision")
	cmd.Flags().StringVarP(&output, "output", "o", "histogram.hdr", "output file path")
	cmd.Flags().BoolVar(&compress, "compress", false, "write the deflate-compressed wire format")

	return cmd
}
