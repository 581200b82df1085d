// Command hdrstat records integer samples into an HDR histogram and
// inspects previously recorded histogram files. It is a thin driver over
// the hdrhistogram package: recording, composition and rendering all
// happen through that package's public API.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logger = logrus.New()

func main() {
	root := &cobra.Command{
		Use:           "hdrstat",
		Short:         "record and inspect HDR histogram distributions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	verbose := root.PersistentFlags().Bool("verbose", false, "enable debug logging")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	root.AddCommand(newRecordCmd(), newShowCmd())

	if err := root.Execute(); err != nil {
		logger.WithError(err).Error("hdrstat failed")
		os.Exit(1)
	}
}
