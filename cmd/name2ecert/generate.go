package main

import (
	"fmt"
	"os"

	"github.com/SeakMengs/name2ecert/pkg/ecert"
	"github.com/spf13/cobra"
)

func newGenerateCommand(c *cli) *cobra.Command {
	var (
		opts       layoutOptions
		csvPath    string
		out        string
		skipFailed bool
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a certificate for every recipient and zip them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ecert.NewDefaultConfig()
			cfg.MaxWorkers = workers
			if skipFailed {
				cfg.FailurePolicy = ecert.SkipFailed
			}

			layout, err := opts.build(cfg)
			if err != nil {
				return err
			}

			if csvPath == "" {
				return fmt.Errorf("--csv is required")
			}

			f, err := os.Open(csvPath)
			if err != nil {
				return fmt.Errorf("failed to open recipient list: %w", err)
			}
			defer f.Close()

			recipients, err := ecert.ReadRecipients(f)
			if err != nil {
				return err
			}

			archive, err := ecert.NewGenerator(cfg, c.logger).Generate(layout, recipients)
			if err != nil {
				return err
			}

			outFile, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create archive: %w", err)
			}
			defer outFile.Close()

			if err := archive.WriteZip(outFile); err != nil {
				return err
			}

			for _, failure := range archive.Failures {
				c.logger.Warnf("Skipped %q: %v", failure.Name, failure.Err)
			}
			c.logger.Infof("Wrote %d certificates to %s", len(archive.Entries), out)

			return outFile.Close()
		},
	}

	opts.bindFlags(cmd.Flags())
	cmd.Flags().StringVarP(&csvPath, "csv", "c", "", "Recipient list CSV with a \"name\" header (required)")
	cmd.Flags().StringVarP(&out, "out", "o", ecert.ArchiveFileName, "Output zip path")
	cmd.Flags().BoolVar(&skipFailed, "skip-failed", false, "Leave out names that cannot be rendered instead of failing")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent renders, 0 for twice the CPU count")

	return cmd
}
