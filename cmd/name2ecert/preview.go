package main

import (
	"fmt"
	"os"

	"github.com/SeakMengs/name2ecert/pkg/ecert"
	"github.com/spf13/cobra"
)

func newPreviewCommand(c *cli) *cobra.Command {
	var (
		opts layoutOptions
		name string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render sample names to check the layout",
		Long: `Render the sample names onto the template and merge them into one PDF,
one page per sample. With --name only that name is rendered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ecert.NewDefaultConfig()

			layout, err := opts.build(cfg)
			if err != nil {
				return err
			}

			gen := ecert.NewGenerator(cfg, c.logger)

			var doc []byte
			if name != "" {
				doc, err = gen.PreviewName(layout, name)
			} else {
				doc, err = gen.Preview(layout)
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, doc, 0644); err != nil {
				return fmt.Errorf("failed to write preview: %w", err)
			}

			c.logger.Infof("Preview written to %s", out)
			return nil
		},
	}

	opts.bindFlags(cmd.Flags())
	cmd.Flags().StringVar(&name, "name", "", "Render only this name")
	cmd.Flags().StringVarP(&out, "out", "o", ecert.PreviewFileName, "Output PDF path")

	return cmd
}
