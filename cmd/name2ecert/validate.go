package main

import (
	"fmt"

	"github.com/SeakMengs/name2ecert/pkg/ecert"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <template.pdf>",
		Short: "Check that a template is a single A4 page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ecert.NewDefaultConfig()
			opts := layoutOptions{template: args[0]}

			tpl, err := opts.loadTemplate(cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %.2f x %.2f pt, text width %.2f pt\n",
				args[0], tpl.Orientation(), tpl.Width(), tpl.Height(),
				ecert.ResolveMaxWidth(tpl.Width(), tpl.Orientation()))
			return nil
		},
	}
}
