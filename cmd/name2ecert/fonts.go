package main

import (
	"encoding/json"
	"fmt"

	"github.com/SeakMengs/name2ecert/pkg/ecert"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newFontsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List the fonts names can be set in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if asJSON {
				infos := lo.Map(ecert.Fonts(), func(f ecert.FontID, _ int) ecert.FontInfo { return f.Info() })
				data, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal JSON: %w", err)
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			for _, font := range ecert.Fonts() {
				marker := ""
				if font == ecert.DefaultFont {
					marker = " (default)"
				}
				fmt.Fprintf(out, "%s%s\n", font, marker)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print font metrics as JSON")

	return cmd
}
