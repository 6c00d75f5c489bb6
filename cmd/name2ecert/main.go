package main

import (
	"fmt"
	"os"

	"github.com/SeakMengs/name2ecert/internal/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Build information
var version = "dev"

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type cli struct {
	verbose bool
	logger  *zap.SugaredLogger
}

func newRootCommand() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "name2ecert",
		Short: "Stamp recipient names onto a PDF certificate template",
		Long: `name2ecert draws each name from a CSV recipient list onto a single-page A4 PDF
template and packages the results as a zip archive of certificates.

Use 'preview' to check font, size and position with sample names before running
'generate' on the full list.`,
		Example: `  name2ecert validate template.pdf
  name2ecert preview --template template.pdf --anchor-y 280 --preview-height 595
  name2ecert generate --template template.pdf --csv names.csv --anchor-y 280 --preview-height 595`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.logger = util.NewCLILogger(c.verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Show debug output")

	rootCmd.AddCommand(newFontsCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newPreviewCommand(c))
	rootCmd.AddCommand(newGenerateCommand(c))

	return rootCmd
}
