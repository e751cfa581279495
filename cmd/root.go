// Package cmd provides CLI commands for the export core.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oabooks/exportcore/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "exportcore",
	Short: "Generate bibliographic metadata records for open-access book publishers",
	Long: `exportcore generates platform-ready bibliographic metadata records —
ONIX 3.0, ONIX 2.1, BibTeX, KBART, CrossRef DOI deposit XML, and CSV —
from a publisher's catalogue of Works.

Examples:
  exportcore serve
  exportcore generate onix_3.0::jstor --input work.json
  exportcore registry list`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(nil)
		if err != nil {
			return err
		}
		loaded.SetupLogger()
		cfg = loaded
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(registryCmd)
}
