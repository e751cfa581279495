package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oabooks/exportcore/registry"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Inspect the formats/platforms/specifications catalogue",
}

var registryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every specification in the catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.LoadEmbedded()
		if err != nil {
			return err
		}
		for _, spec := range reg.ListSpecifications() {
			fmt.Printf("%s\t(format=%s, platforms=%v)\n", spec.ID, spec.FormatID, spec.Platforms)
		}
		return nil
	},
}

func init() {
	registryCmd.AddCommand(registryListCmd)
}
