package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oabooks/exportcore/work"
)

var (
	generateInputPath  string
	generateOutputPath string
)

var generateCmd = &cobra.Command{
	Use:   "generate [specification-id]",
	Short: "Generate one record from a Work read as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		specID := args[0]

		gens := buildGeneratorRegistry(cfg.SenderName, cfg.SenderEmail)
		gen, ok := gens.Get(specID)
		if !ok {
			return fmt.Errorf("unknown specification %q", specID)
		}

		input := os.Stdin
		if generateInputPath != "" {
			f, err := os.Open(generateInputPath)
			if err != nil {
				return err
			}
			defer f.Close()
			input = f
		}

		var raw work.Work
		if err := json.NewDecoder(input).Decode(&raw); err != nil {
			return fmt.Errorf("decoding work JSON: %w", err)
		}
		w, err := work.New(raw)
		if err != nil {
			return err
		}

		body, err := gen.Generate([]*work.Work{w})
		if err != nil {
			return err
		}

		output := os.Stdout
		if generateOutputPath != "" {
			f, err := os.Create(generateOutputPath)
			if err != nil {
				return err
			}
			defer f.Close()
			output = f
		}
		_, err = output.Write(body)
		return err
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateInputPath, "input", "i", "", "path to a Work JSON file (default: stdin)")
	generateCmd.Flags().StringVarP(&generateOutputPath, "output", "o", "", "path to write the generated record (default: stdout)")
}
