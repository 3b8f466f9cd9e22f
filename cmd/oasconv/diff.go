package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blackcoderx/oasconv/pkg/config"
	"github.com/blackcoderx/oasconv/pkg/converter"
	"github.com/blackcoderx/oasconv/pkg/render"
	"github.com/blackcoderx/oasconv/pkg/storage"
)

func init() {
	rootCmd.AddCommand(diffCmd)
}

var diffCmd = &cobra.Command{
	Use:   "diff <old-spec> <new-spec>",
	Short: "Show how the collection changes between two versions of a document",
	Long: `diff converts both documents with deterministic ids and prints a unified
diff of the resulting collection JSON.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(viper.GetViper())

		texts := make([]string, len(args))
		for i, path := range args {
			coll, err := convertFile(path, cfg, converter.WithIDGenerator(sequentialIDs()))
			if err != nil {
				return err
			}
			data, err := storage.MarshalJSON(coll)
			if err != nil {
				return err
			}
			texts[i] = string(data)
		}

		unified, err := render.UnifiedDiff(filepath.Base(args[0]), filepath.Base(args[1]), texts[0], texts[1])
		if err != nil {
			return fmt.Errorf("failed to diff collections: %w", err)
		}
		if unified == "" {
			fmt.Println(render.Success("No differences"))
			return nil
		}
		fmt.Print(render.ColorDiff(unified))
		return nil
	},
}

// sequentialIDs returns an id generator yielding id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
