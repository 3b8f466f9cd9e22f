package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blackcoderx/oasconv/pkg/config"
	"github.com/blackcoderx/oasconv/pkg/converter"
	"github.com/blackcoderx/oasconv/pkg/render"
	"github.com/blackcoderx/oasconv/pkg/storage"
)

var (
	outputPath     string
	collectionName string
	showSummary    bool
	copyJSON       bool
	envName        string
)

func init() {
	rootCmd.AddCommand(convertCmd)

	f := convertCmd.Flags()
	f.StringVarP(&outputPath, "output", "o", "", `Output file or directory ("-" for stdout)`)
	f.StringP("group-by", "g", "", "Folder grouping: tags or path")
	f.StringP("format", "f", "", "Output format: json, yaml or dir")
	f.Bool("validate", true, "Validate the collection against its schema")
	f.StringVarP(&collectionName, "collection-name", "n", "", "Override the collection name (default is info.title)")
	f.BoolVarP(&showSummary, "summary", "s", false, "Print an outline of the converted collection")
	f.BoolVar(&copyJSON, "copy", false, "Copy the collection JSON to the clipboard")
	f.StringVarP(&envName, "env", "e", "", "Environment used to resolve URLs in the summary (default is the first)")

	_ = viper.BindPFlag(config.KeyGroupBy, f.Lookup("group-by"))
	_ = viper.BindPFlag(config.KeyFormat, f.Lookup("format"))
	_ = viper.BindPFlag(config.KeyValidate, f.Lookup("validate"))
}

var convertCmd = &cobra.Command{
	Use:   "convert <spec>",
	Short: "Convert an OpenAPI document into a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(viper.GetViper())
		if err := config.ValidateFormat(cfg.Format); err != nil {
			return err
		}

		coll, err := convertFile(args[0], cfg)
		if err != nil {
			return err
		}

		if err := writeCollection(coll, cfg.Format); err != nil {
			return err
		}

		if copyJSON {
			data, err := storage.MarshalJSON(coll)
			if err != nil {
				return err
			}
			if err := clipboard.WriteAll(string(data)); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Fprintln(os.Stderr, render.Success("Copied collection JSON to clipboard"))
		}

		if showSummary {
			return printSummary(coll)
		}
		return nil
	},
}

// convertFile reads and converts one document with the effective config.
func convertFile(path string, cfg config.Config, opts ...converter.Option) (*storage.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	groupBy, err := converter.ParseGroupBy(cfg.GroupBy)
	if err != nil {
		return nil, err
	}

	opts = append([]converter.Option{
		converter.WithGroupBy(groupBy),
		converter.WithLogger(logger),
		converter.WithCollectionName(collectionName),
		converter.WithValidation(cfg.Validate),
	}, opts...)

	coll, err := converter.Convert(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse the file %s: %w. Ensure it is valid JSON or YAML", filepath.Base(path), err)
	}
	return coll, nil
}

func writeCollection(coll *storage.Collection, format string) error {
	if outputPath == "-" {
		data, err := storage.MarshalJSON(coll)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	out := outputPath
	if out == "" {
		out = storage.SafeFileName(coll.Name)
		switch format {
		case config.FormatJSON:
			out += ".json"
		case config.FormatYAML:
			out += ".yaml"
		}
	}

	var err error
	switch format {
	case config.FormatYAML:
		err = storage.WriteYAML(coll, out)
	case config.FormatDir:
		err = storage.SaveCollection(coll, out)
	default:
		err = storage.WriteJSON(coll, out)
	}
	if err != nil {
		return err
	}

	folders, requests := render.Count(coll.Items)
	fmt.Fprintln(os.Stderr, render.Success(fmt.Sprintf("Converted %q: %d requests, %d folders, %d environments -> %s",
		coll.Name, requests, folders, len(coll.Environments), out)))
	return nil
}

func printSummary(coll *storage.Collection) error {
	var env *storage.Environment
	if len(coll.Environments) > 0 {
		found, err := storage.FindEnvironment(coll.Environments, envName)
		if err != nil {
			return err
		}
		env = found
	}

	md := render.SummaryMarkdown(coll, env)
	out, err := render.Markdown(md)
	if err != nil {
		fmt.Println(md) // Fallback to raw markdown
		return nil
	}
	fmt.Print(out)
	return nil
}
