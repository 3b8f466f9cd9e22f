package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blackcoderx/oasconv/pkg/config"
	"github.com/blackcoderx/oasconv/pkg/converter"
	"github.com/blackcoderx/oasconv/pkg/render"
)

var useDefaults bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&useDefaults, "defaults", false, "Write the default config without asking")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create " + config.FolderName + "/" + config.FileName + " and choose defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := config.InitializeFolder(".")
		if err != nil {
			return err
		}
		if created {
			fmt.Println(render.Success(fmt.Sprintf("Initialized %s folder", config.FolderName)))
			_ = viper.ReadInConfig()
		}

		cfg := config.Load(viper.GetViper())
		if !useDefaults {
			cfg, err = config.RunWizard(cfg)
			if err != nil {
				return err
			}
		}

		if _, err := converter.ParseGroupBy(cfg.GroupBy); err != nil {
			return err
		}
		if err := config.ValidateFormat(cfg.Format); err != nil {
			return err
		}
		if err := config.Save(".", cfg); err != nil {
			return err
		}

		fmt.Println(render.Success("Saved " + config.Path(".")))
		return nil
	},
}
