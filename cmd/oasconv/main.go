package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blackcoderx/oasconv/pkg/config"
	"github.com/blackcoderx/oasconv/pkg/render"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	cfgFile string
	verbose bool
	logger  = slog.New(log.New(os.Stderr))
	rootCmd = &cobra.Command{
		Use:   "oasconv",
		Short: "Convert OpenAPI v3 documents into API collections",
		Long: `oasconv turns an OpenAPI v3 document (JSON or YAML) into an API collection:
a tree of folders and requests with environments, auth, bodies, parameters
and examples taken from the document.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if it exists (optional, warn if malformed)
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load .env file: %v\n", err)
			}
			logger = newLogger()
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .oasconv/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details, including why a conversion failed")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(config.FolderName)
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	config.SetDefaults(viper.GetViper())
	viper.SetEnvPrefix("OASCONV")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// newLogger builds the slog logger handed to the converter, backed by a
// charmbracelet/log handler on stderr.
func newLogger() *slog.Logger {
	level, err := log.ParseLevel(viper.GetString(config.KeyLogLevel))
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "oasconv",
	})
	return slog.New(handler)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.Error(err.Error()))
		os.Exit(1)
	}
}
