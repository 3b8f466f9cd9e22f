// Package config manages the .oasconv folder and the settings read from it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/viper"
)

// FolderName is the per-project configuration directory.
const FolderName = ".oasconv"

// FileName is the config file inside FolderName.
const FileName = "config.json"

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatDir  = "dir"
)

// Config keys, shared by the config file, OASCONV_* env vars and flags.
const (
	KeyGroupBy  = "group_by"
	KeyFormat   = "format"
	KeyValidate = "validate"
	KeyLogLevel = "log_level"
)

// Config represents the user's oasconv configuration
type Config struct {
	GroupBy  string `json:"group_by"`
	Format   string `json:"format"`
	Validate bool   `json:"validate"`
	LogLevel string `json:"log_level"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		GroupBy:  "tags",
		Format:   FormatJSON,
		Validate: true,
		LogLevel: "info",
	}
}

// SetDefaults registers the defaults with viper.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyGroupBy, d.GroupBy)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyValidate, d.Validate)
	v.SetDefault(KeyLogLevel, d.LogLevel)
}

// Load reads the effective configuration from viper.
func Load(v *viper.Viper) Config {
	return Config{
		GroupBy:  v.GetString(KeyGroupBy),
		Format:   strings.ToLower(v.GetString(KeyFormat)),
		Validate: v.GetBool(KeyValidate),
		LogLevel: v.GetString(KeyLogLevel),
	}
}

// Path returns the config file path under baseDir.
func Path(baseDir string) string {
	return filepath.Join(baseDir, FolderName, FileName)
}

// InitializeFolder creates the .oasconv directory under baseDir with a
// default config.json if it doesn't exist. It reports whether the folder was
// created.
func InitializeFolder(baseDir string) (bool, error) {
	dir := filepath.Join(baseDir, FolderName)
	if _, err := os.Stat(dir); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check %s folder: %w", FolderName, err)
	}

	if err := os.Mkdir(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create %s folder: %w", FolderName, err)
	}

	if err := Save(baseDir, Default()); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes cfg to the config file under baseDir.
func Save(baseDir string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := Path(baseDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s folder: %w", FolderName, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ValidateFormat checks an output format name.
func ValidateFormat(format string) error {
	switch format {
	case FormatJSON, FormatYAML, FormatDir:
		return nil
	}
	return fmt.Errorf("unknown format %q (use: %s, %s, %s)", format, FormatJSON, FormatYAML, FormatDir)
}
