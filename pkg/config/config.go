// Package config provides the runtime settings for cheatsheet.
// Settings come only from command line flags bound into viper; there is no
// configuration file and no environment lookup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration settings.
type Config struct {
	Dir         string `mapstructure:"dir"`         // Search root, defaults to the executable's directory
	Debug       bool   `mapstructure:"debug"`       // Enable debug-level logging
	Print       bool   `mapstructure:"print"`       // Print to the terminal instead of opening
	Interactive bool   `mapstructure:"interactive"` // Pick among ambiguous matches
	List        bool   `mapstructure:"list"`        // List candidates and exit
	Width       int    `mapstructure:"width"`       // Word wrap for terminal rendering
}

// executable is replaced in tests.
var executable = os.Executable

// Load reads the bound settings from v and fills in the search root when no
// directory was given.
func Load(v *viper.Viper) (Config, error) {
	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if conf.Dir == "" {
		dir, err := ExecutableDir()
		if err != nil {
			return Config{}, err
		}
		conf.Dir = dir
	}

	return conf, nil
}

// ExecutableDir returns the directory containing the running executable.
func ExecutableDir() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}
