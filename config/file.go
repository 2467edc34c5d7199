package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagConfigFile = "config"
	flagEnvFile    = "env-file"
)

// ConfigFile is the Binder for the files the configuration
// can be read from: a config file in any format supported by
// viper and any number of dotenv files
type ConfigFile struct {
	// Path to the config file. Empty if there is none
	Path string

	// EnvFiles are the dotenv files loaded into the environment.
	// Variables already set in the environment are not overridden
	EnvFiles []string
}

// Bind implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(flagConfigFile, "", "path to a configuration file")
	cmd.PersistentFlags().StringSlice(flagEnvFile, nil, "dotenv files to load into the environment")
	return nil
}

// Configure implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString(flagConfigFile)
	f.EnvFiles = v.GetStringSlice(flagEnvFile)

	for _, path := range f.EnvFiles {
		if _, err := os.Stat(path); err != nil {
			return errors.Wrapf(err, "failed to find env file %s", path)
		}
	}

	if len(f.EnvFiles) > 0 {
		if err := godotenv.Load(f.EnvFiles...); err != nil {
			return errors.Wrap(err, "failed to load env files")
		}
	}

	if f.Path == "" {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", f.Path)
	}

	return nil
}
