package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder is a group of configuration options
type Binder interface {
	// Bind declares the options as flags of cmd and binds
	// them to v
	Bind(v *viper.Viper, cmd *cobra.Command) error

	// Configure reads the values of the options from v once
	// the flags have been parsed
	Configure(v *viper.Viper) error
}
