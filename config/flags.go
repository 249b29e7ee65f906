package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type CliConfig struct {
	ConfigFile string
	Debug      bool
	Backend    string
}

// RegisterFlags attaches the global flags to fs and returns where their
// values land after parsing. It is meant for the root command's persistent
// flag set.
func RegisterFlags(fs *pflag.FlagSet) *CliConfig {
	args := &CliConfig{}
	fs.StringVar(&args.ConfigFile, "config", "", "Path to the config file")
	fs.BoolVarP(&args.Debug, "debug", "d", false, "Enable debug mode")
	fs.StringVar(&args.Backend, "backend", "", "Backend base URL (overrides backend.url)")
	return args
}

// bindFlags lets explicitly set flags win over file and env values.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	if f := fs.Lookup("backend"); f != nil {
		if err := v.BindPFlag("backend.url", f); err != nil {
			return err
		}
	}
	return nil
}
