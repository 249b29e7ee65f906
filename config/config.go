package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "DESKCLIENT"

// The viper instance behind the last LoadConfig, kept for Watch.
var (
	vp *viper.Viper
	mu sync.Mutex
)

// LoadConfig reads .env, the config file, the environment and fs. The
// result becomes the configuration Watch reloads.
func LoadConfig(configFile string, fs *pflag.FlagSet) (*Config, error) {
	// A missing .env is fine, the variables may come from the environment.
	_ = godotenv.Load()

	v := viper.New()
	configuration, err := Load(v, configFile, fs)
	if err != nil {
		return nil, err
	}

	mu.Lock()
	vp = v
	mu.Unlock()

	return configuration, nil
}

// Load populates v from defaults, the optional config file, DESKCLIENT_*
// environment variables and the flags in fs, then decodes and validates it.
func Load(v *viper.Viper, configFile string, fs *pflag.FlagSet) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, fs); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
	} else {
		v.SetConfigName("deskclient")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Read in the config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend.url", "http://127.0.0.1:5000")
	v.SetDefault("backend.timeout", "0s")
	v.SetDefault("backend.headers", map[string]string{})
	v.SetDefault("recording.state_file", ".deskclient-recording.json")
	v.SetDefault("recording.rollback_on_failure", false)
	v.SetDefault("log_level", "info")
}

func decode(v *viper.Viper) (*Config, error) {
	// Unmarshal the config into the Config struct
	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validation
	if configuration.Backend.URL == "" {
		return nil, errors.New("backend.url is required")
	}
	u, err := url.Parse(configuration.Backend.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid backend.url %q: scheme must be http or https", configuration.Backend.URL)
	}
	if configuration.Backend.Timeout < 0 {
		return nil, errors.New("backend.timeout must not be negative")
	}
	configuration.Backend.URL = strings.TrimRight(configuration.Backend.URL, "/")

	return &configuration, nil
}

// Watch re-decodes the configuration whenever the config file changes and
// hands the result to onChange. Invalid edits are reported to onError and
// leave the current configuration in place.
func Watch(onChange func(*Config), onError func(error)) {
	mu.Lock()
	vp := vp
	mu.Unlock()
	if vp == nil || vp.ConfigFileUsed() == "" {
		return
	}
	vp.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		next, err := decode(vp)
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reloading %s: %w", e.Name, err))
			}
			return
		}
		onChange(next)
	})
	vp.WatchConfig()
}
