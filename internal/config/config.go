// Package config resolves settings from defaults, an optional config.yaml,
// PASSGEN_* environment variables and command-line flags, in rising priority.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/idilsaglam/passgen/internal/generator"
)

// EnvPrefix namespaces the environment variables, e.g. PASSGEN_RANDOM.
const EnvPrefix = "PASSGEN"

// ErrUnknownRandom is returned by Load when random names no known source.
var ErrUnknownRandom = errors.New("unknown random source")

// Keys, also used as flag names (with "_" spelled "-").
const (
	KeyConfig    = "config"
	KeyDarkMode  = "dark_mode"
	KeyRandom    = "random"
	KeyLogFile   = "log_file"
	KeyAltScreen = "alt_screen"
	KeyPrint     = "print"
)

// Config is the resolved settings for one run.
type Config struct {
	DarkMode  bool   `mapstructure:"dark_mode"`
	Random    string `mapstructure:"random"`
	LogFile   string `mapstructure:"log_file"`
	AltScreen bool   `mapstructure:"alt_screen"`
	Print     bool   `mapstructure:"print"` // echo the last password after quitting
}

// SetDefaults registers the default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDarkMode, false)
	v.SetDefault(KeyRandom, generator.SourceMath)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyAltScreen, true)
	v.SetDefault(KeyPrint, false)
}

// New returns a viper instance wired for env lookups and defaults.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (explicit path or the standard dirs) and
// unmarshals everything v knows. A missing default config file is fine; a
// missing explicit one is not.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, dir := range searchDirs() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	cfg.Random = strings.ToLower(strings.TrimSpace(cfg.Random))
	if cfg.Random != generator.SourceMath && cfg.Random != generator.SourceCrypto {
		return Config{}, errors.Wrapf(ErrUnknownRandom, "random %q", cfg.Random)
	}
	return cfg, nil
}

func searchDirs() []string {
	var dirs []string
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		dirs = append(dirs, filepath.Join(x, "passgen"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "passgen"))
	}
	return dirs
}
