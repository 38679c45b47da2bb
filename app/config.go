package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagEncoding  = "encoding"
	FlagMetrics   = "metrics"
	FlagConfig    = "config"

	LogFormatPlain = "plain"
	LogFormatJSON  = "json"

	EncodingHex    = "hex"
	EncodingBase64 = "base64"
)

// Config carries the ambient settings of the adapter binary. None of it
// changes what the adapter computes.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Encoding  string `mapstructure:"encoding"`
	Metrics   bool   `mapstructure:"metrics"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: LogFormatPlain,
		Encoding:  EncodingHex,
		Metrics:   false,
	}
}

func (c Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return fmt.Errorf("unsupported log format %q", c.LogFormat)
	}
	switch c.Encoding {
	case EncodingHex, EncodingBase64:
	default:
		return fmt.Errorf("unsupported encoding %q", c.Encoding)
	}
	return nil
}

// AddConfigFlags registers the persistent flags read by ReadConfig.
func AddConfigFlags(fs *pflag.FlagSet) {
	def := DefaultConfig()
	fs.String(FlagLogLevel, def.LogLevel, "Log level (trace|debug|info|warn|error)")
	fs.String(FlagLogFormat, def.LogFormat, "Log output format (plain|json)")
	fs.String(FlagEncoding, def.Encoding, "Encoding for printed keys and signatures (hex|base64)")
	fs.Bool(FlagMetrics, def.Metrics, "Collect primitive metrics and print them on exit")
	fs.String(FlagConfig, "", "Optional config file (toml, yaml or json)")
}

// ReadConfig resolves the configuration from flags, WASMCRYPTO_* environment
// variables and an optional config file, in that order of precedence.
func ReadConfig(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	def := DefaultConfig()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("encoding", def.Encoding)
	v.SetDefault("metrics", def.Metrics)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, flag := range map[string]string{
			"log_level":  FlagLogLevel,
			"log_format": FlagLogFormat,
			"encoding":   FlagEncoding,
			"metrics":    FlagMetrics,
		} {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, err
				}
			}
		}
		if f := fs.Lookup(FlagConfig); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", f.Value.String(), err)
			}
		}
	}

	metrics, err := cast.ToBoolE(v.Get("metrics"))
	if err != nil {
		return Config{}, fmt.Errorf("metrics: %w", err)
	}
	cfg := Config{
		LogLevel:  strings.ToLower(cast.ToString(v.Get("log_level"))),
		LogFormat: strings.ToLower(cast.ToString(v.Get("log_format"))),
		Encoding:  strings.ToLower(cast.ToString(v.Get("encoding"))),
		Metrics:   metrics,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
