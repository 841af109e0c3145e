// Package config loads huewheel settings from defaults, an optional config
// file, HUEWHEEL_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmylchreest/huewheel/internal/harmony"
	"github.com/jmylchreest/huewheel/internal/output"
)

// EnvPrefix is the prefix for environment overrides, e.g. HUEWHEEL_SPACE.
const EnvPrefix = "HUEWHEEL"

// PreviewMode controls when colour previews are drawn.
type PreviewMode string

const (
	// PreviewAuto draws previews when writing to a terminal.
	PreviewAuto PreviewMode = "auto"
	// PreviewAlways draws previews unconditionally.
	PreviewAlways PreviewMode = "always"
	// PreviewNever disables previews.
	PreviewNever PreviewMode = "never"
)

// Config holds all settings for a palette run.
type Config struct {
	Space      string   `mapstructure:"space"`
	Hue        float64  `mapstructure:"hue"`
	Chroma     float64  `mapstructure:"chroma"`
	Saturation float64  `mapstructure:"saturation"`
	Harmonies  []string `mapstructure:"harmonies"`
	Format     string   `mapstructure:"format"`
	Preview    string   `mapstructure:"preview"`
	Selector   string   `mapstructure:"selector"`
	Prefix     string   `mapstructure:"prefix"`
	Output     string   `mapstructure:"output"`
}

// SetDefaults registers the built-in default for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("space", string(harmony.SpaceOKLCH))
	v.SetDefault("hue", 0.0)
	v.SetDefault("chroma", 0.15)
	v.SetDefault("saturation", 50.0)
	v.SetDefault("harmonies", []string{string(harmony.CategoryPrimary), string(harmony.CategoryComplementary)})
	v.SetDefault("format", string(output.FormatText))
	v.SetDefault("preview", string(PreviewAuto))
	v.SetDefault("selector", output.DefaultOptions().Selector)
	v.SetDefault("prefix", "")
	v.SetDefault("output", "")
}

// New returns a viper instance wired for huewheel: defaults, environment
// variables and, when path is empty, a .huewheel.yaml searched for in the
// working directory and then the home directory.
func New(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".huewheel")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads the config file if one exists. A missing file is not an
// error unless it was named explicitly.
func ReadFile(v *viper.Viper, explicit bool) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !explicit && errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("failed to read config file: %w", err)
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"space":      "space",
	"hue":        "hue",
	"chroma":     "chroma",
	"saturation": "saturation",
	"harmony":    "harmonies",
	"format":     "format",
	"preview":    "preview",
	"selector":   "selector",
	"prefix":     "prefix",
	"output":     "output",
}

// BindFlags binds every flag in flags that corresponds to a config key, so a
// flag set on the command line wins over file and environment values.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if bindErr != nil || !ok {
			return
		}
		if err := v.BindPFlag(key, f); err != nil {
			bindErr = fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate fails fast on any enumerated value outside its closed set.
func (c Config) Validate() error {
	if _, err := harmony.ParseColorSpace(c.Space); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Categories(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := output.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := ParsePreviewMode(c.Preview); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Categories parses the configured harmonies. The name "all" selects every
// category.
func (c Config) Categories() (harmony.CategorySet, error) {
	for _, h := range c.Harmonies {
		for _, token := range strings.Split(h, ",") {
			if strings.EqualFold(strings.TrimSpace(token), "all") {
				return harmony.NewCategorySet(harmony.Categories()...), nil
			}
		}
	}
	return harmony.ParseCategorySet(c.Harmonies)
}

// Input builds the projector input, taking chroma or saturation as the
// intensity depending on the colour space.
func (c Config) Input() (harmony.Input, error) {
	space, err := harmony.ParseColorSpace(c.Space)
	if err != nil {
		return harmony.Input{}, err
	}
	enabled, err := c.Categories()
	if err != nil {
		return harmony.Input{}, err
	}

	intensity := c.Chroma
	if space == harmony.SpaceHSL {
		intensity = c.Saturation
	}
	return harmony.Input{
		BaseHue:   c.Hue,
		Intensity: intensity,
		Space:     space,
		Enabled:   enabled,
	}, nil
}

// OutputOptions returns the renderer options for this configuration.
func (c Config) OutputOptions(preview bool) output.Options {
	opts := output.DefaultOptions()
	opts.Preview = preview
	opts.Selector = c.Selector
	opts.Prefix = c.Prefix
	return opts
}

// ParsePreviewMode parses a preview mode name.
func ParsePreviewMode(s string) (PreviewMode, error) {
	switch m := PreviewMode(strings.ToLower(strings.TrimSpace(s))); m {
	case PreviewAuto, PreviewAlways, PreviewNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", s)
	}
}
