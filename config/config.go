// Package config loads plugin settings from a YAML or TOML file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/heathj/eventoptions/plugin"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFormat   = errors.New("unknown config format")
	ErrUnknownPlatform = errors.New("unknown platform")
)

// Format is the encoding of a config file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", path)
}

// NativeSupport forces probe results. Unset members keep what the probe
// found.
type NativeSupport struct {
	Capture *bool `yaml:"capture,omitempty" toml:"capture,omitempty"`
	Passive *bool `yaml:"passive,omitempty" toml:"passive,omitempty"`
	Once    *bool `yaml:"once,omitempty" toml:"once,omitempty"`
}

type Config struct {
	Platform      plugin.Platform `yaml:"platform" toml:"platform"`
	LogLevel      string          `yaml:"log_level" toml:"log_level"`
	NativeSupport NativeSupport   `yaml:"native_support" toml:"native_support"`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Platform: plugin.PlatformBrowser,
		LogLevel: logrus.InfoLevel.String(),
	}
}

// Load reads the file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}

	c, err := Parse(format, data)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	return c, nil
}

// Parse decodes data over the defaults and validates the result.
func Parse(format Format, data []byte) (*Config, error) {
	c := Default()

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, c)
	case FormatTOML:
		err = toml.Unmarshal(data, c)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	if err != nil {
		return nil, errors.Wrap(err, "decoding")
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	switch c.Platform {
	case plugin.PlatformBrowser, plugin.PlatformServer:
	default:
		return errors.Wrapf(ErrUnknownPlatform, "%q", c.Platform)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level is the parsed log level.
func (c *Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return lvl, nil
}

// PluginOptions turns the config into plugin options.
func (c *Config) PluginOptions() []plugin.Option {
	opts := []plugin.Option{plugin.WithPlatform(c.Platform)}

	overrides := []struct {
		option plugin.NativeOption
		value  *bool
	}{
		{plugin.NativeCapture, c.NativeSupport.Capture},
		{plugin.NativePassive, c.NativeSupport.Passive},
		{plugin.NativeOnce, c.NativeSupport.Once},
	}
	for _, o := range overrides {
		if o.value != nil {
			opts = append(opts, plugin.WithNativeSupport(o.option, *o.value))
		}
	}
	return opts
}
