// Package config loads application settings: the extra carousel and gallery
// styles offered by the carousel plugin and the log level.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-bootstrap3/pkg/choices"
)

// Environment keys read by ReadEnv.
const (
	EnvCarouselStyles = "BOOTSTRAP3_CAROUSEL_STYLES"
	EnvGalleryStyles  = "GALLERY_STYLES"
	EnvLogLevel       = "BOOTSTRAP3_LOG_LEVEL"
)

// DefaultEnvFile is read by ReadEnv when no files are given. A missing
// default file is not an error.
const DefaultEnvFile = ".env"

var validate = validator.New()

// StyleList is a list of style names. It unmarshals from a comma separated
// YAML scalar or a YAML sequence. A nil list means "not configured", which is
// different from an empty one.
type StyleList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StyleList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*s = nil
			return nil
		}
		*s = splitList(value.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return fmt.Errorf("config: styles: %w", err)
		}
		*s = append(StyleList{}, items...)
		return nil
	default:
		return fmt.Errorf("config: styles must be a string or a list (line %d)", value.Line)
	}
}

func splitList(raw string) StyleList {
	out := StyleList{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Config holds the application settings.
type Config struct {
	CarouselStyles StyleList `yaml:"carousel_styles"`
	GalleryStyles  StyleList `yaml:"gallery_styles"`
	LogLevel       string    `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Config {
	return Config{LogLevel: "info"}
}

// Validate checks the settings.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: invalid settings: %w", err)
	}
	return nil
}

// StyleChoices returns the extra carousel styles as choices. Carousel
// styles win; gallery styles are used only when carousel styles are not
// configured at all.
func (c Config) StyleChoices() choices.Set {
	raw := c.CarouselStyles
	if raw == nil {
		raw = c.GalleryStyles
	}
	return choices.Styles(raw)
}

// Parse reads YAML settings on top of Defaults.
func Parse(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads YAML settings from path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// ReadEnv reads the known keys from dotenv files, later files overriding
// earlier ones, and then from the process environment, which wins.
func ReadEnv(files ...string) (map[string]string, error) {
	optional := false
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
		optional = true
	}

	out := make(map[string]string)
	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			if optional && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("config: read env %s: %w", file, err)
		}
		for key, value := range values {
			out[key] = value
		}
	}
	for _, key := range []string{EnvCarouselStyles, EnvGalleryStyles, EnvLogLevel} {
		if value, ok := os.LookupEnv(key); ok {
			out[key] = value
		}
	}
	return out, nil
}

// ApplyEnv overlays environment values on c.
func (c Config) ApplyEnv(env map[string]string) Config {
	if raw, ok := env[EnvCarouselStyles]; ok {
		c.CarouselStyles = splitList(raw)
	}
	if raw, ok := env[EnvGalleryStyles]; ok {
		c.GalleryStyles = splitList(raw)
	}
	if level := strings.TrimSpace(env[EnvLogLevel]); level != "" {
		c.LogLevel = strings.ToLower(level)
	}
	return c
}

// LoadEnv returns Defaults overlaid with ReadEnv(files...).
func LoadEnv(files ...string) (Config, error) {
	env, err := ReadEnv(files...)
	if err != nil {
		return Config{}, err
	}
	cfg := Defaults().ApplyEnv(env)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
