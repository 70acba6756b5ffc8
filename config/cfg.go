package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"slidec/style"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	// ThemeConfig overrides pieces of the fallback palette. Empty values
	// keep the stock defaults.
	ThemeConfig struct {
		FontFamily string `yaml:"font_family"`
		White      string `yaml:"white" validate:"omitempty,hexcolor"`
		Text       string `yaml:"text" validate:"omitempty,hexcolor"`
		Muted      string `yaml:"muted" validate:"omitempty,hexcolor"`
		Border     string `yaml:"border" validate:"omitempty,hexcolor"`
		Accent     string `yaml:"accent" validate:"omitempty,hexcolor"`
		Bullet     string `yaml:"bullet" validate:"omitempty,hexcolor"`
	}

	DocumentConfig struct {
		FixZip bool `yaml:"fix_zip"`
		// StylesheetPath points at an extra stylesheet applied below the
		// document's own style blocks.
		StylesheetPath string      `yaml:"stylesheet_path" sanitize:"assure_file_access"`
		Theme          ThemeConfig `yaml:"theme"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// ResolveTheme applies the configured overrides on top of the stock palette.
func (conf *DocumentConfig) ResolveTheme() style.Theme {
	theme := style.DefaultTheme()
	if conf.Theme.FontFamily != "" {
		theme.FontFamily = conf.Theme.FontFamily
	}
	override := func(dst *style.Color, v string) {
		if c, ok := style.ParseColor(v); ok {
			*dst = c
		}
	}
	override(&theme.White, conf.Theme.White)
	override(&theme.Text, conf.Theme.Text)
	override(&theme.Muted, conf.Theme.Muted)
	override(&theme.Border, conf.Theme.Border)
	override(&theme.Accent, conf.Theme.Accent)
	override(&theme.Bullet, conf.Theme.Bullet)
	return theme
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
