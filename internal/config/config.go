package config

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrNameLengthTooShort = errors.New("max name length must exceed the ellipsis length")
	ErrUnknownRender      = errors.New("unknown render mode")
)

const (
	RenderText = "text"
	RenderJson = "json"
)

type LogConfig struct {
	Level  string `yaml:"level"`
	Output string `yaml:"output"`
}

type Config struct {
	MaxNameLength int       `yaml:"max_name_length"`
	NameEllipsis  string    `yaml:"name_ellipsis"`
	Seed          uint64    `yaml:"seed"`
	Render        string    `yaml:"render"`
	ClearScreen   bool      `yaml:"clear_screen"`
	Log           LogConfig `yaml:"log"`
}

func Default() Config {
	return Config{
		MaxNameLength: 24,
		NameEllipsis:  "...",
		Render:        RenderText,
		ClearScreen:   true,
		Log: LogConfig{
			Level:  "error",
			Output: "stderr",
		},
	}
}

// New reads the YAML file at cfgPath on top of Default.
func New(cfgPath string) (Config, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return Config{}, errors.WithMessage(err, "open config")
	}
	defer func() {
		_ = file.Close()
	}()
	cfg := Default()
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.WithMessage(err, "decode config")
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MaxNameLength <= utf8.RuneCountInString(c.NameEllipsis) {
		return errors.WithMessagef(ErrNameLengthTooShort, "max_name_length %d, name_ellipsis %q",
			c.MaxNameLength, c.NameEllipsis)
	}
	switch c.Render {
	case RenderText, RenderJson:
		return nil
	default:
		return errors.WithMessagef(ErrUnknownRender, "render %q", c.Render)
	}
}
