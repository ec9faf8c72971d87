package config

import (
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Theme maps each drawn element to a hex color
type Theme struct {
	LeftPaddle  string `yaml:"left_paddle"`
	RightPaddle string `yaml:"right_paddle"`
	Ball        string `yaml:"ball"`
	Net         string `yaml:"net"`
}

func DefaultTheme() Theme {
	return Theme{
		LeftPaddle:  "#1abc9c",
		RightPaddle: "#e74c3c",
		Ball:        "#ffffff",
		Net:         "#bbbbbb",
	}
}

// LoadTheme reads a YAML theme file on top of the defaults
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, errors.Wrapf(err, "reading theme %s", path)
	}
	return ParseTheme(data)
}

// ParseTheme decodes YAML theme data; keys left out keep their defaults
func ParseTheme(data []byte) (Theme, error) {
	t := DefaultTheme()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, errors.Wrap(err, "parsing theme")
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Validate checks that every color is a valid hex triplet
func (t Theme) Validate() error {
	colors := []struct {
		key, value string
	}{
		{"left_paddle", t.LeftPaddle},
		{"right_paddle", t.RightPaddle},
		{"ball", t.Ball},
		{"net", t.Net},
	}
	for _, c := range colors {
		if _, err := colorful.Hex(c.value); err != nil {
			return errors.Wrapf(err, "theme %s: bad color %q", c.key, c.value)
		}
	}
	return nil
}
