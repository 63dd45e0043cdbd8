package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Marshal for formats other than toml,
// yaml and json.
var ErrUnknownFormat = errors.New("unknown format")

// Formats lists the formats Marshal accepts.
var Formats = []string{"toml", "yaml", "json"}

// Marshal encodes the effective configuration in format.
func Marshal(cfg *UserConfig, format string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "toml":
		return toml.Marshal(cfg)
	case "yaml", "yml":
		return yaml.Marshal(cfg)
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%q: %w (want one of %s)", format, ErrUnknownFormat, strings.Join(Formats, ", "))
	}
}
