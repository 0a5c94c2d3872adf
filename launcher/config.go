// Package launcher polls a game launcher's server_status endpoint and maps
// the response onto an online/offline/unknown report. It speaks the
// launcher's own dialect: a fixed header set, a bounded response read, and a
// gzip payload located by magic-number search before inflation.
package launcher

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"go-simpler.org/env"
	"gopkg.in/yaml.v3"
)

// Duration decodes "10s"-style values from both YAML and the environment.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config controls the status client. Values start from DefaultConfig, an
// optional YAML file overlays them, and environment variables win last.
type Config struct {
	Host    string   `yaml:"host" env:"STOWATCH_HOST"`
	Path    string   `yaml:"path" env:"STOWATCH_PATH"`
	Port    int      `yaml:"port" env:"STOWATCH_PORT"`
	Timeout Duration `yaml:"timeout" env:"STOWATCH_TIMEOUT"`
	// MaxResponseBytes caps the body read. Generous for a status document,
	// but limited so the other side cannot stream unbounded data.
	MaxResponseBytes int64 `yaml:"max_response_bytes" env:"STOWATCH_MAX_RESPONSE_BYTES"`
}

// DefaultConfig points at the production launcher endpoint.
func DefaultConfig() Config {
	return Config{
		Host:             "startreklauncher.crypticstudios.com",
		Path:             "/server_status/",
		Port:             80,
		Timeout:          Duration(10 * time.Second),
		MaxResponseBytes: 16384,
	}
}

// LoadConfig builds a Config from defaults, an optional YAML file, and the
// environment, in that order of precedence.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, errors.Wrap(err, "parse config")
		}
	}
	if err := env.Load(&cfg, nil); err != nil {
		return Config{}, errors.Wrap(err, "load env config")
	}
	return cfg, nil
}
