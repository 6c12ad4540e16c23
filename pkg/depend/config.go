package depend

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the run-level flags that apply uniformly to every registry.
// It is built once at run start and never mutated afterwards.
type Config struct {
	// AutoMark records results for every test, not only explicitly
	// declared ones, so any test can serve as a dependency.
	AutoMark bool `yaml:"automark_dependency"`

	// AcceptXFail counts an expected-failure skip of the call phase as a
	// passed phase when computing dependency verdicts.
	AcceptXFail bool `yaml:"accept_xfail"`

	// IgnoreUnknown treats dependencies whose outcome was never recorded
	// as satisfied instead of unsatisfied.
	IgnoreUnknown bool `yaml:"ignore_unknown_dependency"`
}

// LoadConfig reads a run configuration from a YAML file.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
