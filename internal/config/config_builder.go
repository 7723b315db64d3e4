package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	paths   []string
	configs []*Config

	fileFound bool
	err       error
}

func newConfigBuilder(paths []string) *configBuilder {
	return &configBuilder{
		paths:   paths,
		configs: make([]*Config, 0, 2),
	}
}

// build merges the collected partial configs in priority order (earlier
// sources win, defaults fill whatever remains) and validates the result
// unconditionally, regardless of which source supplied which field.
func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("building configuration: %w", b.err)
	}

	cfg := new(Config)
	for _, partial := range b.configs {
		if err := mergo.Merge(cfg, partial); err != nil {
			return nil, fmt.Errorf("merging configuration sources: %w", err)
		}
	}
	if err := mergo.Merge(cfg, Default()); err != nil {
		return nil, fmt.Errorf("merging configuration defaults: %w", err)
	}

	return cfg, cfg.validate()
}

// withOptionsFile parses the first existing candidate path. Absent candidates
// fall through silently; only a located-but-unreadable document is an error.
func (b *configBuilder) withOptionsFile() *configBuilder {
	for _, path := range b.paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		cfg, err := parseOptions(path)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}

		b.configs = append(b.configs, cfg)
		b.fileFound = true
		return b
	}

	return b
}

// withEnv reads the option fields from environment variables. It is a no-op
// when an options document was already located: the file is the sole source
// of option values once it exists.
func (b *configBuilder) withEnv() *configBuilder {
	if b.fileFound || b.err != nil {
		return b
	}

	cfg, err := parseEnvOptions()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}

// withSupervisorEnv reads the host-injected Supervisor settings on every
// load, independent of which option source won.
func (b *configBuilder) withSupervisorEnv() *configBuilder {
	if b.err != nil {
		return b
	}

	sup, err := parseSupervisorEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, &Config{Supervisor: sup})
	return b
}
