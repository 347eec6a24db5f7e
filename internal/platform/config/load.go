package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding the YAML files. Defaults to
// "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load reads configuration in four layers, later layers winning:
//
//  1. Built-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. Environment variables with the APP_ prefix
//
// Environment keys are matched against the keys already loaded, so an
// underscore inside a field name is not mistaken for nesting:
//
//	APP_SERVER_READ_TIMEOUT   -> server.read_timeout
//	APP_DATABASE_AUTO_MIGRATE -> database.auto_migrate
//	APP_AUTH_JWT_SECRET       -> auth.jwt_secret
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	layers := []struct {
		name     string
		provider koanf.Provider
		parser   koanf.Parser
	}{
		{name: "defaults", provider: confmap.Provider(defaults(), ".")},
		{name: "base config", provider: file.Provider(filepath.Join(o.configDir, "base.yaml")), parser: yaml.Parser()},
		{name: "profile " + profile, provider: file.Provider(filepath.Join(o.configDir, profile+".yaml")), parser: yaml.Parser()},
	}
	for _, l := range layers {
		if err := k.Load(l.provider, l.parser); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	// Env keys are resolved against what the files defined, so the lookup
	// is built only now.
	if err := k.Load(envProvider(k.Keys()), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// validateProfile rejects empty names and anything that could leave the
// config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a plain file name", profile)
	}
	return nil
}

// envProvider reads APP_* variables. A variable naming a known key, with
// dots written as underscores, sets that key; any other variable is split
// on every underscore.
func envProvider(known []string) koanf.Provider {
	lookup := make(map[string]string, len(known))
	for _, key := range known {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if k, ok := lookup[key]; ok {
				return k, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	})
}

// Redacted returns a copy of c with secrets replaced, for printing.
func (c Config) Redacted() Config {
	const mask = "********"
	if c.Auth.JWTSecret != "" {
		c.Auth.JWTSecret = mask
	}
	if c.Events.Password != "" {
		c.Events.Password = mask
	}
	return c
}
