// Package config loads the tool-level settings: which files a scan cares
// about, the fragment file name and the scaffold artifact name. Settings come
// from defaults, an optional TOML file and EJB2SPRING_* environment
// variables, merged in that order.
package config

import (
	"os"
	"strings"

	ktoml "github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/errors"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// EJB2SPRING_ARTIFACT_FILE.
const EnvPrefix = "EJB2SPRING_"

// Config holds the tool-level settings.
type Config struct {
	// ArtifactFile is the scaffold file name whose presence under a root
	// marks a module as already migrated.
	ArtifactFile string `koanf:"artifact_file" toml:"artifact_file"`

	// FragmentFile is the fixed file name of per-module configuration
	// fragments.
	FragmentFile string `koanf:"fragment_file" toml:"fragment_file"`

	// Extensions lists the source file extensions of interest.
	Extensions []string `koanf:"extensions" toml:"extensions"`

	// SkipDirs lists directory names pruned during the scan.
	SkipDirs []string `koanf:"skip_dirs" toml:"skip_dirs"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ArtifactFile: "SpringMigrationConfig.java",
		FragmentFile: ".ejb2spring",
		Extensions:   []string{".java", ".kt"},
		SkipDirs:     []string{".git", ".idea", ".gradle", "node_modules"},
	}
}

// Load merges defaults, an optional TOML file and environment overrides.
// When path is empty, ejb2spring.toml and .ejb2spring.toml in the working
// directory are tried.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultMap(), "."), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if path == "" {
		for _, name := range []string{".ejb2spring.toml", "ejb2spring.toml"} {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), ktoml.Parser()); err != nil {
			return Config{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return cfg, nil
}

// GenerateDefault renders the default configuration as TOML.
func GenerateDefault() (string, error) {
	out, err := toml.Marshal(Default())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal default config")
	}
	return string(out), nil
}

func defaultMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"artifact_file": d.ArtifactFile,
		"fragment_file": d.FragmentFile,
		"extensions":    d.Extensions,
		"skip_dirs":     d.SkipDirs,
	}
}
