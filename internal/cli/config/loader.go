// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is stripped from environment variables: PARTICULA_DATA_DIR → data_dir.
const EnvPrefix = "PARTICULA_"

// defaultFiles are probed in the working directory when --config is empty.
var defaultFiles = []string{"particula.yaml", "particula.yml"}

// Load merges, lowest precedence first: built-in defaults, the YAML config
// file, PARTICULA_* environment variables, and flags that were explicitly
// set on the command line. It returns the validated result and the config
// file actually read ("" when none).
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]any{
		"output":    DefaultOutput,
		"log_json":  false,
		"log_level": DefaultLogLevel,
		"data_dir":  "",
		"workers":   DefaultWorkers,
	}, "."), nil); err != nil {
		return nil, "", errors.Wrap(err, "load defaults")
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, "", errors.Wrapf(err, "read config file %s", used)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, "", errors.Wrap(err, "load environment")
	}

	// 4. Flags, only when set explicitly so that flag defaults never mask
	// the file or the environment.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}

			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", errors.Wrap(err, "load flags")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, used, nil
}

// findConfigFile returns the explicit path, or the first default file that
// exists in the working directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range defaultFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}
