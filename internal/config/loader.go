package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".aoc.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/aoc"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'aoc init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .aoc.yaml in current directory
// 3. .aoc.yaml in parent directories (stops at git root or home)
// 4. ~/.config/aoc/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// Walk up to parent directories, stopping at a git root or home.
	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		if home != "" && parent == home {
			break
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}
	}

	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults if
// not found. Commands like 'aoc init' work without an existing config.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// parseConfig converts viper config to our Config struct with defaults
// merged in.
func parseConfig(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	// Decoding merges into a pre-populated map, which would make it
	// impossible to turn a built-in language off. Drop the defaults
	// first; they come back below when the file has no languages section.
	cfg.Languages = nil

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config file format",
			"Check the YAML syntax in your config file")
	}

	if len(cfg.Languages) == 0 {
		cfg.Languages = DefaultLanguages()
	}

	applyLanguageDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyLanguageDefaults fills omitted fields of known languages from the
// built-in definitions, so a config can list just "rust: {}".
func applyLanguageDefaults(cfg *Config) {
	builtin := DefaultLanguages()
	for name, lang := range cfg.Languages {
		def, ok := builtin[name]
		if !ok {
			continue
		}
		if lang.Extension == "" {
			lang.Extension = def.Extension
		}
		if lang.Run == "" {
			lang.Run = def.Run
		}
		if lang.Compile == "" {
			lang.Compile = def.Compile
		}
		if !lang.Folder {
			lang.Folder = def.Folder
		}
		cfg.Languages[name] = lang
	}
}
