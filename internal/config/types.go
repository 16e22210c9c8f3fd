package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .aoc.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// DataDir is the root holding per-language solution folders.
	// Supports ~ expansion.
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`

	// InputsDir is where fetched puzzle inputs are cached, relative to
	// DataDir unless absolute.
	InputsDir string `yaml:"inputs_dir" mapstructure:"inputs_dir"`

	// SessionEnv names the environment variable holding the adventofcode.com
	// session cookie. The cookie itself never lives in the config file.
	SessionEnv string `yaml:"session_env" mapstructure:"session_env"`

	// Leaderboard is how many slowest solutions the runtime report keeps.
	Leaderboard int `yaml:"leaderboard" mapstructure:"leaderboard"`

	// Years restricts runs to specific event years. Empty means every
	// released year.
	Years []int `yaml:"years" mapstructure:"years"`

	// Languages maps a language name to its toolchain commands.
	Languages map[string]Language `yaml:"languages" mapstructure:"languages"`

	Sinks SinksConfig `yaml:"sinks" mapstructure:"sinks"`

	// NoLoad skips reading persisted results on startup.
	NoLoad bool `yaml:"no_load" mapstructure:"no_load"`
	// NoSave skips writing results back on exit.
	NoSave bool `yaml:"no_save" mapstructure:"no_save"`
}

// Language defines how solutions for one language are found and run.
// Command templates may reference ${YEAR}, ${DAY} and ${DAY0} (the day
// zero-padded to two digits).
type Language struct {
	// Extension identifies solution files, with the leading dot.
	Extension string `yaml:"extension" mapstructure:"extension"`

	// Folder marks layouts where each day is a directory rather than a
	// single file (cargo projects).
	Folder bool `yaml:"folder" mapstructure:"folder"`

	// Compile is run once per day before the solution, skipped when the
	// sources have not changed. Empty for interpreted languages.
	Compile string `yaml:"compile" mapstructure:"compile"`

	// Run executes the solution for one day.
	Run string `yaml:"run" mapstructure:"run"`
}

// SinksConfig holds the per-sink reporting settings.
type SinksConfig struct {
	Answers  SinkConfig `yaml:"answers" mapstructure:"answers"`
	Runtimes SinkConfig `yaml:"runtimes" mapstructure:"runtimes"`
}

// SinkConfig configures one reporting sink.
type SinkConfig struct {
	// Style is the table border style name (DEFAULT, SINGLE_BORDER,
	// DOUBLE_BORDER, MARKDOWN).
	Style string `yaml:"style" mapstructure:"style"`

	// File is the YAML data file, relative to DataDir unless absolute.
	File string `yaml:"file" mapstructure:"file"`

	// Disabled turns the sink off entirely.
	Disabled bool `yaml:"disabled" mapstructure:"disabled"`
}

// DefaultConfig returns a config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Version:     CurrentConfigVersion,
		DataDir:     ".",
		InputsDir:   "Inputs",
		SessionEnv:  "AOC_SESSION",
		Leaderboard: 10,
		Languages:   DefaultLanguages(),
		Sinks: SinksConfig{
			Answers: SinkConfig{
				Style: "DOUBLE_BORDER",
				File:  "answers.yaml",
			},
			Runtimes: SinkConfig{
				Style: "DOUBLE_BORDER",
				File:  "runtimes.yaml",
			},
		},
	}
}

// DefaultLanguages returns the built-in language toolchains.
func DefaultLanguages() map[string]Language {
	return map[string]Language{
		"python": {
			Extension: ".py",
			Run:       "python3 ${DAY}.py",
		},
		"rust": {
			Extension: ".rs",
			Folder:    true,
			Compile:   "cargo build --release",
			Run:       "cargo run --release --quiet",
		},
		"c": {
			Extension: ".c",
			Compile:   "gcc -O2 -o ${DAY}.out ${DAY}.c -lm",
			Run:       "./${DAY}.out",
		},
	}
}
