// Package config resolves the roundpair command settings from, in increasing
// priority, built-in defaults, a TOML config file, ROUNDPAIR_* environment
// variables and command-line flags.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/roundpair/core"
	"github.com/katalvlaran/roundpair/internal/logger"
)

const (
	configName = "roundpair"
	configType = "toml"
	configDir  = "roundpair"
	envPrefix  = "ROUNDPAIR"

	// FixedSeed is the seed used when the fixed-result switch is on.
	FixedSeed int64 = 42

	// DefaultRounds is the number of rounds generated when none is given.
	DefaultRounds = 5
)

// Keys understood in config files and, upper-cased with a ROUNDPAIR_ prefix,
// in the environment.
const (
	KeyPeople    = "people"
	KeyNamesFile = "names_file"
	KeyCount     = "count"
	KeyRounds    = "rounds"
	KeySeed      = "seed"
	KeyFixed     = "fixed"
	KeyFormat    = "format"
	KeyOutput    = "out"
	KeyRound     = "round"
	KeyBOM       = "bom"
	KeyLogLevel  = "log.level"
	KeyLogPretty = "log.pretty"
	KeyLogFile   = "log.file"
)

// Output formats.
const (
	FormatTable = "table"
	FormatText  = "text"
	FormatCSV   = "csv"
	FormatTOML  = "toml"
)

var (
	// ErrFormat is returned for an unknown output format.
	ErrFormat = errors.New("config: unknown output format")

	// ErrRounds is returned when rounds is not positive.
	ErrRounds = errors.New("config: rounds must be positive")

	// ErrRound is returned when the selected round lies outside 1..rounds.
	ErrRound = errors.New("config: selected round out of range")

	// ErrCount is returned for a negative numeric population size.
	ErrCount = errors.New("config: count must not be negative")

	// ErrNoPeople is returned when no population source is configured.
	ErrNoPeople = errors.New("config: no people given (use people, names_file or count)")
)

// Config is the resolved command configuration.
type Config struct {
	People    []string
	NamesFile string
	Count     int
	Rounds    int
	Seed      int64
	Fixed     bool
	Format    string
	Output    string
	Round     int // 1-based; 0 selects every round
	BOM       bool
	Log       logger.Config
}

// flagKeys maps config keys to the flag names that override them.
var flagKeys = map[string]string{
	KeyPeople:    "people",
	KeyNamesFile: "names-file",
	KeyCount:     "count",
	KeyRounds:    "rounds",
	KeySeed:      "seed",
	KeyFixed:     "fixed",
	KeyFormat:    "format",
	KeyOutput:    "out",
	KeyRound:     "round",
	KeyBOM:       "bom",
	KeyLogLevel:  "log-level",
	KeyLogPretty: "log-pretty",
	KeyLogFile:   "log-file",
}

// Load reads configuration into v. A non-empty path must name a readable
// config file; otherwise roundpair.toml is looked up in the user config
// directory and silently skipped when absent. Flags present in flags are
// bound to their keys, so only flags the user actually set win over file and
// environment values.
func Load(v *viper.Viper, path string, flags *pflag.FlagSet) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := readFile(v, path); err != nil {
		return Config{}, err
	}

	if flags != nil {
		var (
			key, name string
			f         *pflag.Flag
		)
		for key, name = range flagKeys {
			if f = flags.Lookup(name); f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %q: %w", name, err)
			}
		}
	}

	var cfg = Config{
		People:    splitNames(rawNames(v.Get(KeyPeople))),
		NamesFile: v.GetString(KeyNamesFile),
		Count:     v.GetInt(KeyCount),
		Rounds:    v.GetInt(KeyRounds),
		Seed:      v.GetInt64(KeySeed),
		Fixed:     v.GetBool(KeyFixed),
		Format:    strings.ToLower(strings.TrimSpace(v.GetString(KeyFormat))),
		Output:    v.GetString(KeyOutput),
		Round:     v.GetInt(KeyRound),
		BOM:       v.GetBool(KeyBOM),
		Log: logger.Config{
			Level:  v.GetString(KeyLogLevel),
			Pretty: v.GetBool(KeyLogPretty),
			File:   v.GetString(KeyLogFile),
		},
	}
	if cfg.Fixed {
		cfg.Seed = FixedSeed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	var lc = logger.DefaultConfig()
	v.SetDefault(KeyPeople, []string{})
	v.SetDefault(KeyNamesFile, "")
	v.SetDefault(KeyCount, 0)
	v.SetDefault(KeyRounds, DefaultRounds)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyFixed, false)
	v.SetDefault(KeyFormat, FormatTable)
	v.SetDefault(KeyOutput, "")
	v.SetDefault(KeyRound, 0)
	v.SetDefault(KeyBOM, false)
	v.SetDefault(KeyLogLevel, lc.Level)
	v.SetDefault(KeyLogPretty, lc.Pretty)
	v.SetDefault(KeyLogFile, lc.File)
}

func readFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, configDir))
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}

// Validate checks the settings that do not depend on the population.
func (c Config) Validate() error {
	switch c.Format {
	case FormatTable, FormatText, FormatCSV, FormatTOML:
	default:
		return fmt.Errorf("%w: %q", ErrFormat, c.Format)
	}
	if c.Rounds <= 0 {
		return fmt.Errorf("%w: %d", ErrRounds, c.Rounds)
	}
	if c.Round < 0 || c.Round > c.Rounds {
		return fmt.Errorf("%w: %d not in 1..%d", ErrRound, c.Round, c.Rounds)
	}
	if c.Count < 0 {
		return fmt.Errorf("%w: %d", ErrCount, c.Count)
	}

	return nil
}

// Population resolves the configured people. Explicit names win over a
// names file, which wins over a numeric count.
func (c Config) Population() ([]core.Person, error) {
	var (
		names []string
		err   error
	)
	switch {
	case len(c.People) > 0:
		names = c.People
	case c.NamesFile != "":
		if names, err = ReadNames(c.NamesFile); err != nil {
			return nil, err
		}
	case c.Count > 0:
		var pop = core.NumberedPopulation(c.Count)
		if err = core.ValidatePopulation(pop); err != nil {
			return nil, err
		}
		return pop, nil
	default:
		return nil, ErrNoPeople
	}

	var pop = make([]core.Person, len(names))
	var i int
	for i = range names {
		pop[i] = core.Person(names[i])
	}
	if err = core.ValidatePopulation(pop); err != nil {
		return nil, err
	}

	return pop, nil
}

// ReadNames reads one name per line from path. Blank lines and lines
// starting with '#' are skipped, surrounding whitespace is trimmed.
func ReadNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open names file: %w", err)
	}
	defer f.Close()

	var (
		names []string
		line  string
		sc    = bufio.NewScanner(f)
	)
	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("read names file: %w", err)
	}

	return names, nil
}

// rawNames normalizes the shapes a list can take in viper: a string from the
// environment, []string from a flag and []any from a config file.
func rawNames(val any) []string {
	switch x := val.(type) {
	case nil:
		return nil
	case string:
		return []string{x}
	case []string:
		return x
	case []any:
		var out = make([]string, 0, len(x))
		var e any
		for _, e = range x {
			out = append(out, fmt.Sprint(e))
		}
		return out
	default:
		return []string{fmt.Sprint(x)}
	}
}

// splitNames flattens comma-separated entries, so "a,b" from the environment
// and ["a", "b"] from a file resolve the same way.
func splitNames(raw []string) []string {
	var (
		out       []string
		entry, nm string
	)
	for _, entry = range raw {
		for _, nm = range strings.Split(entry, ",") {
			if nm = strings.TrimSpace(nm); nm != "" {
				out = append(out, nm)
			}
		}
	}

	return out
}
