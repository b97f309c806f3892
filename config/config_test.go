package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundpair/config"
	"github.com/katalvlaran/roundpair/core"
)

// isolate keeps a user-level roundpair.toml out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(viper.New(), "", nil)
	require.NoError(t, err)
	require.Equal(t, config.DefaultRounds, cfg.Rounds)
	require.Equal(t, config.FormatTable, cfg.Format)
	require.Zero(t, cfg.Seed)
	require.Zero(t, cfg.Round)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Empty(t, cfg.People)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeFile(t, "team.toml", `
people = ["Ann Lee", "Ben", "Cat"]
rounds = 1
seed = 7
format = "CSV"
bom = true

[log]
level = "debug"
pretty = false
`)

	cfg, err := config.Load(viper.New(), path, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"Ann Lee", "Ben", "Cat"}, cfg.People)
	require.Equal(t, 1, cfg.Rounds)
	require.Equal(t, int64(7), cfg.Seed)
	require.Equal(t, config.FormatCSV, cfg.Format)
	require.True(t, cfg.BOM)
	require.Equal(t, "debug", cfg.Log.Level)
	require.False(t, cfg.Log.Pretty)
}

func TestLoad_MissingFile(t *testing.T) {
	isolate(t)
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "nope.toml"), nil)
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, "team.toml", "rounds = 2\ncount = 6\n")
	t.Setenv("ROUNDPAIR_ROUNDS", "4")
	t.Setenv("ROUNDPAIR_PEOPLE", "Ann Lee, Ben ,Cat")
	t.Setenv("ROUNDPAIR_LOG_LEVEL", "error")

	cfg, err := config.Load(viper.New(), path, nil)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Rounds)
	require.Equal(t, 6, cfg.Count)
	require.Equal(t, []string{"Ann Lee", "Ben", "Cat"}, cfg.People)
	require.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("ROUNDPAIR_ROUNDS", "4")
	t.Setenv("ROUNDPAIR_FORMAT", "toml")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("rounds", config.DefaultRounds, "")
	fs.String("format", config.FormatTable, "")
	fs.StringSlice("people", nil, "")
	fs.Bool("fixed", false, "")
	require.NoError(t, fs.Parse([]string{"--rounds", "3", "--people", "x,y", "--fixed"}))

	cfg, err := config.Load(viper.New(), "", fs)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Rounds)
	require.Equal(t, config.FormatTOML, cfg.Format, "unset flag must not shadow the environment")
	require.Equal(t, []string{"x", "y"}, cfg.People)
	require.True(t, cfg.Fixed)
	require.Equal(t, config.FixedSeed, cfg.Seed)
}

func TestValidate(t *testing.T) {
	base := config.Config{Format: config.FormatText, Rounds: 3}
	require.NoError(t, base.Validate())

	bad := base
	bad.Format = "yaml"
	require.ErrorIs(t, bad.Validate(), config.ErrFormat)

	bad = base
	bad.Rounds = 0
	require.ErrorIs(t, bad.Validate(), config.ErrRounds)

	bad = base
	bad.Round = 4
	require.ErrorIs(t, bad.Validate(), config.ErrRound)

	bad = base
	bad.Count = -1
	require.ErrorIs(t, bad.Validate(), config.ErrCount)
}

func TestPopulation(t *testing.T) {
	t.Run("people win", func(t *testing.T) {
		pop, err := config.Config{People: []string{"a", "b"}, Count: 9}.Population()
		require.NoError(t, err)
		require.Equal(t, []core.Person{"a", "b"}, pop)
	})

	t.Run("names file", func(t *testing.T) {
		path := writeFile(t, "names.txt", "# team\nAnn\n\n  Ben  \nCat\n")
		pop, err := config.Config{NamesFile: path, Count: 9}.Population()
		require.NoError(t, err)
		require.Equal(t, []core.Person{"Ann", "Ben", "Cat"}, pop)
	})

	t.Run("count", func(t *testing.T) {
		pop, err := config.Config{Count: 3}.Population()
		require.NoError(t, err)
		require.Equal(t, []core.Person{"1", "2", "3"}, pop)
	})

	t.Run("nothing", func(t *testing.T) {
		_, err := config.Config{}.Population()
		require.ErrorIs(t, err, config.ErrNoPeople)
	})

	t.Run("duplicates", func(t *testing.T) {
		_, err := config.Config{People: []string{"a", "a"}}.Population()
		require.ErrorIs(t, err, core.ErrDuplicatePerson)
	})

	t.Run("too few", func(t *testing.T) {
		_, err := config.Config{Count: 1}.Population()
		require.ErrorIs(t, err, core.ErrTooFewPeople)
	})

	t.Run("missing names file", func(t *testing.T) {
		_, err := config.Config{NamesFile: filepath.Join(t.TempDir(), "none")}.Population()
		require.Error(t, err)
	})
}
