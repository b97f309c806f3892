package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/roundpair/config"
	"github.com/katalvlaran/roundpair/internal/logger"
	"github.com/katalvlaran/roundpair/render"
	"github.com/katalvlaran/roundpair/session"
)

// now is replaced in tests.
var now = time.Now

func newGenerateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate rounds without repeated pairs",
		Example: "  roundpair generate --people ann,ben,cat,dan,eve --rounds 2\n" +
			"  roundpair generate --count 12 --rounds 5 --fixed --format csv --out rounds.csv",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, configPath)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "Config file (TOML)")
	addPeopleFlags(f)
	f.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	f.Bool("fixed", false, fmt.Sprintf("Use the fixed seed %d so results repeat", config.FixedSeed))
	f.StringP("format", "f", config.FormatTable, "Output format (table|text|csv|toml)")
	f.StringP("out", "o", "", "Write output to this file instead of stdout")
	f.Int("round", 0, "Print only this round, 1-based (table and text formats)")
	f.Bool("bom", false, "Start CSV output with a UTF-8 byte order mark")
	addLogFlags(f)

	return cmd
}

func runGenerate(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(viper.New(), configPath, cmd.Flags())
	if err != nil {
		return err
	}
	pop, err := cfg.Population()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Close()
	zl := log.Zerolog()

	seed := cfg.Seed
	if seed == 0 {
		seed = now().UnixNano()
	}
	zl.Info().Int64("seed", seed).Int("people", len(pop)).Int("rounds", cfg.Rounds).Msg("generating")

	g := session.New(session.WithSeed(seed), session.WithLogger(zl))
	res, err := g.Generate(pop, cfg.Rounds)
	if err != nil {
		return err
	}
	if cfg.Round > res.Completed {
		return fmt.Errorf("round %d was not generated: %s", cfg.Round, res.Diagnostic)
	}

	snap := render.NewSnapshot(g, now())

	if cfg.Output == "" {
		err = writeSnapshot(cmd.OutOrStdout(), snap, cfg)
	} else {
		err = writeFile(cfg.Output, snap, cfg)
	}
	if err != nil {
		return err
	}
	if cfg.Output != "" {
		zl.Info().Str("path", cfg.Output).Msg("output written")
	}

	if !res.Complete() {
		_, err = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", res.Diagnostic)
	}

	return err
}

// writeFile writes the snapshot to path. A failed Close is reported, since
// buffered output may not have reached the disk.
func writeFile(path string, s render.Snapshot, cfg config.Config) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err = writeSnapshot(file, s, cfg); err != nil {
		_ = file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	return nil
}

func writeSnapshot(w io.Writer, s render.Snapshot, cfg config.Config) error {
	switch cfg.Format {
	case config.FormatCSV:
		return render.CSV(w, s, cfg.BOM)
	case config.FormatTOML:
		return render.TOML(w, s)
	}

	var (
		first = 0
		last  = len(s.Rounds)
		i     int
		block string
	)
	if cfg.Round > 0 {
		first, last = cfg.Round-1, cfg.Round
	}
	for i = first; i < last; i++ {
		if cfg.Format == config.FormatText {
			block = render.Text(s.Rounds[i], i, s.GeneratedAt)
		} else {
			block = render.Table(s.Rounds[i], i)
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", block); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, render.Summary(s))
	return err
}
