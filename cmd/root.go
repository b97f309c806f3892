package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/roundpair/config"
	"github.com/katalvlaran/roundpair/internal/logger"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "roundpair",
		Short: "Generate rounds of pairs in which nobody meets the same person twice",
		Long: "roundpair splits a group of people into pairs, round after round, so that no two people " +
			"are ever paired twice. With an odd number of people one group per round is a trio, and " +
			"trio duty is spread as evenly as possible.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(),
		newPlanCmd(),
	)

	return rootCmd
}

// addPeopleFlags registers the population and rounds flags shared by
// generate and plan.
func addPeopleFlags(f *pflag.FlagSet) {
	f.StringSliceP("people", "p", nil, "Comma-separated names")
	f.String("names-file", "", "File with one name per line")
	f.IntP("count", "n", 0, "Number of people, named 1..n")
	f.IntP("rounds", "r", config.DefaultRounds, "Number of rounds")
}

func addLogFlags(f *pflag.FlagSet) {
	var d = logger.DefaultConfig()
	f.String("log-level", d.Level, "Log level (debug|info|warn|error|disabled)")
	f.Bool("log-pretty", d.Pretty, "Human-readable log output")
	f.String("log-file", d.File, "Also append logs to this file")
}
