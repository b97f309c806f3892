package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/roundpair/config"
	"github.com/katalvlaran/roundpair/fairness"
	"github.com/katalvlaran/roundpair/session"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

func newPlanCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Check whether a request can be met and forecast trio duty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(viper.New(), configPath, cmd.Flags())
			if err != nil {
				return err
			}
			pop, err := cfg.Population()
			if err != nil {
				return err
			}
			return writePlan(cmd.OutOrStdout(), len(pop), cfg.Rounds)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "Config file (TOML)")
	addPeopleFlags(f)

	return cmd
}

func writePlan(w io.Writer, n, rounds int) error {
	needed, total, ok := session.Feasible(n, rounds)

	verdict := okStyle.Render("feasible")
	if !ok {
		verdict = failStyle.Render("infeasible")
	}

	if _, err := fmt.Fprintf(w, "People: %d\nRounds: %d\nPairs needed: %d of %d distinct\nVerdict: %s\n",
		n, rounds, needed, total, verdict); err != nil {
		return err
	}
	if !ok {
		_, err := fmt.Fprintf(w, "At most %d rounds fit %d people.\n", total/(n/2), n)
		return err
	}

	fc := fairness.NewForecast(n, rounds)
	if !fc.Needed {
		_, err := fmt.Fprintln(w, "Trios: none (even number of people)")
		return err
	}

	var err error
	if fc.PeopleAtMax == 0 {
		_, err = fmt.Fprintf(w, "Trios: %d slots, everyone in %d\n", fc.Slots, fc.Min)
	} else {
		_, err = fmt.Fprintf(w, "Trios: %d slots, %d people in %d, %d people in %d\n",
			fc.Slots, fc.PeopleAtMin, fc.Min, fc.PeopleAtMax, fc.Max)
	}

	return err
}
