// Package roundpair builds multi-round pairings in which no two people are
// ever grouped together twice.
//
// Given a population of n people and a number of rounds, every round splits
// everyone into groups of two; when n is odd exactly one group is a trio.
// Across the whole session each unordered pair of people appears at most once,
// and trio duty is spread so that nobody sits in more than one trio more than
// anybody else.
//
// Layout:
//
//	core/      value types (Person, Pair, Group, Arrangement) and the pair Ledger
//	planner/   trio candidates per round, weighted toward the pigeonhole target
//	matching/  perfect matching of the non-trio people on unused pairs
//	session/   the round loop: attempt budgets, trio perturbation, commits
//	fairness/  trio participation reports, forecasts and pair usage
//	render/    text, terminal tables, CSV and TOML output
//	config/    viper-backed settings (file, ROUNDPAIR_* env, flags)
//	cmd/       the roundpair command
//
// Quick example:
//
//	g := session.New(session.WithSeed(42))
//	res, err := g.Generate(core.NumberedPopulation(6), 3)
//	// res.Completed rounds are in g.History(); res.Diagnostic explains a
//	// short session.
//
// Or from the shell:
//
//	go install github.com/katalvlaran/roundpair/cmd/roundpair@latest
//	roundpair generate --people ann,ben,cat,dan,eve --rounds 2
package roundpair
