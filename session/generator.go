package session

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/roundpair/core"
	"github.com/katalvlaran/roundpair/fairness"
	"github.com/katalvlaran/roundpair/planner"
)

// Result is the outcome of Generate.
type Result struct {
	// Requested is the number of rounds asked for.
	Requested int

	// Completed is the number of rounds committed to the history.
	Completed int

	// Diagnostic explains a short session; empty when Completed == Requested.
	Diagnostic string

	// Cause is nil on full success, ErrInfeasibleRequest when the guard
	// rejected the request, or a *RoundExhaustedError.
	Cause error
}

// Complete reports whether every requested round was committed.
func (r Result) Complete() bool { return r.Cause == nil && r.Completed == r.Requested }

// Generator drives one session: it owns the ledger, the Trio plan and the
// history, and commits rounds one at a time. A Generator is single-use and
// not safe for concurrent use.
type Generator struct {
	cfg    config
	id     string
	log    zerolog.Logger
	spent  bool
	result Result

	population []core.Person
	ledger     *core.Ledger
	plan       *planner.Plan
	quota      *planner.Quota
	history    []core.Arrangement
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	var c = newConfig(opts...)
	var id = uuid.NewString()

	return &Generator{
		cfg: c,
		id:  id,
		log: c.logger.With().Str("session", id).Logger(),
	}
}

// Generate runs rounds rounds over population.
//
// The returned error is non-nil only for invalid input (see
// core.ValidatePopulation, ErrInvalidRounds) or a reused Generator
// (ErrSessionUsed). A session that stops early is not an error: Result
// reports how many rounds were committed and why the rest were not.
//
// Flow:
//  1. Guard: rounds·⌊n/2⌋ > C(n,2) ⇒ Result.Cause = ErrInfeasibleRequest.
//  2. Plan Trio candidates (planner.New); this consumes the random stream first.
//  3. For each round r, up to min(base + step·r, max) attempts:
//     attempt 0 keeps the population order, later attempts reshuffle it, and
//     every k-th attempt, or the one after a Trio conflict, perturbs the
//     Trio candidate. A round with no pair-free Trio left fails at once.
//  4. The first valid arrangement is committed and its Trio is counted
//     against the fairness quota; an exhausted budget stops the session
//     with a *RoundExhaustedError.
func (g *Generator) Generate(population []core.Person, rounds int) (Result, error) {
	if g.spent {
		return Result{}, ErrSessionUsed
	}
	if rounds <= 0 {
		return Result{}, ErrInvalidRounds
	}
	ledger, err := core.NewLedger(population)
	if err != nil {
		return Result{}, err
	}

	g.spent = true
	g.population = append([]core.Person(nil), population...)
	g.ledger = ledger
	g.result = Result{Requested: rounds}

	var n = len(population)
	needed, _, ok := Feasible(n, rounds)
	if !ok {
		g.result.Cause = ErrInfeasibleRequest
		if needed == math.MaxInt {
			g.result.Diagnostic = fmt.Sprintf("%d rounds need more distinct pairs than the %d that %d people form",
				rounds, ledger.Total(), n)
		} else {
			g.result.Diagnostic = fmt.Sprintf("%d rounds need %d distinct pairs, but %d people only form %d",
				rounds, needed, n, ledger.Total())
		}
		g.log.Warn().Int("people", n).Int("rounds", rounds).Int("needed", needed).
			Int("total_pairs", ledger.Total()).Msg("request infeasible")
		return g.result, nil
	}

	if g.plan, err = planner.New(g.population, rounds, g.cfg.rng); err != nil {
		return Result{}, err
	}
	if n%2 == 1 {
		g.quota = planner.NewQuota(g.population, rounds)
	}

	var (
		builder = NewBuilder(ledger, g.cfg.rng)
		arr     core.Arrangement
		used    int
		r       int
	)
	builder.stepLimit = g.cfg.stepLimit

	for r = 0; r < rounds; r++ {
		arr, used, err = g.round(r, builder)
		if err == nil {
			err = ledger.Commit(arr)
		}
		if err != nil {
			var exhausted = &RoundExhaustedError{Round: r, Attempts: used, Last: err}
			g.result.Cause = exhausted
			g.result.Diagnostic = exhausted.Error()
			g.log.Warn().Int("round", r+1).Int("attempts", used).Err(err).Msg("round exhausted")
			break
		}
		if g.quota != nil {
			if trio, ok := arr.Trio(); ok {
				g.quota.Commit(trio.Members)
			}
		}
		g.history = append(g.history, arr)
		g.result.Completed++
		g.log.Info().Int("round", r+1).Int("attempts", used).
			Int("available_pairs", ledger.Available()).Msg("round committed")
	}

	return g.result, nil
}

// Feasible applies the pre-generation guard for n people and rounds rounds:
// every round consumes ⌊n/2⌋ distinct pairs, so rounds·⌊n/2⌋ must not exceed
// C(n,2). It returns the pairs needed and available alongside the verdict;
// needed saturates at math.MaxInt when the product does not fit an int.
// Passing the guard does not promise that every round can be built.
func Feasible(n, rounds int) (needed, total int, ok bool) {
	var per = n / 2
	total = core.PairCount(n)
	if per == 0 || rounds <= 0 {
		return 0, total, true
	}
	if rounds > math.MaxInt/per {
		return math.MaxInt, total, false
	}
	needed = rounds * per

	return needed, total, needed <= total
}

// round tries to build round r within its budget. It returns the arrangement,
// the number of attempts spent and, on failure, the last attempt's error.
//
// For an odd population the planned Trio is checked first: a candidate that
// repeats a used pair, or that the fairness quota no longer admits, is
// replaced before the first attempt. A Trio conflict during an attempt
// triggers a new candidate on the very next attempt; otherwise the candidate
// is perturbed every trioAdjustEvery attempts. Pairs inside later planned
// Trios are reserved so the partition leaves them free when it can.
func (g *Generator) round(r int, b *Builder) (core.Arrangement, int, error) {
	var (
		budget  = g.cfg.budget(r)
		trio, _ = g.plan.Candidate(r)
		people  []core.Person
		arr     core.Arrangement
		err     error
		attempt int
		blocked bool
	)

	if g.quota != nil {
		if !planner.PairFree(trio, g.ledger) || !g.quota.Admits(trio) {
			next, ok := planner.Pick(g.population, g.quota, g.ledger, nil, g.cfg.rng)
			if !ok {
				return core.Arrangement{}, 1, fmt.Errorf("%w: no trio without a used pair remains", ErrTrioConflict)
			}
			g.log.Debug().Int("round", r+1).Strs("planned", personStrings(trio)).
				Strs("trio", personStrings(next)).Bool("fair", g.quota.Admits(next)).Msg("trio candidate replaced")
			trio = next
			_ = g.plan.SetCandidate(r, trio)
		}
		b.Reserve(g.futurePairs(r))
	}

	for attempt = 0; attempt < budget; attempt++ {
		if len(trio) > 0 && attempt > 0 && (blocked || attempt%g.cfg.trioAdjustEvery == 0) {
			trio = planner.Perturb(trio, g.population, attempt, g.quota, g.ledger, g.cfg.rng)
			_ = g.plan.SetCandidate(r, trio)
			g.log.Debug().Int("round", r+1).Int("attempt", attempt).
				Strs("trio", personStrings(trio)).Msg("trio candidate adjusted")
		}

		people = append(people[:0], g.population...)
		if attempt > 0 {
			core.ShufflePeople(people, g.cfg.rng)
		}

		if arr, err = b.Build(people, trio); err == nil {
			return arr, attempt + 1, nil
		}
		blocked = errors.Is(err, ErrTrioConflict)
		g.log.Debug().Int("round", r+1).Int("attempt", attempt).Err(err).
			Bool("greedy", b.Stats.Greedy).Int("frames", b.Stats.Frames).Msg("attempt failed")
	}

	return core.Arrangement{}, budget, err
}

// futurePairs returns the unused pairs inside the Trios planned after round r.
func (g *Generator) futurePairs(r int) []core.Pair {
	var (
		out  []core.Pair
		trio []core.Person
		p    core.Pair
		i    int
	)
	for i = r + 1; i < g.plan.Rounds(); i++ {
		if trio, _ = g.plan.Candidate(i); len(trio) == 0 {
			continue
		}
		for _, p = range (core.Group{Members: trio}).Pairs() {
			if !g.ledger.UsedPair(p) {
				out = append(out, p)
			}
		}
	}

	return out
}

// ID returns the session identifier used in logs and exports.
func (g *Generator) ID() string { return g.id }

// Population returns a copy of the session's population.
func (g *Generator) Population() []core.Person { return append([]core.Person(nil), g.population...) }

// Result returns the outcome of the last Generate call.
func (g *Generator) Result() Result { return g.result }

// Rounds returns the number of committed rounds.
func (g *Generator) Rounds() int { return len(g.history) }

// ArrangementAt returns a copy of committed round i (0-based).
func (g *Generator) ArrangementAt(i int) (core.Arrangement, error) {
	if i < 0 || i >= len(g.history) {
		return core.Arrangement{}, ErrIndexOutOfRange
	}

	return g.history[i].Clone(), nil
}

// History returns copies of every committed round in order.
func (g *Generator) History() []core.Arrangement {
	var out = make([]core.Arrangement, len(g.history))
	var i int
	for i = range g.history {
		out[i] = g.history[i].Clone()
	}

	return out
}

// UsedPairs returns every pair consumed so far, sorted.
func (g *Generator) UsedPairs() []core.Pair {
	if g.ledger == nil {
		return nil
	}

	return g.ledger.Pairs()
}

// Usage reports consumed versus possible pairs.
func (g *Generator) Usage() fairness.Usage {
	if g.ledger == nil {
		return fairness.Usage{}
	}

	return fairness.PairUsage(g.ledger.Len(), g.ledger.Total())
}

// Plan returns the Trio plan, nil before Generate or after a rejected request.
func (g *Generator) Plan() *planner.Plan { return g.plan }

// FairnessReport summarizes Trio participation; nil for even populations.
func (g *Generator) FairnessReport() *fairness.Report {
	return fairness.Compute(g.population, g.history)
}

func personStrings(people []core.Person) []string {
	var out = make([]string, len(people))
	var i int
	for i = range people {
		out[i] = string(people[i])
	}

	return out
}
