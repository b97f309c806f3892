package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundpair/core"
	"github.com/katalvlaran/roundpair/planner"
)

func sum(xs []int) int {
	var s int
	for _, x := range xs {
		s += x
	}
	return s
}

func spread(xs []int) int {
	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		lo = min(lo, x)
		hi = max(hi, x)
	}
	return hi - lo
}

// TestTargets checks the pigeonhole split of trio slots.
func TestTargets(t *testing.T) {
	require.Equal(t, []int{3, 3, 3, 3, 3}, planner.Targets(5, 5))
	require.Equal(t, []int{1, 1, 1, 1, 1, 1, 0}, planner.Targets(7, 2))
	require.Equal(t, []int{0, 0, 0, 0}, planner.Targets(4, 3), "even populations need no trios")
	require.Nil(t, planner.Targets(0, 3))

	for n := 3; n <= 15; n += 2 {
		for r := 1; r <= 12; r++ {
			tg := planner.Targets(n, r)
			require.Equal(t, 3*r, sum(tg), "n=%d r=%d", n, r)
			require.LessOrEqual(t, spread(tg), 1, "n=%d r=%d", n, r)
		}
	}
}

// TestNew_EvenPopulation yields empty candidates for every round.
func TestNew_EvenPopulation(t *testing.T) {
	p, err := planner.New(core.NumberedPopulation(6), 4, core.NewRand(3))
	require.NoError(t, err)
	require.Equal(t, 4, p.Rounds())
	for r := 0; r < p.Rounds(); r++ {
		c, err := p.Candidate(r)
		require.NoError(t, err)
		require.Nil(t, c)
	}
	require.Equal(t, 0, sum(p.Assigned))
}

// TestNew_ExactWhenSlotsFit: with 3·R ≤ n every target is 0 or 1, so each
// round always has enough positive weights and the plan meets targets exactly.
func TestNew_ExactWhenSlotsFit(t *testing.T) {
	pop := core.NumberedPopulation(9)
	for seed := int64(1); seed <= 20; seed++ {
		p, err := planner.New(pop, 3, core.NewRand(seed))
		require.NoError(t, err)
		require.Equal(t, p.Targets, p.Assigned, "seed=%d", seed)

		seen := map[core.Person]int{}
		for r := 0; r < 3; r++ {
			c, err := p.Candidate(r)
			require.NoError(t, err)
			require.Len(t, c, 3)
			for _, m := range c {
				seen[m]++
			}
		}
		require.Len(t, seen, 9, "every person appears in exactly one trio")
	}
}

// TestNew_CandidatesAreDistinctMembers guards the without-replacement rule.
func TestNew_CandidatesAreDistinctMembers(t *testing.T) {
	pop := core.NumberedPopulation(7)
	p, err := planner.New(pop, 10, core.NewRand(11))
	require.NoError(t, err)
	require.Equal(t, 30, sum(p.Assigned))

	for r := 0; r < p.Rounds(); r++ {
		c, err := p.Candidate(r)
		require.NoError(t, err)
		require.Len(t, c, 3)
		require.NotEqual(t, c[0], c[1])
		require.NotEqual(t, c[0], c[2])
		require.NotEqual(t, c[1], c[2])
		for _, m := range c {
			require.Contains(t, pop, m)
		}
	}
}

// TestNew_TrioCoversSmallestOddPopulation: n=3 puts everyone in every trio.
func TestNew_TrioCoversSmallestOddPopulation(t *testing.T) {
	pop := core.NumberedPopulation(3)
	p, err := planner.New(pop, 2, core.NewRand(5))
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 2}, p.Assigned)
	c, err := p.Candidate(1)
	require.NoError(t, err)
	require.ElementsMatch(t, pop, c)
}

func TestNew_Deterministic(t *testing.T) {
	pop := core.NumberedPopulation(11)
	a, err := planner.New(pop, 6, core.NewRand(42))
	require.NoError(t, err)
	b, err := planner.New(pop, 6, core.NewRand(42))
	require.NoError(t, err)
	for r := 0; r < 6; r++ {
		ca, _ := a.Candidate(r)
		cb, _ := b.Candidate(r)
		require.Equal(t, ca, cb)
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := planner.New(core.NumberedPopulation(5), 0, nil)
	require.ErrorIs(t, err, planner.ErrInvalidRounds)

	_, err = planner.New([]core.Person{"solo"}, 2, nil)
	require.ErrorIs(t, err, core.ErrTooFewPeople)
}

func TestPlan_CandidateAccessors(t *testing.T) {
	p, err := planner.New(core.NumberedPopulation(5), 2, core.NewRand(1))
	require.NoError(t, err)

	_, err = p.Candidate(2)
	require.ErrorIs(t, err, planner.ErrRoundOutOfRange)
	require.ErrorIs(t, p.SetCandidate(-1, nil), planner.ErrRoundOutOfRange)

	want := []core.Person{"1", "2", "3"}
	require.NoError(t, p.SetCandidate(0, want))
	got, err := p.Candidate(0)
	require.NoError(t, err)
	require.Equal(t, want, got)

	got[0] = "9"
	again, _ := p.Candidate(0)
	require.Equal(t, core.Person("1"), again[0], "candidate must be returned by copy")
}

// TestPerturb covers the swap count escalation and edge cases.
func TestPerturb(t *testing.T) {
	pop := core.NumberedPopulation(9)
	trio := []core.Person{"1", "2", "3"}

	out := planner.Perturb(trio, pop, 20, nil, nil, core.NewRand(9))
	require.Len(t, out, 3)
	changed := 0
	for i := range trio {
		if out[i] != trio[i] {
			changed++
		}
	}
	require.Equal(t, 1, changed, "a single swap below attempt 50")
	require.Equal(t, []core.Person{"1", "2", "3"}, trio, "input must not be mutated")

	for _, attempt := range []int{60, 120, 199} {
		out = planner.Perturb(trio, pop, attempt, nil, nil, core.NewRand(int64(attempt)))
		require.Len(t, out, 3)
		require.NotEqual(t, out[0], out[1])
		require.NotEqual(t, out[0], out[2])
		require.NotEqual(t, out[1], out[2])
		for _, m := range out {
			require.Contains(t, pop, m)
		}
	}

	small := core.NumberedPopulation(3)
	require.Equal(t, small, planner.Perturb(small, small, 40, nil, nil, core.NewRand(1)))
	require.Empty(t, planner.Perturb(nil, pop, 40, nil, nil, core.NewRand(1)))
}
