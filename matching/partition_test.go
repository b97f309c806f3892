package matching_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundpair/core"
	"github.com/katalvlaran/roundpair/matching"
)

// usedSet is a tiny PairChecker backed by canonical pairs.
type usedSet map[core.Pair]struct{}

func (u usedSet) Used(a, b core.Person) bool {
	p, err := core.NewPair(a, b)
	if err != nil {
		return false
	}
	_, ok := u[p]
	return ok
}

func newUsed(t *testing.T, pairs ...[2]core.Person) usedSet {
	t.Helper()
	u := usedSet{}
	for _, pr := range pairs {
		p, err := core.NewPair(pr[0], pr[1])
		require.NoError(t, err)
		u[p] = struct{}{}
	}
	return u
}

// requirePerfect asserts pairs is a perfect matching of people avoiding used.
func requirePerfect(t *testing.T, people []core.Person, pairs []core.Pair, used matching.PairChecker) {
	t.Helper()
	require.Len(t, pairs, len(people)/2)
	seen := map[core.Person]int{}
	for _, p := range pairs {
		require.NotEqual(t, p.A, p.B)
		require.False(t, used.Used(p.A, p.B), "pair %s already used", p)
		seen[p.A]++
		seen[p.B]++
	}
	for _, x := range people {
		require.Equal(t, 1, seen[x], "person %s must appear once", x)
	}
}

func TestPartition_Empty(t *testing.T) {
	pairs, err := matching.Partition(nil, nil, nil)
	require.NoError(t, err)
	require.Empty(t, pairs)
}

func TestPartition_Odd(t *testing.T) {
	_, err := matching.Partition(core.NumberedPopulation(5), nil, core.NewRand(1))
	require.ErrorIs(t, err, matching.ErrOddPopulation)
}

// TestPartition_FreshPopulation: with an empty ledger every seed succeeds.
func TestPartition_FreshPopulation(t *testing.T) {
	people := core.NumberedPopulation(10)
	for seed := int64(1); seed <= 30; seed++ {
		pairs, err := matching.Partition(people, nil, core.NewRand(seed))
		require.NoError(t, err, "seed=%d", seed)
		requirePerfect(t, people, pairs, usedSet{})
	}
	require.Equal(t, core.NumberedPopulation(10), people, "input must not be reordered")
}

// TestPartition_K4Complement: after {1,2},{3,4} only two matchings remain.
func TestPartition_K4Complement(t *testing.T) {
	people := core.NumberedPopulation(4)
	used := newUsed(t, [2]core.Person{"1", "2"}, [2]core.Person{"3", "4"})
	for seed := int64(1); seed <= 10; seed++ {
		pairs, err := matching.Partition(people, used, core.NewRand(seed))
		require.NoError(t, err)
		requirePerfect(t, people, pairs, used)
	}
}

// TestPartition_ProbeRejects: one unused pair cannot cover four people.
func TestPartition_ProbeRejects(t *testing.T) {
	people := core.NumberedPopulation(4)
	used := newUsed(t,
		[2]core.Person{"1", "2"}, [2]core.Person{"1", "3"}, [2]core.Person{"1", "4"},
		[2]core.Person{"2", "3"}, [2]core.Person{"2", "4"},
	)
	require.False(t, matching.Probe(people, used))

	var st matching.Stats
	_, err := matching.Partition(people, used, core.NewRand(1), matching.WithStats(&st))
	require.ErrorIs(t, err, matching.ErrInfeasible)
	require.Zero(t, st.Frames, "probe failure must skip the search")
}

// TestPartition_SearchRefutes: two unused pairs share person 1, so the probe
// passes but no perfect matching exists; the search must prove it.
func TestPartition_SearchRefutes(t *testing.T) {
	people := core.NumberedPopulation(4)
	used := newUsed(t,
		[2]core.Person{"1", "4"}, [2]core.Person{"2", "3"},
		[2]core.Person{"2", "4"}, [2]core.Person{"3", "4"},
	)
	require.True(t, matching.Probe(people, used))

	var st matching.Stats
	_, err := matching.Partition(people, used, core.NewRand(2), matching.WithStats(&st))
	require.ErrorIs(t, err, matching.ErrInfeasible)
	require.False(t, st.Greedy)
	require.Equal(t, 3, st.Frames)
	require.Equal(t, 2, st.Steps)
}

// TestPartition_StepLimit stops the same refutation after one step.
func TestPartition_StepLimit(t *testing.T) {
	people := core.NumberedPopulation(4)
	used := newUsed(t,
		[2]core.Person{"1", "4"}, [2]core.Person{"2", "3"},
		[2]core.Person{"2", "4"}, [2]core.Person{"3", "4"},
	)
	_, err := matching.Partition(people, used, core.NewRand(2), matching.WithStepLimit(1))
	require.ErrorIs(t, err, matching.ErrStepLimit)
}

// TestPartition_WithLedger uses *core.Ledger as the checker across rounds.
func TestPartition_WithLedger(t *testing.T) {
	people := core.NumberedPopulation(8)
	l, err := core.NewLedger(people)
	require.NoError(t, err)
	rng := core.NewRand(17)

	// A K8 minus any single perfect matching still has a perfect matching.
	pairs, err := matching.Partition(people, l, rng)
	require.NoError(t, err)
	requirePerfect(t, people, pairs, l)

	arr := core.Arrangement{}
	for _, p := range pairs {
		arr.Groups = append(arr.Groups, core.Group{Members: []core.Person{p.A, p.B}})
	}
	require.NoError(t, l.Commit(arr))

	next, err := matching.Partition(people, l, rng)
	require.NoError(t, err)
	requirePerfect(t, people, next, l)
}

func TestPartition_Deterministic(t *testing.T) {
	people := core.NumberedPopulation(12)
	used := newUsed(t, [2]core.Person{"1", "2"}, [2]core.Person{"5", "9"})
	a, err := matching.Partition(people, used, core.NewRand(99))
	require.NoError(t, err)
	b, err := matching.Partition(people, used, core.NewRand(99))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// TestPartition_Diversity: different streams explore different matchings.
func TestPartition_Diversity(t *testing.T) {
	people := core.NumberedPopulation(6)
	seen := map[string]struct{}{}
	for seed := int64(1); seed <= 40; seed++ {
		pairs, err := matching.Partition(people, nil, core.NewRand(seed))
		require.NoError(t, err)
		seen[fmt.Sprint(pairs)] = struct{}{}
	}
	require.Greater(t, len(seen), 1)
}

func TestProbe(t *testing.T) {
	require.True(t, matching.Probe(nil, nil))
	require.True(t, matching.Probe(core.NumberedPopulation(4), nil))
	require.False(t, matching.Probe(
		[]core.Person{"a", "b"},
		newUsed(t, [2]core.Person{"a", "b"}),
	))
}

func TestOptions_PanicOnBadInput(t *testing.T) {
	require.Panics(t, func() { matching.WithStepLimit(-1) })
	require.Panics(t, func() { matching.WithStats(nil) })
}
