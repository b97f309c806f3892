package fairness_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundpair/core"
	"github.com/katalvlaran/roundpair/fairness"
)

func round(groups ...[]core.Person) core.Arrangement {
	arr := core.Arrangement{}
	for _, g := range groups {
		arr.Groups = append(arr.Groups, core.Group{Members: g})
	}
	return arr
}

func TestCompute_EvenIsNil(t *testing.T) {
	require.Nil(t, fairness.Compute(core.NumberedPopulation(4), nil))
	require.Nil(t, fairness.Compute(nil, nil))
}

// TestCompute_FairSession: 7 people, 2 rounds ⇒ 6 slots, band [0,1].
func TestCompute_FairSession(t *testing.T) {
	pop := core.NumberedPopulation(7)
	history := []core.Arrangement{
		round([]core.Person{"1", "2"}, []core.Person{"3", "4"}, []core.Person{"5", "6", "7"}),
		round([]core.Person{"1", "5"}, []core.Person{"6", "7"}, []core.Person{"2", "3", "4"}),
	}

	r := fairness.Compute(pop, history)
	require.NotNil(t, r)
	require.Equal(t, 2, r.TotalTrios)
	require.Equal(t, 0, r.OptimalMin)
	require.Equal(t, 1, r.OptimalMax)
	require.Equal(t, 0, r.ActualMin)
	require.Equal(t, 1, r.ActualMax)
	require.True(t, r.IsFair)
	require.Equal(t, 0, r.Counts["1"])
	require.Equal(t, 1, r.Counts["7"])
	require.Equal(t, pop, r.Order)
}

// TestCompute_Unfair: one person in both Trios while another is in none.
func TestCompute_Unfair(t *testing.T) {
	pop := core.NumberedPopulation(5)
	history := []core.Arrangement{
		round([]core.Person{"4", "5"}, []core.Person{"1", "2", "3"}),
		round([]core.Person{"2", "4"}, []core.Person{"1", "3", "5"}),
		round([]core.Person{"2", "3"}, []core.Person{"1", "4", "5"}),
	}

	r := fairness.Compute(pop, history)
	require.Equal(t, 3, r.TotalTrios)
	require.Equal(t, 1, r.OptimalMin)
	require.Equal(t, 3, r.Counts["1"])
	require.Equal(t, 1, r.ActualMin)
	require.Equal(t, 3, r.ActualMax)
	require.False(t, r.IsFair)
}

// TestCompute_BandFollowsCommittedRounds: the band uses the history length,
// not whatever was originally requested.
func TestCompute_BandFollowsCommittedRounds(t *testing.T) {
	pop := core.NumberedPopulation(3)
	r := fairness.Compute(pop, []core.Arrangement{round([]core.Person{"1", "2", "3"})})
	require.Equal(t, 1, r.TotalTrios)
	require.Equal(t, 1, r.OptimalMin)
	require.Equal(t, 2, r.OptimalMax)
	require.True(t, r.IsFair)
}

func TestNewForecast(t *testing.T) {
	f := fairness.NewForecast(7, 5)
	require.True(t, f.Needed)
	require.Equal(t, 15, f.Slots)
	require.Equal(t, 2, f.Min)
	require.Equal(t, 3, f.Max)
	require.Equal(t, 1, f.PeopleAtMax)
	require.Equal(t, 6, f.PeopleAtMin)

	require.False(t, fairness.NewForecast(8, 5).Needed)
	require.False(t, fairness.NewForecast(7, 0).Needed)
}

func TestPairUsage(t *testing.T) {
	u := fairness.PairUsage(6, 15)
	require.InDelta(t, 0.4, u.Rate, 1e-12)
	require.Zero(t, fairness.PairUsage(0, 0).Rate)
}
