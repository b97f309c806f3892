package session

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/roundpair/core"
	"github.com/katalvlaran/roundpair/matching"
)

// reserveSteps scales the search bound of the partition that avoids
// reserved pairs: reserveSteps·m² steps for m people.
const reserveSteps = 8

// Builder constructs one round's Arrangement against a ledger. It only reads
// the ledger; committing is the Generator's job.
type Builder struct {
	ledger    *core.Ledger
	rng       *rand.Rand
	stepLimit int
	reserved  map[core.Pair]struct{}

	// Stats holds the partitioner diagnostics of the last Build call.
	Stats matching.Stats
}

// NewBuilder returns a Builder reading ledger and drawing from rng.
// rng==nil uses core.DefaultSeed.
func NewBuilder(ledger *core.Ledger, rng *rand.Rand) *Builder {
	if rng == nil {
		rng = core.NewRand(0)
	}

	return &Builder{ledger: ledger, rng: rng}
}

// Reserve marks pairs the partitioner should leave free when it can, such as
// the pairs inside Trios planned for later rounds. It replaces any earlier
// reservation; nil clears it.
func (b *Builder) Reserve(pairs []core.Pair) {
	if len(pairs) == 0 {
		b.reserved = nil
		return
	}
	b.reserved = make(map[core.Pair]struct{}, len(pairs))
	var p core.Pair
	for _, p = range pairs {
		b.reserved[p] = struct{}{}
	}
}

// reserving reports ledger pairs and reserved pairs alike as used.
type reserving struct {
	ledger   *core.Ledger
	reserved map[core.Pair]struct{}
}

func (r reserving) Used(a, c core.Person) bool {
	if r.ledger.Used(a, c) {
		return true
	}
	p, err := core.NewPair(a, c)
	if err != nil {
		return false
	}
	_, ok := r.reserved[p]
	return ok
}

// Build produces a full Arrangement of people, or an error; it never returns
// a partial arrangement.
//
// Steps:
//  1. When trio is non-empty, take its members out of the working set. A
//     Trio that repeats a used pair fails with ErrTrioConflict.
//  2. Partition the rest into unused pairs (matching.Partition), first
//     around reserved pairs with a bounded search, then on the ledger alone.
//  3. Randomize presentation: flip each Pair with probability ½, shuffle
//     Pair order, shuffle Trio members, put the Trio last.
//  4. Re-validate against the ledger; a failure wraps ErrValidation.
//
// Complexity: dominated by matching.Partition.
func (b *Builder) Build(people, trio []core.Person) (core.Arrangement, error) {
	var rest = people
	var trioGroup core.Group

	if len(trio) > 0 {
		if len(trio) != 3 {
			return core.Arrangement{}, fmt.Errorf("%w: trio of %d", core.ErrGroupSize, len(trio))
		}
		trioGroup = core.Group{Members: append([]core.Person(nil), trio...)}
		if c := b.ledger.Conflicts(trioGroup); len(c) > 0 {
			return core.Arrangement{}, fmt.Errorf("%w: %s", ErrTrioConflict, c[0])
		}
		rest = without(people, trio)
	}

	var (
		pairs []core.Pair
		err   error
	)
	if len(b.reserved) > 0 {
		var soft = reserveSteps * len(rest) * len(rest)
		if b.stepLimit > 0 {
			soft = min(soft, b.stepLimit)
		}
		pairs, err = matching.Partition(rest, reserving{b.ledger, b.reserved}, b.rng,
			matching.WithStats(&b.Stats), matching.WithStepLimit(max(soft, 1)))
	}
	if len(b.reserved) == 0 || err != nil {
		var opts = []matching.Option{matching.WithStats(&b.Stats)}
		if b.stepLimit > 0 {
			opts = append(opts, matching.WithStepLimit(b.stepLimit))
		}
		if pairs, err = matching.Partition(rest, b.ledger, b.rng, opts...); err != nil {
			return core.Arrangement{}, err
		}
	}

	var (
		groups = make([]core.Group, 0, len(pairs)+1)
		p      core.Pair
	)
	for _, p = range pairs {
		if b.rng.Float64() < 0.5 {
			groups = append(groups, core.Group{Members: []core.Person{p.B, p.A}})
		} else {
			groups = append(groups, core.Group{Members: []core.Person{p.A, p.B}})
		}
	}
	b.rng.Shuffle(len(groups), func(i, j int) { groups[i], groups[j] = groups[j], groups[i] })
	if len(trioGroup.Members) > 0 {
		core.ShufflePeople(trioGroup.Members, b.rng)
		groups = append(groups, trioGroup)
	}

	var arr = core.Arrangement{Groups: groups}
	if err = core.ValidateArrangement(arr, b.ledger); err != nil {
		return core.Arrangement{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return arr, nil
}

// without returns people minus drop, keeping order.
func without(people, drop []core.Person) []core.Person {
	var skip = make(map[core.Person]struct{}, len(drop))
	var p core.Person
	for _, p = range drop {
		skip[p] = struct{}{}
	}
	var out = make([]core.Person, 0, len(people))
	for _, p = range people {
		if _, ok := skip[p]; !ok {
			out = append(out, p)
		}
	}

	return out
}
