package kura

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/pkg/errors"
)

// PreferenceProfile is an immutable collection of ballots.
// The engine builds a fresh profile for every round rather than mutating the
// previous round's; each profile is owned by exactly one RoundRecord.
// Ballot order is irrelevant to the outcome but is preserved so that runs
// are reproducible.
type PreferenceProfile struct {
	ballots []*Ballot
}

// NewPreferenceProfile creates a profile from ballots, typically produced by
// a ballot-file parser. It validates what the engine depends on: no nil
// ballots, no nil or negative weights, and no candidate appearing in more
// than one tie group of the same ballot.
func NewPreferenceProfile(ballots []*Ballot) (*PreferenceProfile, error) {
	for i, b := range ballots {
		if b == nil {
			return nil, errors.Wrap(ConfigurationError("nil ballot"), fmt.Sprintf("ballot at index:%v", i))
		}
		if b.Weight == nil || b.Weight.Sign() < 0 {
			return nil, errors.Wrap(ConfigurationError("ballot weight must be a non-negative rational"), fmt.Sprintf("ballot at index:%v", i))
		}
		seen := map[string]struct{}{}
		for _, group := range b.Ranking {
			for candidate := range group {
				if _, ok := seen[candidate]; ok {
					return nil, errors.Wrap(ConfigurationError(fmt.Sprintf("candidate:%v ranked more than once", candidate)), fmt.Sprintf("ballot at index:%v", i))
				}
				seen[candidate] = struct{}{}
			}
		}
	}
	return newProfile(ballots), nil
}

// newProfile skips validation; the engine uses it for per-round profiles
// whose ballots come out of a transfer or an elimination and are already
// well formed.
func newProfile(ballots []*Ballot) *PreferenceProfile {
	return &PreferenceProfile{ballots: ballots}
}

// Ballots returns the profile's ballots. Callers must treat them as
// read-only; transfer strategies copy before changing anything.
func (p *PreferenceProfile) Ballots() []*Ballot {
	return p.ballots
}

// NumBallots returns the number of ballots in the profile.
func (p *PreferenceProfile) NumBallots() int {
	return len(p.ballots)
}

// Candidates returns every candidate ranked on any ballot, in first-seen
// order. The order is what makes tally tie-breaks reproducible from run to
// run.
func (p *PreferenceProfile) Candidates() []string {
	var candidates []string
	seen := map[string]struct{}{}
	for _, b := range p.ballots {
		for _, group := range b.Ranking {
			// iterate tie groups in sorted order; map order would make
			// first-seen order differ between runs
			members := make([]string, 0, len(group))
			for candidate := range group {
				members = append(members, candidate)
			}
			sort.Strings(members)
			for _, candidate := range members {
				if _, ok := seen[candidate]; ok {
					continue
				}
				seen[candidate] = struct{}{}
				candidates = append(candidates, candidate)
			}
		}
	}
	return candidates
}

// TotalWeight returns the exact sum of all ballot weights.
func (p *PreferenceProfile) TotalWeight() *big.Rat {
	total := new(big.Rat)
	for _, b := range p.ballots {
		total.Add(total, b.Weight)
	}
	return total
}
