package kura

import (
	"math/big"
	"sort"
)

// CandidateVotes pairs a candidate with their first-place weighted vote
// count for one round.
type CandidateVotes struct {
	Candidate string
	Votes     *big.Rat
}

// ComputeVotes computes first-place votes for the given still-contesting
// candidates: each candidate gets the sum of weights of the ballots whose
// current first preference is exactly that candidate. Exhausted ballots and
// ballots whose top group is a genuine tie count for no one.
//
// The result is ordered by descending vote weight; candidates with equal
// weight keep their order in the candidates argument, so the ordering is
// fully deterministic. The function is pure: neither candidates nor ballots
// are modified.
func ComputeVotes(candidates []string, ballots []*Ballot) []CandidateVotes {
	votes := make(map[string]*big.Rat, len(candidates))
	for _, candidate := range candidates {
		votes[candidate] = new(big.Rat)
	}
	for _, b := range ballots {
		first, ok := b.FirstPreference()
		if !ok {
			continue
		}
		if w, contesting := votes[first]; contesting {
			w.Add(w, b.Weight)
		}
	}

	ordered := make([]CandidateVotes, 0, len(candidates))
	for _, candidate := range candidates {
		ordered = append(ordered, CandidateVotes{Candidate: candidate, Votes: votes[candidate]})
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Votes.Cmp(ordered[j].Votes) > 0
	})
	return ordered
}
