package kura

import (
	"math/big"
)

/*
TransferFunc is the surplus-transfer strategy that callers supply to NewSTV.

When a candidate's tally reaches the threshold they are elected, and the
weight they hold beyond the threshold is not wasted: the strategy decides how
that surplus flows to the next-ranked candidates. Given the winner, the
current ballots, the round's tally and the election threshold, it returns the
ballots as they should stand afterwards, with the winner removed from every
ranking so that each ballot's next tie group moves up to first place.

A TransferFunc must never modify the ballots it is given; it returns new
ones. The engine applies strategies sequentially when several candidates
clear the threshold in the same round, reusing that round's tally for each.

FractionalTransfer is the strategy shipped with this package. Alternative
rules (whole-number transfer, weighted-inclusive, Meek) can be substituted
without touching the engine:

	election, err := kura.NewSTV(profile, myWholeNumberTransfer, seats)
*/
type TransferFunc func(winner string, ballots []*Ballot, votes map[string]*big.Rat, threshold int64) []*Ballot

// FractionalTransfer redistributes a winner's surplus by scaling the weight
// of every ballot that counted for the winner by
// (tally - threshold) / tally, then removing the winner from all rankings.
// The total weight flowing to each next-preference candidate is proportional
// to the surplus, exactly: arithmetic is rational throughout. Ballots
// exhausted by the removal keep their scaled weight but no longer count for
// anyone.
func FractionalTransfer(winner string, ballots []*Ballot, votes map[string]*big.Rat, threshold int64) []*Ballot {
	winnerVotes := votes[winner]
	transferValue := new(big.Rat).Sub(winnerVotes, big.NewRat(threshold, 1))
	transferValue.Quo(transferValue, winnerVotes)

	scaled := make([]*Ballot, 0, len(ballots))
	for _, b := range ballots {
		weight := new(big.Rat).Set(b.Weight)
		if first, ok := b.FirstPreference(); ok && first == winner {
			weight.Mul(weight, transferValue)
		}
		scaled = append(scaled, &Ballot{Ranking: b.Ranking, Weight: weight})
	}
	return RemoveCandidate(winner, scaled)
}

// RemoveCandidate returns copies of ballots with the candidate struck from
// every tie group; groups left empty are dropped so the next preference
// advances. The given ballots are left untouched.
func RemoveCandidate(candidate string, ballots []*Ballot) []*Ballot {
	updated := make([]*Ballot, 0, len(ballots))
	for _, b := range ballots {
		ranking := make([]CandidateSet, 0, len(b.Ranking))
		for _, group := range b.Ranking {
			g := group.copy()
			delete(g, candidate)
			if len(g) > 0 {
				ranking = append(ranking, g)
			}
		}
		updated = append(updated, &Ballot{Ranking: ranking, Weight: new(big.Rat).Set(b.Weight)})
	}
	return updated
}
