package kura

import (
	"fmt"
)

// RoundRecord is an immutable snapshot of one round's outcome. Records form
// a backward-linked chain through Previous; exactly one record in an
// election has Previous == nil, the round 0 state before any action. The
// engine never mutates a record after constructing it, so holding on to an
// old record and reading it while the election advances is always safe.
type RoundRecord struct {
	// Round is the round number, monotonically increasing from 0.
	Round int
	// Elected holds the candidates elected this round, in election order.
	Elected []string
	// Eliminated holds the candidates eliminated this round.
	Eliminated []string
	// Remaining holds the candidates still contesting after this round.
	Remaining []string
	// Profile is the preference profile as it stands after this round's
	// transfers and removals. It is owned by this record alone.
	Profile *PreferenceProfile
	// WinnerVotes maps each candidate elected this round to copies of the
	// ballots that elected them, kept for auditability.
	WinnerVotes map[string][]*Ballot
	// Previous is the prior round's record, nil only for round 0.
	Previous *RoundRecord
}

// Outcome is the elected/eliminated pair of a single round, as returned by
// RoundOutcome.
type Outcome struct {
	Elected    []string
	Eliminated []string
}

// AllWinners returns every candidate elected in any round up to and
// including this one, in order of first elected to last elected.
func (r *RoundRecord) AllWinners() []string {
	if r.Previous == nil {
		return append([]string(nil), r.Elected...)
	}
	return append(r.Previous.AllWinners(), r.Elected...)
}

// AllEliminated returns every candidate eliminated in any round up to and
// including this one, in order of last eliminated to first eliminated.
func (r *RoundRecord) AllEliminated() []string {
	eliminated := make([]string, 0, len(r.Eliminated))
	for i := len(r.Eliminated) - 1; i >= 0; i-- {
		eliminated = append(eliminated, r.Eliminated[i])
	}
	if r.Previous != nil {
		eliminated = append(eliminated, r.Previous.AllEliminated()...)
	}
	return eliminated
}

// Rankings returns every candidate in ranking order as of the end of this
// round: winners first in election order, then the still-contesting
// candidates, then the eliminated candidates with the most recently
// eliminated ranked highest. The result is a permutation of the full
// candidate set.
func (r *RoundRecord) Rankings() []string {
	rankings := r.AllWinners()
	rankings = append(rankings, r.Remaining...)
	return append(rankings, r.AllEliminated()...)
}

// RoundOutcome walks the chain back to the given round number and returns
// who was elected and eliminated in it. It returns a RoundNotFoundError if
// the chain is exhausted without a match.
func (r *RoundRecord) RoundOutcome(round int) (Outcome, error) {
	if r.Round == round {
		return Outcome{Elected: r.Elected, Eliminated: r.Eliminated}, nil
	}
	if r.Previous != nil {
		return r.Previous.RoundOutcome(round)
	}
	return Outcome{}, RoundNotFoundError(fmt.Sprintf("round number:%v out of range", round))
}

// ChangedRankings compares this round's Rankings against the previous
// round's, position by position, and returns for every candidate whose
// position differs a mapping to their {previous index, current index} pair.
// An unchanged ranking yields an empty map. Calling it on round 0 returns a
// NoPriorRoundError.
func (r *RoundRecord) ChangedRankings() (map[string][2]int, error) {
	if r.Previous == nil {
		return nil, NoPriorRoundError("this is the first round, there is no previous ranking to compare")
	}

	previous := map[string]int{}
	for index, candidate := range r.Previous.Rankings() {
		previous[candidate] = index
	}
	changes := map[string][2]int{}
	for index, candidate := range r.Rankings() {
		if previous[candidate] != index {
			changes[candidate] = [2]int{previous[candidate], index}
		}
	}
	return changes, nil
}
