package kura

import (
	"math/big"
)

// CandidateSet is one tie group within a ballot's ranking.
// A voter who cannot separate two candidates puts both in the same group;
// a group of one is an ordinary, untied preference.
type CandidateSet map[string]struct{}

// NewCandidateSet creates a tie group holding the given candidates.
func NewCandidateSet(members ...string) CandidateSet {
	s := make(CandidateSet, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Has reports whether candidate is a member of the group.
func (s CandidateSet) Has(candidate string) bool {
	_, ok := s[candidate]
	return ok
}

// Sole returns the group's only member.
// ok is false when the group is empty or holds a genuine tie.
func (s CandidateSet) Sole() (string, bool) {
	if len(s) != 1 {
		return "", false
	}
	for m := range s {
		return m, true
	}
	return "", false
}

// Equal reports whether two groups hold exactly the same candidates.
func (s CandidateSet) Equal(other CandidateSet) bool {
	if len(s) != len(other) {
		return false
	}
	for m := range s {
		if !other.Has(m) {
			return false
		}
	}
	return true
}

func (s CandidateSet) copy() CandidateSet {
	c := make(CandidateSet, len(s))
	for m := range s {
		c[m] = struct{}{}
	}
	return c
}

// Ballot is a single voter's ranked preference, ties permitted, carrying a
// transferable weight. Ranking is ordered most preferred first; each element
// is a tie group. Weight is an exact non-negative rational; surplus
// transfers scale it by a fraction and exactness is what keeps repeated
// transfers from drifting.
//
// A candidate may appear in at most one tie group of a ballot.
type Ballot struct {
	Ranking []CandidateSet
	Weight  *big.Rat
}

// NewBallot creates a ballot with the given weight and preference order.
func NewBallot(weight *big.Rat, ranking ...CandidateSet) *Ballot {
	return &Ballot{Ranking: ranking, Weight: weight}
}

// FirstPreference returns the candidate a ballot currently counts for.
// ok is false for an exhausted ballot(empty ranking) and for a ballot whose
// top group is a genuine tie; neither counts for anyone.
func (b *Ballot) FirstPreference() (string, bool) {
	if len(b.Ranking) == 0 {
		return "", false
	}
	return b.Ranking[0].Sole()
}

// Copy returns a ballot sharing nothing with the original.
// Transfer strategies operate on copies so that the profiles held by earlier
// rounds are never touched.
func (b *Ballot) Copy() *Ballot {
	ranking := make([]CandidateSet, 0, len(b.Ranking))
	for _, group := range b.Ranking {
		ranking = append(ranking, group.copy())
	}
	return &Ballot{Ranking: ranking, Weight: new(big.Rat).Set(b.Weight)}
}
