package kura

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFractionalTransferConservation(t *testing.T) {
	// A holds 250 votes against a threshold of 200; the 50 surplus must
	// flow onwards exactly, split 3:2 across A's two ballot groups.
	ballots := []*Ballot{
		newTestBallot(150, "A", "B"),
		newTestBallot(100, "A", "C"),
		newTestBallot(40, "B", "A"),
	}
	votes := map[string]*big.Rat{
		"A": big.NewRat(250, 1),
		"B": big.NewRat(40, 1),
	}

	got := FractionalTransfer("A", ballots, votes, 200)
	require.Len(t, got, 3)

	// ballots that counted for A carry the scaled weights
	transferred := new(big.Rat).Add(got[0].Weight, got[1].Weight)
	assert.Zero(t, transferred.Cmp(big.NewRat(50, 1)), "transferred weight = %v, want 50", transferred)
	assert.Zero(t, got[0].Weight.Cmp(big.NewRat(30, 1)))
	assert.Zero(t, got[1].Weight.Cmp(big.NewRat(20, 1)))

	// everyone else keeps their weight
	assert.Zero(t, got[2].Weight.Cmp(big.NewRat(40, 1)))

	// A is struck from every ranking, so next preferences advance
	first, ok := got[0].FirstPreference()
	require.True(t, ok)
	assert.Equal(t, "B", first)
	first, ok = got[1].FirstPreference()
	require.True(t, ok)
	assert.Equal(t, "C", first)
	first, ok = got[2].FirstPreference()
	require.True(t, ok)
	assert.Equal(t, "B", first)
}

func TestFractionalTransferDoesNotMutateInput(t *testing.T) {
	ballots := []*Ballot{
		newTestBallot(150, "A", "B"),
		newTestBallot(40, "B", "A"),
	}
	votes := map[string]*big.Rat{
		"A": big.NewRat(150, 1),
		"B": big.NewRat(40, 1),
	}

	_ = FractionalTransfer("A", ballots, votes, 100)

	want := []*Ballot{
		newTestBallot(150, "A", "B"),
		newTestBallot(40, "B", "A"),
	}
	if diff := cmp.Diff(want, ballots, ratComparer); diff != "" {
		t.Errorf("input ballots changed (-want +got):\n%s", diff)
	}
}

func TestRemoveCandidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		ballots   []*Ballot
		want      []*Ballot
	}{
		{name: "singleton group is dropped",
			candidate: "A",
			ballots:   []*Ballot{newTestBallot(10, "A", "B", "C")},
			want:      []*Ballot{newTestBallot(10, "B", "C")},
		},
		{name: "tie group keeps its other members",
			candidate: "A",
			ballots: []*Ballot{
				NewBallot(big.NewRat(7, 1), NewCandidateSet("A", "B"), NewCandidateSet("C")),
			},
			want: []*Ballot{
				NewBallot(big.NewRat(7, 1), NewCandidateSet("B"), NewCandidateSet("C")),
			},
		},
		{name: "exhausted ballot keeps its weight",
			candidate: "A",
			ballots:   []*Ballot{newTestBallot(10, "A")},
			want:      []*Ballot{NewBallot(big.NewRat(10, 1))},
		},
		{name: "ballots without the candidate are unchanged",
			candidate: "Z",
			ballots:   []*Ballot{newTestBallot(10, "A", "B")},
			want:      []*Ballot{newTestBallot(10, "A", "B")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := make([]*Ballot, 0, len(tt.ballots))
			for _, b := range tt.ballots {
				before = append(before, b.Copy())
			}

			got := RemoveCandidate(tt.candidate, tt.ballots)
			// a ballot emptied by removal has a zero-length ranking,
			// which is as good as a nil one
			if diff := cmp.Diff(tt.want, got, ratComparer, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("RemoveCandidate() mismatch (-want +got):\n%s", diff)
			}
			// inputs must be left untouched
			if diff := cmp.Diff(before, tt.ballots, ratComparer); diff != "" {
				t.Errorf("input ballots changed (-want +got):\n%s", diff)
			}
		})
	}
}
