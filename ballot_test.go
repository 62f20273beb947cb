package kura

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateSet(t *testing.T) {
	tied := NewCandidateSet("A", "B")
	assert.True(t, tied.Has("A"))
	assert.True(t, tied.Has("B"))
	assert.False(t, tied.Has("C"))

	_, ok := tied.Sole()
	assert.False(t, ok, "a genuine tie has no sole member")

	sole, ok := NewCandidateSet("A").Sole()
	require.True(t, ok)
	assert.Equal(t, "A", sole)

	_, ok = NewCandidateSet().Sole()
	assert.False(t, ok)

	assert.True(t, tied.Equal(NewCandidateSet("B", "A")))
	assert.False(t, tied.Equal(NewCandidateSet("A")))
	assert.False(t, tied.Equal(NewCandidateSet("A", "C")))
}

func TestBallotFirstPreference(t *testing.T) {
	tests := []struct {
		name   string
		ballot *Ballot
		want   string
		wantOK bool
	}{
		{name: "untied first preference",
			ballot: newTestBallot(1, "A", "B"),
			want:   "A", wantOK: true,
		},
		{name: "exhausted ballot",
			ballot: NewBallot(big.NewRat(1, 1)),
			wantOK: false,
		},
		{name: "leading tie",
			ballot: NewBallot(big.NewRat(1, 1), NewCandidateSet("A", "B"), NewCandidateSet("C")),
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ballot.FirstPreference()
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBallotCopy(t *testing.T) {
	original := NewBallot(big.NewRat(5, 2), NewCandidateSet("A", "B"), NewCandidateSet("C"))
	copied := original.Copy()

	// changing the copy must not reach the original
	copied.Weight.Mul(copied.Weight, big.NewRat(1, 5))
	delete(copied.Ranking[0], "A")

	assert.Zero(t, original.Weight.Cmp(big.NewRat(5, 2)))
	assert.True(t, original.Ranking[0].Equal(NewCandidateSet("A", "B")))
	assert.True(t, copied.Ranking[0].Equal(NewCandidateSet("B")))
}
