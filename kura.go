/*
Package kura is a pure Go implementation of single transferable vote (STV) elections.
It's name is derived from the Swahili word for a vote/ballot.

"The single transferable vote achieves proportional representation by
transferring two kinds of otherwise wasted votes: those cast for candidates
with no chance of election, and those surplus to the quota needed by
already-elected candidates." - Nicolaus Tideman, Collective Decisions and Voting.

An election is driven one round at a time. Each round the engine tallies
first-place votes for the still-contesting candidates and then does exactly
one of three things: elects everyone left (when the remaining candidates
exactly fill the remaining seats), elects every candidate at or above the
Droop quota and redistributes their surplus weight, or eliminates the
candidate with the fewest votes. Every round produces an immutable
RoundRecord chained to the previous one, so the full history of the election
stays queryable after the fact.

Example usage:

	ballots := []*kura.Ballot{
		kura.NewBallot(big.NewRat(250, 1), kura.NewCandidateSet("A"), kura.NewCandidateSet("B"), kura.NewCandidateSet("C")),
		kura.NewBallot(big.NewRat(200, 1), kura.NewCandidateSet("B"), kura.NewCandidateSet("A"), kura.NewCandidateSet("C")),
		kura.NewBallot(big.NewRat(100, 1), kura.NewCandidateSet("C"), kura.NewCandidateSet("B"), kura.NewCandidateSet("A")),
	}

	profile, err := kura.NewPreferenceProfile(ballots)
	if err != nil {
		panic(err)
	}

	// one seat makes this an instant-runoff(IRV) election.
	election, err := kura.NewSTV(profile, kura.FractionalTransfer, 1)
	if err != nil {
		panic(err)
	}

	record, err := election.RunElection()
	if err != nil {
		panic(err)
	}
	fmt.Printf("winners: %v\n", record.AllWinners())
	fmt.Printf("final ranking: %v\n", record.Rankings())

All vote weights are exact rationals(math/big) so that repeated fractional
surplus transfers sum without drift; the engine never touches floating point.
*/
package kura
