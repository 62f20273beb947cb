package kura

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// STV runs single transferable vote elections; with one seat it degenerates
// to instant-runoff voting. The engine owns the initial profile, the seat
// count, the transfer strategy and the full chain of RoundRecords, and
// advances the election one round at a time.
//
// Historical records may be read from any goroutine at any time; they are
// immutable. Advancing rounds moves the engine's current-round pointer, so
// that path is guarded.
type STV struct {
	// the mux protects current and rounds while a round is being advanced.
	sync.Mutex

	id       uuid.UUID
	profile  *PreferenceProfile
	transfer TransferFunc
	seats    int
	tieBreak TieBreak
	logger   *zap.Logger

	// threshold is the Droop quota, computed once from the initial
	// profile's total weight. It does not change as ballots are
	// transformed in later rounds.
	threshold    int64
	thresholdRat *big.Rat

	current *RoundRecord
	// rounds is an append-only index of the record chain: rounds[n] is
	// round n. Lookup by number is direct indexing instead of walking
	// Previous links.
	rounds []*RoundRecord
}

// Option configures an STV engine at construction.
type Option func(*STV)

// WithLogger sets the logger the engine writes one structured event per
// round to. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *STV) {
		e.logger = logger
	}
}

// WithTieBreak sets the policy used to pick which of several candidates
// tied at the lowest tally is eliminated. The default is RandomTieBreak.
func WithTieBreak(tieBreak TieBreak) Option {
	return func(e *STV) {
		e.tieBreak = tieBreak
	}
}

// NewSTV creates an election engine for the given profile, surplus-transfer
// strategy and number of seats. It returns a ConfigurationError if seats is
// not positive, the profile is empty, the strategy is nil, or there are
// fewer candidates than seats.
func NewSTV(profile *PreferenceProfile, transfer TransferFunc, seats int, opts ...Option) (*STV, error) {
	if seats < 1 {
		return nil, ConfigurationError(fmt.Sprintf("number of seats:%v is less than required minimum of:1", seats))
	}
	if profile == nil || profile.NumBallots() == 0 {
		return nil, ConfigurationError("preference profile has no ballots")
	}
	if transfer == nil {
		return nil, ConfigurationError("a transfer strategy is required")
	}
	candidates := profile.Candidates()
	if len(candidates) < seats {
		return nil, ConfigurationError(fmt.Sprintf("number of candidates:%v is less than number of seats:%v", len(candidates), seats))
	}

	threshold := droopThreshold(profile.TotalWeight(), seats)
	e := &STV{
		id:           uuid.New(),
		profile:      profile,
		transfer:     transfer,
		seats:        seats,
		tieBreak:     RandomTieBreak(),
		logger:       zap.NewNop(),
		threshold:    threshold,
		thresholdRat: big.NewRat(threshold, 1),
	}
	for _, opt := range opts {
		opt(e)
	}

	// round 0 is the state before any action, remaining ordered by
	// descending first-place tally.
	remaining := make([]string, 0, len(candidates))
	for _, cv := range ComputeVotes(candidates, profile.Ballots()) {
		remaining = append(remaining, cv.Candidate)
	}
	e.current = &RoundRecord{Round: 0, Remaining: remaining, Profile: profile}
	e.rounds = []*RoundRecord{e.current}

	e.logger.Info("election created",
		zap.String("election", e.id.String()),
		zap.Int("seats", seats),
		zap.Int("candidates", len(candidates)),
		zap.Int64("threshold", threshold),
	)
	return e, nil
}

// droopThreshold computes the Droop quota floor(total/(seats+1)) + 1 with
// exact integer arithmetic on the rational total; a float truncation here
// would corrupt elections whose totals sit on the boundary.
func droopThreshold(total *big.Rat, seats int) int64 {
	den := new(big.Int).Mul(total.Denom(), big.NewInt(int64(seats)+1))
	quota := new(big.Int).Div(total.Num(), den)
	return quota.Int64() + 1
}

// ElectionID returns the engine's unique identifier, the stable key its log
// events are tagged with.
func (e *STV) ElectionID() uuid.UUID {
	return e.id
}

// Seats returns the number of seats the election fills.
func (e *STV) Seats() int {
	return e.seats
}

// Threshold returns the Droop quota; a candidate whose tally reaches it is
// elected.
func (e *STV) Threshold() int64 {
	return e.threshold
}

// InitialProfile returns the profile the election was created with.
func (e *STV) InitialProfile() *PreferenceProfile {
	return e.profile
}

// CurrentRound returns the latest RoundRecord.
func (e *STV) CurrentRound() *RoundRecord {
	e.Lock()
	defer e.Unlock()
	return e.current
}

// Round returns the record for the given round number, or a
// RoundNotFoundError if no such round has been run.
func (e *STV) Round(n int) (*RoundRecord, error) {
	e.Lock()
	defer e.Unlock()
	if n < 0 || n >= len(e.rounds) {
		return nil, RoundNotFoundError(fmt.Sprintf("round number:%v out of range, election has run %v round(s)", n, len(e.rounds)))
	}
	return e.rounds[n], nil
}

// NextRound reports whether the election still has rounds to run, ie whether
// fewer candidates have been elected than there are seats.
func (e *STV) NextRound() bool {
	e.Lock()
	defer e.Unlock()
	return e.nextRound()
}

func (e *STV) nextRound() bool {
	return len(e.current.AllWinners()) != e.seats
}

// RunStep advances the election by exactly one round and returns the new
// RoundRecord. It returns an AlreadyDecidedError if all seats are filled.
// RunStep must not be called concurrently on the same engine.
func (e *STV) RunStep() (*RoundRecord, error) {
	e.Lock()
	defer e.Unlock()
	return e.step()
}

// RunElection runs rounds until every seat is filled and returns the final
// RoundRecord. It returns an AlreadyDecidedError if the election was decided
// before the call.
func (e *STV) RunElection() (*RoundRecord, error) {
	e.Lock()
	defer e.Unlock()

	if !e.nextRound() {
		return nil, AlreadyDecidedError(fmt.Sprintf("election already decided, number of elected candidates equals number of seats:%v", e.seats))
	}
	for e.nextRound() {
		if _, err := e.step(); err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("unable to run round:%v", e.current.Round+1))
		}
	}
	return e.current, nil
}

// step computes one round. The current-round pointer only moves after the
// whole round has been computed, so a failed call leaves the engine exactly
// as it was.
func (e *STV) step() (*RoundRecord, error) {
	if !e.nextRound() {
		return nil, AlreadyDecidedError(fmt.Sprintf("election already decided, number of elected candidates equals number of seats:%v", e.seats))
	}

	current := e.current
	remaining := append([]string(nil), current.Remaining...)
	ballots := current.Profile.Ballots()
	tally := ComputeVotes(remaining, ballots)

	var (
		elected     []string
		eliminated  []string
		winnerVotes map[string][]*Ballot
		action      string
	)

	switch {
	case len(remaining) == e.seats-len(current.AllWinners()):
		// the remaining candidates exactly fill the remaining seats;
		// elect them all, in descending tally order, and the contest
		// is over.
		action = "mass-elect"
		for _, cv := range tally {
			elected = append(elected, cv.Candidate)
		}
		remaining = nil
		ballots = nil

	case tally[0].Votes.Cmp(e.thresholdRat) >= 0:
		// elect every candidate at or above the threshold, not just
		// the leader. Transfers compose sequentially and all of this
		// round's winners are judged against the pre-round tally.
		action = "threshold-elect"
		votes := make(map[string]*big.Rat, len(tally))
		for _, cv := range tally {
			votes[cv.Candidate] = cv.Votes
		}
		winnerVotes = map[string][]*Ballot{}
		for _, cv := range tally {
			if cv.Votes.Cmp(e.thresholdRat) < 0 {
				continue
			}
			winnerVotes[cv.Candidate] = electingBallots(cv.Candidate, ballots)
			elected = append(elected, cv.Candidate)
			remaining = removeCandidateFrom(remaining, cv.Candidate)
			ballots = e.transfer(cv.Candidate, ballots, votes, e.threshold)
		}

	default:
		// no one met the threshold; eliminate a single candidate with
		// the least first-place votes.
		action = "eliminate"
		lowest := tally[len(tally)-1].Votes
		var tied []string
		for _, cv := range tally {
			if cv.Votes.Cmp(lowest) == 0 {
				tied = append(tied, cv.Candidate)
			}
		}
		loser := e.tieBreak(tied)
		eliminated = append(eliminated, loser)
		ballots = RemoveCandidate(loser, ballots)
		remaining = removeCandidateFrom(remaining, loser)
	}

	next := &RoundRecord{
		Round:       current.Round + 1,
		Elected:     elected,
		Eliminated:  eliminated,
		Remaining:   remaining,
		Profile:     newProfile(ballots),
		WinnerVotes: winnerVotes,
		Previous:    current,
	}
	e.current = next
	e.rounds = append(e.rounds, next)

	e.logger.Info("round complete",
		zap.String("election", e.id.String()),
		zap.Int("round", next.Round),
		zap.String("action", action),
		zap.Strings("elected", elected),
		zap.Strings("eliminated", eliminated),
		zap.Int("remaining", len(remaining)),
	)
	return next, nil
}

// electingBallots returns copies of the ballots that currently count for
// candidate; they are recorded on the RoundRecord for audit.
func electingBallots(candidate string, ballots []*Ballot) []*Ballot {
	var electing []*Ballot
	for _, b := range ballots {
		if first, ok := b.FirstPreference(); ok && first == candidate {
			electing = append(electing, b.Copy())
		}
	}
	return electing
}

func removeCandidateFrom(candidates []string, candidate string) []string {
	kept := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != candidate {
			kept = append(kept, c)
		}
	}
	return kept
}
