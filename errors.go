package kura

// ConfigurationError is returned when an election is constructed with
// invalid inputs, eg a zero seat count or an empty preference profile.
type ConfigurationError string

func (e ConfigurationError) Error() string {
	return string(e)
}

// AlreadyDecidedError is returned when a caller tries to advance an
// election whose seats have all been filled.
type AlreadyDecidedError string

func (e AlreadyDecidedError) Error() string {
	return string(e)
}

// RoundNotFoundError is returned when a caller asks for the outcome of a
// round number that does not exist in the election's history.
type RoundNotFoundError string

func (e RoundNotFoundError) Error() string {
	return string(e)
}

// NoPriorRoundError is returned when a caller asks how rankings changed on
// round 0, which has no previous round to compare against.
type NoPriorRoundError string

func (e NoPriorRoundError) Error() string {
	return string(e)
}
