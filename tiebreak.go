package kura

import (
	"math/rand"
)

// TieBreak selects which of several candidates tied at the lowest tally is
// eliminated. tied is ordered by the round's tally order and is never empty.
// Supplied to NewSTV via WithTieBreak; the policy can differ by locality.
type TieBreak func(tied []string) string

// RandomTieBreak eliminates one of the tied candidates uniformly at random.
// This is the default policy. Note that it makes election results
// non-reproducible between runs whenever an elimination tie actually occurs;
// audit-sensitive deployments should inject a deterministic policy, or a
// policy backed by a recorded seed, via WithTieBreak.
func RandomTieBreak() TieBreak {
	return func(tied []string) string {
		return tied[rand.Intn(len(tied))]
	}
}

// FirstListedTieBreak eliminates the first candidate in tally order, ie the
// one that was ahead least recently. It is deterministic, which is what
// tests and reproducible reporting want.
func FirstListedTieBreak(tied []string) string {
	return tied[0]
}
