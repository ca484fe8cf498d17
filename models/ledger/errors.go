package ledger

import (
	"errors"
)

// Sentinel errors.
var (
	// ErrEmptyChain indicates a chain without any sealed blocks. It should
	// be unreachable after construction, since construction always seals
	// the genesis block; reaching it signals a defect, not a normal outcome.
	ErrEmptyChain = errors.New("empty chain")

	// ErrInvariantViolation indicates that the last sealed block does not
	// contain the pending transactions captured for it. It signals a logic
	// or concurrency defect and should never be retried.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrProofNotFound indicates that the proof-of-work search stopped
	// before finding an admissible proof, either because it was cancelled
	// or because it reached its attempt limit.
	ErrProofNotFound = errors.New("proof not found")
)
