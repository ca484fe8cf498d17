package mocks

import (
	"context"
	"testing"

	"github.com/shashank-khanna/blockchain/models/ledger"
)

type Prover struct {
	DigestFunc   func(block ledger.Block) (string, error)
	ValidateFunc func(lastProof uint64, proof uint64, lastHash string) bool
	SearchFunc   func(ctx context.Context, lastProof uint64, lastHash string) (uint64, error)
}

func BaselineProver(t *testing.T) *Prover {
	t.Helper()

	p := Prover{
		DigestFunc: func(ledger.Block) (string, error) {
			return GenericHash, nil
		},
		ValidateFunc: func(uint64, uint64, string) bool {
			return true
		},
		SearchFunc: func(context.Context, uint64, string) (uint64, error) {
			return GenericProof, nil
		},
	}

	return &p
}

func (p *Prover) Digest(block ledger.Block) (string, error) {
	return p.DigestFunc(block)
}

func (p *Prover) Validate(lastProof uint64, proof uint64, lastHash string) bool {
	return p.ValidateFunc(lastProof, proof, lastHash)
}

func (p *Prover) Search(ctx context.Context, lastProof uint64, lastHash string) (uint64, error) {
	return p.SearchFunc(ctx, lastProof, lastHash)
}
