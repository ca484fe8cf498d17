// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package work

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/shashank-khanna/blockchain/models/ledger"
)

// target is the prefix a winning guess digest must carry.
var target = strings.Repeat("0", ledger.Difficulty)

// Prover provides block digests and the proof-of-work admission puzzle. It
// holds no mutable state; all of its operations are pure functions of their
// inputs.
type Prover struct {
	codec Codec
	limit uint64
}

// NewProver creates a new prover that uses the given codec for the canonical
// block serialization underneath digests.
func NewProver(codec Codec, options ...func(*Config)) *Prover {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	p := Prover{
		codec: codec,
		limit: cfg.AttemptLimit,
	}

	return &p
}

// Digest computes the SHA-256 digest of the block's canonical serialization
// and returns it as a lowercase hexadecimal string. The same block value
// always yields the same digest.
func (p *Prover) Digest(block ledger.Block) (string, error) {
	data, err := p.codec.Encode(block)
	if err != nil {
		return "", fmt.Errorf("could not encode block: %w", err)
	}
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:]), nil
}

// Validate checks whether the given proof is admissible against the previous
// block's proof and digest. The three values are concatenated in fixed order,
// hashed with SHA-256 and the proof wins if the digest starts with the
// required number of zero characters.
func (p *Prover) Validate(lastProof uint64, proof uint64, lastHash string) bool {
	guess := strconv.FormatUint(lastProof, 10) + strconv.FormatUint(proof, 10) + lastHash
	digest := sha256.Sum256([]byte(guess))
	return hex.EncodeToString(digest[:])[:ledger.Difficulty] == target
}

// Search tries candidate proofs in increasing order from zero and returns the
// first one that validates against the given previous proof and digest. The
// search order is fixed, so identical inputs always yield the same proof. The
// search stops early when the context is cancelled or when the configured
// attempt limit runs out, in which case it fails with ErrProofNotFound.
func (p *Prover) Search(ctx context.Context, lastProof uint64, lastHash string) (uint64, error) {
	for proof := uint64(0); p.limit == 0 || proof < p.limit; proof++ {
		select {
		case <-ctx.Done():
			return 0, fmt.Errorf("search cancelled (%s): %w", ctx.Err(), ledger.ErrProofNotFound)
		default:
		}
		if p.Validate(lastProof, proof, lastHash) {
			return proof, nil
		}
	}
	return 0, fmt.Errorf("attempt limit reached (limit: %d): %w", p.limit, ledger.ErrProofNotFound)
}
