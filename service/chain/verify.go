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

package chain

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/shashank-khanna/blockchain/models/ledger"
)

// Verify walks the full chain and checks its integrity: the genesis block
// carries the fixed sentinels, indices increase by exactly one, every block
// links to the digest of its predecessor and every mined proof validates
// against it. All violations are collected and returned together.
func (c *Chain) Verify() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if len(c.blocks) == 0 {
		return ledger.ErrEmptyChain
	}

	var result *multierror.Error

	genesis := c.blocks[0]
	if genesis.Index != 1 {
		result = multierror.Append(result, fmt.Errorf("invalid genesis index (have: %d, want: %d)", genesis.Index, 1))
	}
	if genesis.Proof != ledger.GenesisProof {
		result = multierror.Append(result, fmt.Errorf("invalid genesis proof (have: %d, want: %d)", genesis.Proof, ledger.GenesisProof))
	}
	if genesis.PreviousHash != ledger.GenesisHash {
		result = multierror.Append(result, fmt.Errorf("invalid genesis previous hash (have: %s, want: %s)", genesis.PreviousHash, ledger.GenesisHash))
	}

	for i := 1; i < len(c.blocks); i++ {
		block := c.blocks[i]
		previous := c.blocks[i-1]

		if block.Index != previous.Index+1 {
			result = multierror.Append(result, fmt.Errorf("invalid index (block: %d, have: %d, want: %d)", i, block.Index, previous.Index+1))
		}

		digest, err := c.prove.Digest(previous)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("could not digest block %d: %w", i-1, err))
			continue
		}
		if block.PreviousHash != digest {
			result = multierror.Append(result, fmt.Errorf("broken linkage (block: %d, have: %s, want: %s)", i, block.PreviousHash, digest))
		}
		if !c.prove.Validate(previous.Proof, block.Proof, block.PreviousHash) {
			result = multierror.Append(result, fmt.Errorf("inadmissible proof (block: %d, proof: %d)", i, block.Proof))
		}
	}

	return result.ErrorOrNil()
}
