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
	"context"

	"github.com/shashank-khanna/blockchain/models/ledger"
)

// Prover represents something that can digest blocks and run the
// proof-of-work admission puzzle.
type Prover interface {
	Digest(block ledger.Block) (string, error)
	Validate(lastProof uint64, proof uint64, lastHash string) bool
	Search(ctx context.Context, lastProof uint64, lastHash string) (uint64, error)
}
