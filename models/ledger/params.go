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

package ledger

const (
	// GenesisProof and GenesisHash are the fixed sentinel values carried by
	// the genesis block, which is exempt from proof-of-work and from linkage
	// to a preceding block.
	GenesisProof uint64 = 100
	GenesisHash         = "1"

	// Difficulty is the number of leading zero characters required on the
	// hexadecimal digest of a winning proof-of-work guess.
	Difficulty = 4
)

// Fee transaction parameters for the administrative miner fee.
const (
	FeeSender            = "Blockchain"
	FeeRecipient         = "Us"
	FeeAmount    float64 = 1
)
