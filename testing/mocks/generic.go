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

package mocks

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/shashank-khanna/blockchain/models/ledger"
)

// Global variables that can be used for testing. They are non-nil valid
// values for the types commonly needed to test ledger components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericBytes = []byte(`test`)

	GenericProof = uint64(42)

	// GenericHash is the SHA-256 digest of GenericBytes.
	GenericHash = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

	GenericTime = time.Date(1972, 11, 12, 13, 14, 15, 16, time.UTC)
)

// GenericTransaction returns a deterministic transaction fixture for the
// given index.
func GenericTransaction(index int) ledger.Transaction {
	return ledger.Transaction{
		Sender:    fmt.Sprintf("sender-%d", index),
		Recipient: fmt.Sprintf("recipient-%d", index),
		Amount:    float64(index) + 0.5,
	}
}

// GenericTransactions returns the given number of deterministic transaction
// fixtures.
func GenericTransactions(count int) []ledger.Transaction {
	transactions := make([]ledger.Transaction, 0, count)
	for i := 0; i < count; i++ {
		transactions = append(transactions, GenericTransaction(i))
	}
	return transactions
}

// GenericBlock returns a deterministic block fixture with the given index.
func GenericBlock(index uint64) ledger.Block {
	return ledger.Block{
		Index:        index,
		Timestamp:    GenericTime,
		Transactions: GenericTransactions(3),
		Proof:        GenericProof,
		PreviousHash: GenericHash,
	}
}
