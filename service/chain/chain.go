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
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/shashank-khanna/blockchain/models/ledger"
)

// Chain is the in-memory append-only ledger. It owns the ordered sequence of
// sealed blocks and the pool of pending transactions, and it keeps the two
// consistent: sealing snapshots the pool into a new proof-of-work-backed
// block and clears it afterwards.
//
// All operations are serialized under a single mutex, so concurrent
// submitters cannot lose transactions during mining: the snapshot-then-clear
// sequence inside Seal is atomic with respect to concurrent Queue calls.
type Chain struct {
	log     zerolog.Logger
	prove   Prover
	pending *Pool
	blocks  []ledger.Block
	mutex   *sync.Mutex
}

// New creates a new chain with an empty pending pool and immediately seals
// the genesis block, which carries the fixed sentinel proof and previous
// hash instead of a mined proof.
func New(log zerolog.Logger, prove Prover) (*Chain, error) {

	c := Chain{
		log:     log.With().Str("component", "chain").Logger(),
		prove:   prove,
		pending: NewPool(),
		blocks:  make([]ledger.Block, 0, 1),
		mutex:   &sync.Mutex{},
	}

	_, err := c.seal(context.Background(), true)
	if err != nil {
		return nil, fmt.Errorf("could not seal genesis block: %w", err)
	}

	return &c, nil
}

// Size returns the number of sealed blocks.
func (c *Chain) Size() uint64 {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return uint64(len(c.blocks))
}

// Last returns the most recently sealed block. It fails with ErrEmptyChain
// if no block has been sealed, which should be unreachable after
// construction.
func (c *Chain) Last() (ledger.Block, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.last()
}

// Queue creates a transaction from the given fields, appends it to the
// pending pool in arrival order and returns it. The fields are accepted as
// given; there is no validation of identifiers or amounts.
func (c *Chain) Queue(sender string, recipient string, amount float64) ledger.Transaction {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	transaction := ledger.Transaction{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	}
	c.pending.Add(transaction)

	c.log.Debug().
		Str("sender", sender).
		Str("recipient", recipient).
		Float64("amount", amount).
		Int("pending", c.pending.Len()).
		Msg("transaction queued")

	return transaction
}

// QueueFee enqueues the administrative miner-fee transaction.
func (c *Chain) QueueFee() ledger.Transaction {
	return c.Queue(ledger.FeeSender, ledger.FeeRecipient, ledger.FeeAmount)
}

// Seal groups all pending transactions into a new block backed by a freshly
// mined proof, appends it to the chain and clears the pending pool. The
// proof-of-work search is CPU-bound and blocks until a proof is found or the
// given context is cancelled.
func (c *Chain) Seal(ctx context.Context) (ledger.Block, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.seal(ctx, false)
}

// Blocks returns a copy of the full chain of sealed blocks, in order. The
// returned blocks are a read-only view; callers must not mutate their
// transaction lists.
func (c *Chain) Blocks() []ledger.Block {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	blocks := make([]ledger.Block, len(c.blocks))
	copy(blocks, c.blocks)
	return blocks
}

func (c *Chain) seal(ctx context.Context, genesis bool) (ledger.Block, error) {

	proof := ledger.GenesisProof
	previous := ledger.GenesisHash
	if !genesis {
		last, err := c.last()
		if err != nil {
			return ledger.Block{}, fmt.Errorf("could not get last block: %w", err)
		}
		previous, err = c.prove.Digest(last)
		if err != nil {
			return ledger.Block{}, fmt.Errorf("could not digest last block: %w", err)
		}
		proof, err = c.prove.Search(ctx, last.Proof, previous)
		if err != nil {
			return ledger.Block{}, fmt.Errorf("could not find proof: %w", err)
		}
	}

	block := ledger.Block{
		Index:        uint64(len(c.blocks)) + 1,
		Timestamp:    time.Now().UTC(),
		Transactions: c.pending.All(),
		Proof:        proof,
		PreviousHash: previous,
	}
	c.blocks = append(c.blocks, block)

	err := c.flush()
	if err != nil {
		return ledger.Block{}, fmt.Errorf("could not flush pending pool: %w", err)
	}

	c.log.Info().
		Uint64("index", block.Index).
		Int("transactions", len(block.Transactions)).
		Uint64("proof", proof).
		Str("previous", previous).
		Msg("block sealed")

	return block, nil
}

func (c *Chain) last() (ledger.Block, error) {
	if len(c.blocks) == 0 {
		return ledger.Block{}, ledger.ErrEmptyChain
	}
	return c.blocks[len(c.blocks)-1], nil
}

// flush clears the pending pool, but only after confirming that the last
// sealed block contains exactly the pool's transactions. A mismatch is an
// impossible state under correct use and surfaces as a fatal
// ErrInvariantViolation instead of a silent drop.
func (c *Chain) flush() error {

	if c.pending.Len() == 0 {
		return nil
	}

	last, err := c.last()
	if err != nil {
		return fmt.Errorf("%w: pending transactions without a sealed block", ledger.ErrInvariantViolation)
	}

	pending := c.pending.All()
	if len(last.Transactions) != len(pending) {
		return fmt.Errorf("%w: last block misses pending transactions (block: %d, pending: %d)",
			ledger.ErrInvariantViolation, len(last.Transactions), len(pending))
	}
	for i, transaction := range pending {
		if last.Transactions[i] != transaction {
			return fmt.Errorf("%w: pending transaction differs from sealed transaction (index: %d)",
				ledger.ErrInvariantViolation, i)
		}
	}

	c.pending.Clear()

	return nil
}
