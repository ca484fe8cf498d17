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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashank-khanna/blockchain/models/ledger"
	"github.com/shashank-khanna/blockchain/testing/mocks"
)

func TestChain_Verify(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		c, err := New(mocks.NoopLogger, mocks.BaselineProver(t))
		require.NoError(t, err)

		c.Queue("A", "B", 1)
		_, err = c.Seal(context.Background())
		require.NoError(t, err)

		assert.NoError(t, c.Verify())
	})

	t.Run("handles empty chain", func(t *testing.T) {
		t.Parallel()

		c := &Chain{
			log:     mocks.NoopLogger,
			pending: NewPool(),
			mutex:   &sync.Mutex{},
		}

		assert.ErrorIs(t, c.Verify(), ledger.ErrEmptyChain)
	})

	t.Run("handles tampered genesis block", func(t *testing.T) {
		t.Parallel()

		c, err := New(mocks.NoopLogger, mocks.BaselineProver(t))
		require.NoError(t, err)

		c.blocks[0].Proof = 7
		c.blocks[0].PreviousHash = "tampered"

		err = c.Verify()

		assert.Error(t, err)
	})

	t.Run("handles broken linkage", func(t *testing.T) {
		t.Parallel()

		c, err := New(mocks.NoopLogger, mocks.BaselineProver(t))
		require.NoError(t, err)

		_, err = c.Seal(context.Background())
		require.NoError(t, err)

		c.blocks[1].PreviousHash = "tampered"

		err = c.Verify()

		assert.Error(t, err)
	})

	t.Run("handles inadmissible proof", func(t *testing.T) {
		t.Parallel()

		prover := mocks.BaselineProver(t)

		c, err := New(mocks.NoopLogger, prover)
		require.NoError(t, err)

		_, err = c.Seal(context.Background())
		require.NoError(t, err)

		prover.ValidateFunc = func(uint64, uint64, string) bool {
			return false
		}

		err = c.Verify()

		assert.Error(t, err)
	})

	t.Run("handles skipped index", func(t *testing.T) {
		t.Parallel()

		c, err := New(mocks.NoopLogger, mocks.BaselineProver(t))
		require.NoError(t, err)

		_, err = c.Seal(context.Background())
		require.NoError(t, err)

		c.blocks[1].Index = 3

		err = c.Verify()

		assert.Error(t, err)
	})
}
