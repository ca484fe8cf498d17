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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashank-khanna/blockchain/models/ledger"
	"github.com/shashank-khanna/blockchain/testing/mocks"
)

func TestNewProver(t *testing.T) {
	codec := mocks.BaselineCodec(t)

	prover := NewProver(codec, WithAttemptLimit(1000))

	assert.Equal(t, codec, prover.codec)
	assert.Equal(t, uint64(1000), prover.limit)
}

func TestProver_Digest(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		codec := mocks.BaselineCodec(t)

		prover := NewProver(codec)

		digest, err := prover.Digest(mocks.GenericBlock(1))

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericHash, digest)
	})

	t.Run("idempotent for the same block", func(t *testing.T) {
		t.Parallel()

		prover := NewProver(mocks.BaselineCodec(t))

		first, err := prover.Digest(mocks.GenericBlock(1))
		require.NoError(t, err)

		second, err := prover.Digest(mocks.GenericBlock(1))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("handles codec failure", func(t *testing.T) {
		t.Parallel()

		codec := mocks.BaselineCodec(t)
		codec.EncodeFunc = func(interface{}) ([]byte, error) {
			return nil, mocks.GenericError
		}

		prover := NewProver(codec)

		_, err := prover.Digest(mocks.GenericBlock(1))

		assert.Error(t, err)
	})
}

func TestProver_Validate(t *testing.T) {
	prover := NewProver(mocks.BaselineCodec(t))

	t.Run("matches independently computed predicate", func(t *testing.T) {
		t.Parallel()

		// Fixed vector confirming the exact concatenation order and hash
		// algorithm: the guess for (0, 0, "abc") must be "00abc".
		digest := sha256.Sum256([]byte("00abc"))
		expected := hex.EncodeToString(digest[:])[:4] == "0000"

		assert.Equal(t, expected, prover.Validate(0, 0, "abc"))
	})

	t.Run("rejects inadmissible proofs", func(t *testing.T) {
		t.Parallel()

		assert.False(t, prover.Validate(0, 0, "abc"))
		assert.False(t, prover.Validate(12345, 67890, "deadbeef"))
	})

	t.Run("accepts admissible proofs", func(t *testing.T) {
		t.Parallel()

		assert.True(t, prover.Validate(100, 106201, "1"))
		assert.True(t, prover.Validate(42, 181230, "abc"))
	})
}

func TestProver_Search(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		prover := NewProver(mocks.BaselineCodec(t))

		proof, err := prover.Search(context.Background(), 100, "1")

		require.NoError(t, err)
		assert.Equal(t, uint64(106201), proof)
		assert.True(t, prover.Validate(100, proof, "1"))
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		t.Parallel()

		prover := NewProver(mocks.BaselineCodec(t))

		first, err := prover.Search(context.Background(), 42, "abc")
		require.NoError(t, err)

		second, err := prover.Search(context.Background(), 42, "abc")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("handles cancelled context", func(t *testing.T) {
		t.Parallel()

		prover := NewProver(mocks.BaselineCodec(t))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := prover.Search(ctx, 100, "1")

		assert.ErrorIs(t, err, ledger.ErrProofNotFound)
	})

	t.Run("handles exhausted attempt limit", func(t *testing.T) {
		t.Parallel()

		// The first admissible proof for these inputs is 106201, far beyond
		// the configured limit.
		prover := NewProver(mocks.BaselineCodec(t), WithAttemptLimit(1000))

		_, err := prover.Search(context.Background(), 100, "1")

		assert.ErrorIs(t, err, ledger.ErrProofNotFound)
	})
}
