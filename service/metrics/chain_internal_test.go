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

package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashank-khanna/blockchain/models/ledger"
	"github.com/shashank-khanna/blockchain/testing/mocks"
)

// The prometheus collectors register against the default registry, so the
// decorator is created once and shared by all assertions.
func TestMetricsChain(t *testing.T) {
	mock := mocks.BaselineChain(t)

	m := NewMetricsChain(mock)

	assert.Equal(t, uint64(1), m.Size())

	last, err := m.Last()
	require.NoError(t, err)
	assert.Equal(t, mocks.GenericBlock(1), last)

	assert.Equal(t, mocks.GenericBlock(1).Transactions, m.Blocks()[0].Transactions)
	assert.NoError(t, m.Verify())

	m.Queue("A", "B", 1)
	m.QueueFee()
	assert.Equal(t, float64(2), testutil.ToFloat64(m.transaction))

	block, err := m.Seal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mocks.GenericBlock(2), block)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.block))
	assert.Equal(t, float64(block.Index), testutil.ToFloat64(m.height))

	// A failed seal must not count as a sealed block.
	mock.SealFunc = func(context.Context) (ledger.Block, error) {
		return ledger.Block{}, mocks.GenericError
	}
	_, err = m.Seal(context.Background())
	assert.Error(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.block))
}
