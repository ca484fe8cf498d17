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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/shashank-khanna/blockchain/models/ledger"
)

const namespaceLedger = "ledger"

// Chain represents the ledger operations wrapped by the metrics decorator.
type Chain interface {
	Size() uint64
	Last() (ledger.Block, error)
	Queue(sender string, recipient string, amount float64) ledger.Transaction
	QueueFee() ledger.Transaction
	Seal(ctx context.Context) (ledger.Block, error)
	Blocks() []ledger.Block
	Verify() error
}

// MetricsChain wraps the chain and records metrics for the transactions and
// blocks that move through it.
type MetricsChain struct {
	chain       Chain
	transaction prometheus.Counter
	block       prometheus.Counter
	height      prometheus.Gauge
	duration    prometheus.Histogram
}

// NewMetricsChain creates a decorator around the given chain that exposes
// the number of queued transactions, the number and height of sealed blocks
// and the sealing duration as prometheus metrics.
func NewMetricsChain(chain Chain) *MetricsChain {

	transactionOpts := prometheus.CounterOpts{
		Name:      "queued_transactions",
		Namespace: namespaceLedger,
		Help:      "number of queued transactions",
	}
	transaction := promauto.NewCounter(transactionOpts)

	blockOpts := prometheus.CounterOpts{
		Name:      "sealed_blocks",
		Namespace: namespaceLedger,
		Help:      "number of sealed blocks",
	}
	block := promauto.NewCounter(blockOpts)

	heightOpts := prometheus.GaugeOpts{
		Name:      "chain_height",
		Namespace: namespaceLedger,
		Help:      "index of the last sealed block",
	}
	height := promauto.NewGauge(heightOpts)

	durationOpts := prometheus.HistogramOpts{
		Name:      "seal_duration_seconds",
		Namespace: namespaceLedger,
		Help:      "time spent sealing a block, including the proof-of-work search",
	}
	duration := promauto.NewHistogram(durationOpts)

	m := MetricsChain{
		chain:       chain,
		transaction: transaction,
		block:       block,
		height:      height,
		duration:    duration,
	}

	return &m
}

func (m *MetricsChain) Size() uint64 {
	return m.chain.Size()
}

func (m *MetricsChain) Last() (ledger.Block, error) {
	return m.chain.Last()
}

func (m *MetricsChain) Queue(sender string, recipient string, amount float64) ledger.Transaction {
	m.transaction.Inc()
	return m.chain.Queue(sender, recipient, amount)
}

func (m *MetricsChain) QueueFee() ledger.Transaction {
	m.transaction.Inc()
	return m.chain.QueueFee()
}

func (m *MetricsChain) Seal(ctx context.Context) (ledger.Block, error) {
	timer := prometheus.NewTimer(m.duration)
	defer timer.ObserveDuration()

	block, err := m.chain.Seal(ctx)
	if err != nil {
		return ledger.Block{}, err
	}

	m.block.Inc()
	m.height.Set(float64(block.Index))

	return block, nil
}

func (m *MetricsChain) Blocks() []ledger.Block {
	return m.chain.Blocks()
}

func (m *MetricsChain) Verify() error {
	return m.chain.Verify()
}
