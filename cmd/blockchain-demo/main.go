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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/shashank-khanna/blockchain/codec/zbor"
	"github.com/shashank-khanna/blockchain/service/chain"
	"github.com/shashank-khanna/blockchain/service/metrics"
	"github.com/shashank-khanna/blockchain/service/work"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown; the proof-of-work search stops
	// when the context is cancelled.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagLevel        string
		flagBlocks       uint
		flagTransactions uint
		flagFee          bool
		flagAttempts     uint64
	)

	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.UintVarP(&flagBlocks, "blocks", "b", 2, "number of blocks to seal after genesis")
	pflag.UintVarP(&flagTransactions, "transactions", "t", 5, "number of transactions to queue per block")
	pflag.BoolVarP(&flagFee, "fee", "f", false, "queue a miner fee transaction into each block")
	pflag.Uint64VarP(&flagAttempts, "attempts", "a", 0, "maximum proof-of-work attempts per block, zero for unbounded")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-sig
		log.Info().Msg("interrupt received, stopping")
		cancel()
	}()

	// Component initialization. The chain seals its genesis block on
	// construction, and the metrics decorator records the transactions and
	// blocks that move through it.
	codec := zbor.NewCodec()
	prover := work.NewProver(codec, work.WithAttemptLimit(flagAttempts))
	inner, err := chain.New(log, prover)
	if err != nil {
		log.Error().Err(err).Msg("could not create chain")
		return failure
	}
	ledger := metrics.NewMetricsChain(inner)

	log.Info().Uint64("size", ledger.Size()).Msg("chain created")

	for b := uint(0); b < flagBlocks; b++ {
		for i := uint(0); i < flagTransactions; i++ {
			ledger.Queue(
				fmt.Sprintf("account-%d", b),
				fmt.Sprintf("account-%d", b+1),
				float64(i)+1,
			)
		}
		if flagFee {
			ledger.QueueFee()
		}
		block, err := ledger.Seal(ctx)
		if err != nil {
			log.Error().Err(err).Msg("could not seal block")
			return failure
		}
		log.Info().
			Uint64("index", block.Index).
			Uint64("proof", block.Proof).
			Int("transactions", len(block.Transactions)).
			Msg("block sealed")
	}

	err = ledger.Verify()
	if err != nil {
		log.Error().Err(err).Msg("chain verification failed")
		return failure
	}

	data, err := json.MarshalIndent(ledger.Blocks(), "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("could not encode chain")
		return failure
	}
	fmt.Println(string(data))

	log.Info().Uint64("size", ledger.Size()).Msg("chain complete")

	return success
}
