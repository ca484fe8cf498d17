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

// Config contains optional parameters we can set for the prover.
type Config struct {
	AttemptLimit uint64
}

// DefaultConfig is the default configuration for the prover; the proof
// search is unbounded.
var DefaultConfig = Config{
	AttemptLimit: 0,
}

// WithAttemptLimit bounds the proof-of-work search to the given number of
// attempts, after which the search fails instead of continuing forever. A
// limit of zero keeps the search unbounded.
func WithAttemptLimit(limit uint64) func(*Config) {
	return func(cfg *Config) {
		cfg.AttemptLimit = limit
	}
}
