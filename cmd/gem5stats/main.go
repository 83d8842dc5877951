// Copyright 2026 matmulbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command gem5stats summarises gem5 stats.txt dumps from simulated runs of
// the matrix multiplication benchmark.
//
// Usage:
//
//	gem5stats cache stats.txt            # cache counters as JSON
//	gem5stats cache --summary results/   # every *.txt in results/
//	gem5stats vm stats.txt               # TLB counters as JSON
//	gem5stats vm --summary sweep/        # table over tlb_*_stats.txt
package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	cmd := newRootCmd(os.Stdout, &log)
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("gem5stats failed")
		stop()
		os.Exit(1)
	}
}
