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

package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/archlab/matmulbench/gem5stats"
	"github.com/archlab/matmulbench/workerpool"
)

// options are the flags shared by every subcommand.
type options struct {
	logLevel string
	workers  int
	summary  bool
}

func addGlobalFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.IntVar(&o.workers, "workers", 0, "files parsed in parallel by --summary (default GOMAXPROCS)")
}

// newRootCmd builds the command tree. Results are written to stdout;
// log is reconfigured from the --log-level flag before any subcommand runs.
func newRootCmd(stdout io.Writer, log *zerolog.Logger) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "gem5stats",
		Short:         "Summarise gem5 statistics from matrix multiplication runs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			*log = log.Level(level)
			return nil
		},
	}
	addGlobalFlags(root.PersistentFlags(), opts)

	root.AddCommand(
		newCacheCmd(stdout, log, opts),
		newVMCmd(stdout, log, opts),
	)
	return root
}

func newCacheCmd(stdout io.Writer, log *zerolog.Logger, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache FILE | --summary DIR",
		Short: "Report L1D and L2 cache counters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := gem5stats.NewParser(*log)
			if !opts.summary {
				s, err := p.ParseCacheFile(args[0])
				if err != nil {
					return err
				}
				return gem5stats.WriteJSON(stdout, s)
			}

			pool := workerpool.New(opts.workers)
			defer pool.Close()

			entries, err := p.CacheSummary(cmd.Context(), pool, args[0])
			if err != nil {
				return err
			}
			log.Debug().Int("files", len(entries)).Str("dir", args[0]).Msg("cache summary")
			return gem5stats.WriteCacheSummary(stdout, entries)
		},
	}
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "summarise every *.txt file in the directory")
	return cmd
}

func newVMCmd(stdout io.Writer, log *zerolog.Logger, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vm FILE | --summary DIR",
		Short: "Report data and instruction TLB counters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := gem5stats.NewParser(*log)
			if !opts.summary {
				s, err := p.ParseVMFile(args[0])
				if err != nil {
					return err
				}
				return gem5stats.WriteJSON(stdout, s)
			}

			pool := workerpool.New(opts.workers)
			defer pool.Close()

			entries, err := p.VMSummary(cmd.Context(), pool, args[0])
			if err != nil {
				return err
			}
			log.Debug().Int("files", len(entries)).Str("dir", args[0]).Msg("TLB sweep summary")
			return gem5stats.WriteVMTable(stdout, entries)
		},
	}
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "tabulate every tlb_*_stats.txt file in the directory")
	return cmd
}
