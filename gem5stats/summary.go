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

package gem5stats

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/archlab/matmulbench/workerpool"
)

// ErrNoStats is returned by the summaries when a directory holds no
// matching stats files.
var ErrNoStats = errors.New("no stats files found")

// Glob patterns for summary inputs.
const (
	CachePattern = "*.txt"
	VMPattern    = "tlb_*_stats.txt"
)

// CacheEntry is one file of a cache summary.
type CacheEntry struct {
	Name  string
	Stats CacheStats
}

// VMEntry is one file of a TLB sweep summary.
type VMEntry struct {
	Name    string
	TLBSize string
	Stats   VMStats
}

// CacheSummary parses every *.txt file in dir, in name order.
func (p *Parser) CacheSummary(ctx context.Context, pool *workerpool.Pool, dir string) ([]CacheEntry, error) {
	paths, err := listStats(dir, CachePattern)
	if err != nil {
		return nil, err
	}

	entries := lo.Map(paths, func(path string, _ int) CacheEntry {
		return CacheEntry{Name: filepath.Base(path)}
	})
	err = pool.ForEach(ctx, len(paths), func(_ context.Context, i int) error {
		p.log.Debug().Str("file", paths[i]).Msg("parsing cache stats")
		s, err := p.ParseCacheFile(paths[i])
		entries[i].Stats = s
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// VMSummary parses every tlb_*_stats.txt file in dir, in name order.
func (p *Parser) VMSummary(ctx context.Context, pool *workerpool.Pool, dir string) ([]VMEntry, error) {
	paths, err := listStats(dir, VMPattern)
	if err != nil {
		return nil, err
	}

	entries := lo.Map(paths, func(path string, _ int) VMEntry {
		name := filepath.Base(path)
		return VMEntry{Name: name, TLBSize: TLBSize(name)}
	})
	err = pool.ForEach(ctx, len(paths), func(_ context.Context, i int) error {
		p.log.Debug().Str("file", paths[i]).Msg("parsing TLB stats")
		s, err := p.ParseVMFile(paths[i])
		entries[i].Stats = s
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// TLBSize derives the TLB size label from a sweep file name:
// "tlb_64entries_stats.txt" becomes "64".
func TLBSize(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	fields := strings.Split(stem, "_")
	if len(fields) < 2 {
		return stem
	}
	return strings.ReplaceAll(fields[1], "entries", "")
}

func listStats(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", dir)
	}

	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	// Only regular files are dumps.
	paths = lo.Filter(paths, func(path string, _ int) bool {
		fi, err := os.Stat(path)
		return err == nil && fi.Mode().IsRegular()
	})
	if len(paths) == 0 {
		return nil, fmt.Errorf("%s (%s): %w", dir, pattern, ErrNoStats)
	}
	slices.Sort(paths)
	return paths, nil
}
