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

// Package gem5stats extracts cache and TLB counters from gem5 stats.txt
// dumps produced by running the benchmark under simulation.
//
// Only the first occurrence of each counter is used, which is the first
// statistics dump in the file. Counters missing from a dump read as zero.
package gem5stats

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/rs/zerolog"
)

// CacheStats are the memory hierarchy counters of one simulation.
type CacheStats struct {
	SimTicks  uint64 `json:"sim_ticks"`
	L1DHits   uint64 `json:"l1d_hits"`
	L1DMisses uint64 `json:"l1d_misses"`
	L2Hits    uint64 `json:"l2_hits"`
	L2Misses  uint64 `json:"l2_misses"`

	// L1DMissRate is nil when the L1 data cache saw no demand accesses.
	L1DMissRate *float64 `json:"l1d_miss_rate,omitempty"`
}

// VMStats are the TLB counters of one simulation.
type VMStats struct {
	SimTicks       uint64 `json:"sim_ticks"`
	DTLBRdAccesses uint64 `json:"dtlb_rd_accesses"`
	DTLBRdMisses   uint64 `json:"dtlb_rd_misses"`
	ITLBWrAccesses uint64 `json:"itlb_wr_accesses"`
	ITLBWrMisses   uint64 `json:"itlb_wr_misses"`

	// DTLBMissRate is nil when the data TLB saw no read accesses.
	DTLBMissRate *float64 `json:"dtlb_miss_rate,omitempty"`
}

// counter binds a stat name to its pattern. The pattern has exactly one
// capture group holding the decimal value.
type counter struct {
	name string
	re   *regexp.Regexp
}

func newCounter(name, pattern string) counter {
	return counter{name: name, re: regexp.MustCompile(pattern)}
}

var (
	simTicks = newCounter("sim_ticks", `simTicks\s+(\d+)`)

	l1dHits   = newCounter("l1d_hits", `system\.cpu\.dcache\.demandHits::total\s+(\d+)`)
	l1dMisses = newCounter("l1d_misses", `system\.cpu\.dcache\.demandMisses::total\s+(\d+)`)
	l2Hits    = newCounter("l2_hits", `system\.l2cache\.demandHits::total\s+(\d+)`)
	l2Misses  = newCounter("l2_misses", `system\.l2cache\.demandMisses::total\s+(\d+)`)

	dtlbRdAccesses = newCounter("dtlb_rd_accesses", `system\.cpu\.mmu\.dtb\.rdAccesses\s+(\d+)`)
	dtlbRdMisses   = newCounter("dtlb_rd_misses", `system\.cpu\.mmu\.dtb\.rdMisses\s+(\d+)`)
	itlbWrAccesses = newCounter("itlb_wr_accesses", `system\.cpu\.mmu\.itb\.wrAccesses\s+(\d+)`)
	itlbWrMisses   = newCounter("itlb_wr_misses", `system\.cpu\.mmu\.itb\.wrMisses\s+(\d+)`)
)

// Parser reads gem5 stats dumps. The zero value is not usable; use
// NewParser.
type Parser struct {
	log zerolog.Logger
}

// NewParser returns a Parser that reports missing counters to log at
// debug level.
func NewParser(log zerolog.Logger) *Parser {
	return &Parser{log: log}
}

// extractor pulls counters out of one dump, remembering the first error.
type extractor struct {
	p       *Parser
	content []byte
	err     error
}

func (e *extractor) get(c counter) uint64 {
	if e.err != nil {
		return 0
	}
	sub := c.re.FindSubmatch(e.content)
	if sub == nil {
		e.p.log.Debug().Str("counter", c.name).Msg("counter not found, using 0")
		return 0
	}
	v, err := strconv.ParseUint(string(sub[1]), 10, 64)
	if err != nil {
		e.err = fmt.Errorf("parsing %s: %w", c.name, err)
		return 0
	}
	return v
}

func ratio(num, den uint64) *float64 {
	if den == 0 {
		return nil
	}
	r := float64(num) / float64(den)
	return &r
}

// ParseCache reads a stats dump and returns its cache counters.
func (p *Parser) ParseCache(r io.Reader) (CacheStats, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return CacheStats{}, fmt.Errorf("reading stats: %w", err)
	}

	e := &extractor{p: p, content: content}
	s := CacheStats{
		SimTicks:  e.get(simTicks),
		L1DHits:   e.get(l1dHits),
		L1DMisses: e.get(l1dMisses),
		L2Hits:    e.get(l2Hits),
		L2Misses:  e.get(l2Misses),
	}
	if e.err != nil {
		return CacheStats{}, e.err
	}
	s.L1DMissRate = ratio(s.L1DMisses, s.L1DHits+s.L1DMisses)
	return s, nil
}

// ParseVM reads a stats dump and returns its TLB counters.
func (p *Parser) ParseVM(r io.Reader) (VMStats, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return VMStats{}, fmt.Errorf("reading stats: %w", err)
	}

	e := &extractor{p: p, content: content}
	s := VMStats{
		SimTicks:       e.get(simTicks),
		DTLBRdAccesses: e.get(dtlbRdAccesses),
		DTLBRdMisses:   e.get(dtlbRdMisses),
		ITLBWrAccesses: e.get(itlbWrAccesses),
		ITLBWrMisses:   e.get(itlbWrMisses),
	}
	if e.err != nil {
		return VMStats{}, e.err
	}
	s.DTLBMissRate = ratio(s.DTLBRdMisses, s.DTLBRdAccesses)
	return s, nil
}

// ParseCacheFile is ParseCache on the named file.
func (p *Parser) ParseCacheFile(path string) (CacheStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return CacheStats{}, err
	}
	defer f.Close()

	s, err := p.ParseCache(f)
	if err != nil {
		return CacheStats{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseVMFile is ParseVM on the named file.
func (p *Parser) ParseVMFile(path string) (VMStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return VMStats{}, err
	}
	defer f.Close()

	s, err := p.ParseVM(f)
	if err != nil {
		return VMStats{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
