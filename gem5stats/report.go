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
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteJSON writes v as JSON indented by two spaces, followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// WriteCacheSummary writes each entry as a blank line, "name:" and the
// entry's JSON.
func WriteCacheSummary(w io.Writer, entries []CacheEntry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		fmt.Fprintf(bw, "\n%s:\n", e.Name)
		if err := WriteJSON(bw, e.Stats); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteVMTable writes the TLB sweep as a fixed-width table:
//
//	TLB Size   Sim Ticks       DTLB Miss %
//	----------------------------------------
//	64         1,234,567       2.50
func WriteVMTable(w io.Writer, entries []VMEntry) error {
	p := message.NewPrinter(language.English)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%-10s %-15s %-12s\n", "TLB Size", "Sim Ticks", "DTLB Miss %")
	fmt.Fprintln(bw, strings.Repeat("-", 40))
	for _, e := range entries {
		var rate float64
		if e.Stats.DTLBMissRate != nil {
			rate = *e.Stats.DTLBMissRate
		}
		ticks := p.Sprintf("%d", e.Stats.SimTicks)
		fmt.Fprintf(bw, "%-10s %-15s %-12.2f\n", e.TLBSize, ticks, rate*100)
	}
	return bw.Flush()
}
