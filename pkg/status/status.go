// Copyright 2025 walteh LLC
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

package status

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// 📊 Summary totals one migration pass.
type Summary struct {
	FilesScanned int // candidate files visited
	FilesFixed   int // files rewritten on disk
	Replacements int // total pattern matches replaced
}

// 🎯 Reporter receives user-facing events during a migration pass. Unchanged
// and filtered files produce no events.
type Reporter interface {
	// FileFixed is called once per rewritten file, after the write succeeds.
	FileFixed(path string, replacements int)

	// Finish is called once after the full traversal completes.
	Finish(s Summary)
}

// 🖥️ ConsoleReporter writes one line per fixed file plus a closing summary.
type ConsoleReporter struct {
	out     io.Writer
	fixed   *color.Color
	success pterm.PrefixPrinter
	info    pterm.PrefixPrinter
}

// 🏭 NewConsoleReporter creates a reporter writing to out.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{
		out:     out,
		fixed:   color.New(color.FgGreen),
		success: *pterm.Success.WithWriter(out),
		info:    *pterm.Info.WithWriter(out),
	}
}

// 📝 FileFixed emits the per-file line. The text is stable; color is dropped
// automatically when out is not a terminal.
func (r *ConsoleReporter) FileFixed(path string, replacements int) {
	fmt.Fprintln(r.out, r.fixed.Sprintf("Fixed patterns in %s", path))
}

// ✅ Finish prints the run summary.
func (r *ConsoleReporter) Finish(s Summary) {
	if s.FilesFixed == 0 {
		r.info.Printfln("no changes needed (%d files scanned)", s.FilesScanned)
		return
	}
	r.success.Printfln("fixed %d of %d files (%d replacements)", s.FilesFixed, s.FilesScanned, s.Replacements)
}

// 🤫 QuietReporter collects the summary without console output. Used by
// callers that only want the totals.
type QuietReporter struct {
	Last Summary
}

func (r *QuietReporter) FileFixed(path string, replacements int) {}

func (r *QuietReporter) Finish(s Summary) {
	r.Last = s
}
