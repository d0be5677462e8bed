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

// Package report renders scan results for humans: colored per-file lines on
// the console, a closing summary, and a structured zerolog mirror of it all.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/textscan/pkg/scan"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 35 // Base width for filename
	countWidth = 12 // Width for the match count column
)

// 🎯 FileResult represents one scanned file for reporting
type FileResult struct {
	Path         string // File path
	Matches      int    // Number of keyword or line matches
	Replacements int    // Number of replacements written
	Err          error  // Scan or write failure, if any
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex

	files        int
	matchedFiles int
	matches      int
	replacements int
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📝 formatFileResult formats a file entry for display
func (l *Logger) formatFileResult(res FileResult) string {
	// Determine symbol and color
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case res.Err != nil:
		symbol = '✗'
		symbolColor = color.FgRed
	case res.Replacements > 0:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case res.Matches > 0:
		symbol = '✓'
		symbolColor = color.FgGreen
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	count := fmt.Sprintf("%d matches", res.Matches)
	if res.Replacements > 0 {
		count = fmt.Sprintf("%d replaced", res.Replacements)
	}
	if res.Err != nil {
		count = res.Err.Error()
	}

	// Build the line
	return fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, res.Path),
		fmt.Sprintf("%-*s", countWidth, count))
}

// 📝 LogFileResult logs one scanned file and folds it into the summary totals
func (l *Logger) LogFileResult(ctx context.Context, res FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.files++
	if res.Matches > 0 {
		l.matchedFiles++
	}
	l.matches += res.Matches
	l.replacements += res.Replacements

	// Format and print
	fmt.Fprintln(l.console, l.formatFileResult(res))

	// Log to zerolog
	l.zlog.Info().
		Str("file", res.Path).
		Int("matches", res.Matches).
		Int("replacements", res.Replacements).
		Err(res.Err).
		Msg("file scanned")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("textscan")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Summary prints the closing totals for the whole run
func (l *Logger) Summary(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf("%d matches in %d of %d files", l.matches, l.matchedFiles, l.files)
	if l.replacements > 0 {
		msg += fmt.Sprintf(", %d replacements", l.replacements)
	}

	printer := pterm.Success
	if l.matches == 0 {
		printer = pterm.Info
	}
	printer.WithWriter(l.console).Println(msg)

	l.zlog.Info().
		Int("files", l.files).
		Int("matched_files", l.matchedFiles).
		Int("matches", l.matches).
		Int("replacements", l.replacements).
		Msg("scan summary")
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Warning.WithWriter(l.console).Println(msg)
	l.zlog.Warn().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Error.WithWriter(l.console).Println(msg)
	l.zlog.Error().Msg(msg)
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 🖍️ Highlight returns the line text with every sub-match colored. lineStart
// is the line's absolute start offset, used to map the sub-matches' absolute
// offsets back into the line.
func Highlight(line string, lineStart int, subMatches []scan.SubMatch) string {
	if len(subMatches) == 0 {
		return line
	}

	hl := color.New(color.FgRed, color.Bold)
	var b strings.Builder
	pos := 0
	for _, sm := range subMatches {
		start := sm.Offset - lineStart
		end := start + len(sm.Text)
		if start < pos || end > len(line) {
			continue
		}
		b.WriteString(line[pos:start])
		b.WriteString(hl.Sprint(line[start:end]))
		pos = end
	}
	b.WriteString(line[pos:])
	return b.String()
}
