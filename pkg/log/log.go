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

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/retheme/pkg/status"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 11 // Width for status text
)

// 🎯 FileOperation represents one target rewrite for logging
type FileOperation struct {
	Path         string            // Display path
	Status       status.FileStatus // What happened
	Replacements int               // Number of replacements made
	RulesFired   int               // Rules that matched at least once
	Subsets      []string          // Conditional subsets that applied
	Backup       string            // Backup path, if any
}

// 📦 JobOperation represents a job for logging
type JobOperation struct {
	Name    string // Job name
	Preset  string // Preset name, may be empty
	Targets int    // Number of targets
	DryRun  bool   // Nothing will be written
}

// 🎯 Logger writes human readable progress to a console and mirrors it to zerolog
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentJob *JobOperation
	operations []FileOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch op.Status {
	case status.StatusModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case status.StatusPlanned:
		symbol = '~'
		symbolColor = color.FgYellow
	case status.StatusRestored:
		symbol = '↺'
		symbolColor = color.FgMagenta
	case status.StatusFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	details := fmt.Sprintf("%d replacements", op.Replacements)
	if op.RulesFired > 0 {
		details += fmt.Sprintf(" from %d rules", op.RulesFired)
	}
	if len(op.Subsets) > 0 {
		details += " +" + strings.Join(op.Subsets, "+")
	}
	if op.Status == status.StatusRestored {
		details = ""
	}

	line := fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(symbolColor).Sprint(fmt.Sprintf("%-*s", statusWidth, op.Status.String())),
		color.New(color.Faint).Sprint(details))
	return strings.TrimRight(line, " ")
}

// 📝 LogFileOperation logs a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatFileOperation(op))

	ev := l.zlog.Info().
		Str("file", op.Path).
		Str("status", op.Status.String()).
		Int("replacements", op.Replacements).
		Int("rules_fired", op.RulesFired).
		Strs("subsets", op.Subsets)
	if op.Backup != "" {
		ev = ev.Str("backup", op.Backup)
	}
	if l.currentJob != nil {
		ev = ev.Str("job", l.currentJob.Name)
	}
	ev.Msg("file operation")
}

// 📝 StartJob prints the job header
func (l *Logger) StartJob(ctx context.Context, op JobOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentJob = &op
	l.operations = nil

	verb := "rewriting"
	if op.DryRun {
		verb = "planning"
	}
	fmt.Fprintf(l.console, "[%s %s]\n", verb, color.New(color.FgCyan).Sprint(op.Name))

	if op.Preset != "" {
		fmt.Fprintf(l.console, "%s %s %s %s\n",
			color.New(color.FgMagenta).Sprint("◆"),
			color.New(color.Bold).Sprint(op.Preset),
			color.New(color.Faint).Sprint("•"),
			color.New(color.FgYellow).Sprintf("%d targets", op.Targets))
	}

	l.zlog.Info().
		Str("job", op.Name).
		Str("preset", op.Preset).
		Int("targets", op.Targets).
		Bool("dry_run", op.DryRun).
		Msg("starting job")
}

// 📝 EndJob closes the current job and returns the operations logged during it
func (l *Logger) EndJob(ctx context.Context) []FileOperation {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentJob == nil {
		return nil
	}

	ops := l.operations
	replacements := 0
	for _, op := range ops {
		replacements += op.Replacements
	}

	l.zlog.Info().
		Str("job", l.currentJob.Name).
		Int("files", len(ops)).
		Int("replacements", replacements).
		Msg("job complete")

	l.currentJob = nil
	l.operations = nil
	return ops
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("retheme")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Report prints a job report line as is. It is the one line a job
// promises on success.
func (l *Logger) Report(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, msg)
	l.zlog.Info().Str("report", msg).Msg("job report")
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
