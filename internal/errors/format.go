package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders collected diagnostics for a single file with Rust-like
// styling: a header line, the offending source line with a caret marker, and
// secondary locations pointing at related code.
type Formatter struct {
	filename string
	lines    []string
}

// NewFormatter creates a formatter for a file's source text
func NewFormatter(filename, source string) *Formatter {
	return &Formatter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Format renders a single compiler error
func (f *Formatter) Format(err CompilerError) string {
	var result strings.Builder

	levelColor := f.levelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0601]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	// Location line: --> filename:line:column
	lineNumberWidth := f.lineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), f.filename, err.Position.Line, err.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	// Main error line with caret marker
	if err.Position.Line > 0 && err.Position.Line <= len(f.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, err.Position.Line)),
			dim("│"),
			f.lines[err.Position.Line-1]))
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			indent, dim("│"), f.marker(err.Position.Column, err.Length, err.Level)))
	}

	// Secondary locations
	for _, sec := range err.Secondary {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), sec.Message))
		result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
			indent, dim("-->"), f.filename, sec.Position.Line, sec.Position.Column))
		if sec.Position.Line > 0 && sec.Position.Line <= len(f.lines) {
			result.WriteString(fmt.Sprintf("%s %s %s\n",
				dim(fmt.Sprintf("%*d", lineNumberWidth, sec.Position.Line)),
				dim("│"),
				f.lines[sec.Position.Line-1]))
		}
	}

	// Notes
	for _, note := range err.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	// Help text
	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), helpColor("help:"), err.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

// FormatAll renders every diagnostic in order
func (f *Formatter) FormatAll(errs []CompilerError) string {
	var result strings.Builder
	for _, err := range errs {
		result.WriteString(f.Format(err))
	}
	return result.String()
}

func (f *Formatter) levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// marker creates the underline marker for errors
func (f *Formatter) marker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}
	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if level == Warning {
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	}
	spaces := strings.Repeat(" ", max(0, column-1))
	return spaces + markerColor(strings.Repeat("^", length))
}

func (f *Formatter) lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}
