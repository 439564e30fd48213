package errors

import (
	"github.com/Hugooboutot/solidity/internal/ast"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// SecondaryLocation points at a related place in the source, with a short
// explanation of why it matters for the error
type SecondaryLocation struct {
	Message  string
	Position ast.Position
}

// CompilerError represents a structured error with context
type CompilerError struct {
	Level     ErrorLevel
	Code      string       // Error code like E0601
	Message   string       // Primary error message
	Position  ast.Position // Location in source
	Length    int          // Length of the problematic region
	Secondary []SecondaryLocation
	Notes     []string // Additional context notes
	HelpText  string   // Help text for the error
}

// Reporter collects diagnostics produced during analysis. It is the sink the
// analysis phases write into; it never sorts or deduplicates, so the emission
// order of the phases is preserved.
type Reporter struct {
	errs []CompilerError
}

func NewReporter() *Reporter {
	return &Reporter{}
}

// Report appends a diagnostic as-is
func (r *Reporter) Report(err CompilerError) {
	r.errs = append(r.errs, err)
}

// TypeError reports an error-level type error at the given position
func (r *Reporter) TypeError(code string, pos ast.Position, message string) {
	r.TypeErrorWithSecondary(code, pos, nil, message)
}

// TypeErrorWithSecondary reports a type error with related source locations
func (r *Reporter) TypeErrorWithSecondary(code string, pos ast.Position, secondary []SecondaryLocation, message string) {
	r.Report(CompilerError{
		Level:     Error,
		Code:      code,
		Message:   message,
		Position:  pos,
		Length:    1,
		Secondary: secondary,
	})
}

// Warning reports a warning-level diagnostic
func (r *Reporter) Warning(code string, pos ast.Position, message string) {
	r.Report(CompilerError{
		Level:    Warning,
		Code:     code,
		Message:  message,
		Position: pos,
		Length:   1,
	})
}

// InternalError reports a violated precondition of the compiler itself
func (r *Reporter) InternalError(pos ast.Position, message string) {
	r.Report(CompilerError{
		Level:    Error,
		Code:     ErrorInternalCompiler,
		Message:  message,
		Position: pos,
		Length:   1,
	})
}

// Errors returns all collected diagnostics in emission order
func (r *Reporter) Errors() []CompilerError {
	return r.errs
}

// ContainsOnlyWarnings reports whether nothing error-level has been collected
func (r *Reporter) ContainsOnlyWarnings() bool {
	for _, err := range r.errs {
		if err.Level == Error {
			return false
		}
	}
	return true
}

// Clear drops all collected diagnostics
func (r *Reporter) Clear() {
	r.errs = nil
}
