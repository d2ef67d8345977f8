// Package casterr defines the two error channels the format-element
// engine raises through: analysis errors (malformed or contradictory
// format strings) and evaluation errors (input that doesn't match a
// valid format, or out-of-range results). It is a leaf package so that
// token, validate and cast can all construct these errors without an
// import cycle; package cast re-exports both types.
package casterr

import "fmt"

// AnalysisError is the equivalent of INVALID_ARGUMENT: the format
// string itself, independent of any input value, is rejected.
type AnalysisError struct {
	Offset  int // -1 when the error isn't offset-addressable
	Element string
	Msg     string
}

func (e *AnalysisError) Error() string {
	return e.Msg
}

// NewAnalysis builds an AnalysisError with no offset/element context.
func NewAnalysis(format string, args ...any) *AnalysisError {
	return &AnalysisError{Offset: -1, Msg: fmt.Sprintf(format, args...)}
}

// NewAnalysisAt builds an AnalysisError addressed at a source offset.
func NewAnalysisAt(offset int, format string, args ...any) *AnalysisError {
	return &AnalysisError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// EvaluationError is raised while parsing a specific input string
// against an already-validated format: the input didn't match, or the
// resulting civil time is invalid or out of range.
type EvaluationError struct {
	Offset  int
	Element string
	Msg     string
}

func (e *EvaluationError) Error() string {
	return e.Msg
}

// NewEvaluation builds an EvaluationError with no offset/element context.
func NewEvaluation(format string, args ...any) *EvaluationError {
	return &EvaluationError{Offset: -1, Msg: fmt.Sprintf(format, args...)}
}

// NewEvaluationAt builds an EvaluationError addressed at a cursor offset
// and the format element being matched there.
func NewEvaluationAt(offset int, element, format string, args ...any) *EvaluationError {
	return &EvaluationError{Offset: offset, Element: element, Msg: fmt.Sprintf(format, args...)}
}
