// Package rgxerr defines the typed errors produced while lexing, parsing,
// and building patterns.
package rgxerr

import "fmt"

// Kind identifies which failure mode a PatternError represents.
type Kind int

const (
	// KindUnmatchedOpenParen means a '(' was never closed by a matching ')'.
	KindUnmatchedOpenParen Kind = iota
	// KindUnmatchedCloseParen means a ')' appeared with no open group to close.
	KindUnmatchedCloseParen
	// KindDanglingUnary means '*', '+', or '?' appeared with nothing to its
	// left for it to bind to.
	KindDanglingUnary
	// KindTrailingEscape means the pattern ends in a lone '\' with no
	// character left to escape.
	KindTrailingEscape
	// KindInternalInvariantViolation means a defensive check caught the
	// builder or parser in a state that should be unreachable.
	KindInternalInvariantViolation
)

func (k Kind) String() string {
	switch k {
	case KindUnmatchedOpenParen:
		return "unmatched open paren"
	case KindUnmatchedCloseParen:
		return "unmatched close paren"
	case KindDanglingUnary:
		return "dangling unary operator"
	case KindTrailingEscape:
		return "trailing escape"
	case KindInternalInvariantViolation:
		return "internal invariant violation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// PatternError is returned by Lex and Parse when a pattern cannot be
// processed; Build panics with one when it meets a malformed parse tree. It
// carries the Kind of failure, the 0-based byte position in the
// pattern the failure was detected at (or -1 if not applicable), and an
// optional wrapped cause.
type PatternError struct {
	kind Kind
	msg  string
	pos  int
	wrap error
}

func (e *PatternError) Error() string {
	return e.msg
}

// Kind returns the failure kind this error represents.
func (e *PatternError) Kind() Kind {
	return e.kind
}

// Pos returns the 0-based byte offset in the pattern the error was detected
// at, or -1 if the error isn't tied to a single position.
func (e *PatternError) Pos() int {
	return e.pos
}

// Unwrap gives the error that the PatternError wraps, if it wraps one.
func (e *PatternError) Unwrap() error {
	return e.wrap
}

// New returns a PatternError of the given kind with a technical message
// describing it, not tied to any particular position.
func New(k Kind, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got PatternError(%s)", k)
	}
	return &PatternError{kind: k, msg: technical, pos: -1}
}

// Newf is like New but builds the message from a format string and args.
func Newf(k Kind, format string, a ...interface{}) error {
	return New(k, fmt.Sprintf(format, a...))
}

// At returns a PatternError of the given kind at the given byte position in
// the pattern.
func At(k Kind, pos int, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got PatternError(%s) at position %d", k, pos)
	}
	return &PatternError{kind: k, msg: technical, pos: pos}
}

// Atf is like At but builds the message from a format string and args.
func Atf(k Kind, pos int, format string, a ...interface{}) error {
	return At(k, pos, fmt.Sprintf(format, a...))
}

// Wrap returns a PatternError of the given kind that wraps e, with a
// technical message describing it, not tied to any particular position.
func Wrap(e error, k Kind, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got PatternError(%s)", k)
	}
	return &PatternError{kind: k, msg: technical, pos: -1, wrap: e}
}

// GetKind gets the Kind of err if it is a *PatternError, and false otherwise.
func GetKind(err error) (Kind, bool) {
	if pe, ok := err.(*PatternError); ok {
		return pe.kind, true
	}
	return 0, false
}
