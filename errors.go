package nibble

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"
)

// ErrorKind identifies the parser and condition which produced a parse error.
//
// Clients may define kinds of their own with Custom. Custom kinds never
// collide with the kinds of this package.
type ErrorKind uint32

// Error kinds of the parsers of this package.
const (
	NoError           ErrorKind = iota
	LiteralMismatch             // Tag: input does not start with the literal
	EmptyClassMatch             // IsNot: first byte is in the exclusion set
	ClassNotFound               // IsA: first byte is not in the inclusion set
	PredicateFailed             // Filter: predicate does not hold for the first byte
	DecodeFailed                // TakeStr, TakeGraphemes: bytes are not valid UTF-8
	DelimiterNotFound           // TakeUntil…: no delimiter in input
	MapFailed                   // MapRes: mapping function returned an error
	UnexpectedEnd               // Complete: parser needed more input than there is
)

const customBase ErrorKind = 1 << 16

// Custom creates an error kind from a client-defined code.
func Custom(code uint32) ErrorKind {
	return customBase + ErrorKind(code)
}

// IsCustom is true for kinds created by Custom.
func (k ErrorKind) IsCustom() bool {
	return k >= customBase
}

// CustomCode returns the client code of a custom kind, or false for built-in
// kinds.
func (k ErrorKind) CustomCode() (uint32, bool) {
	if !k.IsCustom() {
		return 0, false
	}
	return uint32(k - customBase), true
}

var kindNames = [...]string{
	"no-error",
	"literal-mismatch",
	"empty-class-match",
	"class-not-found",
	"predicate-failed",
	"decode-failed",
	"delimiter-not-found",
	"map-failed",
	"unexpected-end",
}

func (k ErrorKind) String() string {
	if code, ok := k.CustomCode(); ok {
		return fmt.Sprintf("custom(%d)", code)
	}
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint32(k))
}

// --- Parse errors ----------------------------------------------------------

// Variant tells the shape of a ParseError.
type Variant uint8

// Shapes of a ParseError. A node wraps the error of a nested parser, a
// positioned error remembers where in the input it occurred.
const (
	CodeVariant Variant = iota
	NodeVariant
	PositionedVariant
	PositionedNodeVariant
)

func (v Variant) String() string {
	switch v {
	case NodeVariant:
		return "node"
	case PositionedVariant:
		return "positioned"
	case PositionedNodeVariant:
		return "positioned-node"
	}
	return "code"
}

// ParseError describes why a parser rejected its input.
//
// Errors form a chain from the outermost parser to the primitive which
// detected the failure. Each error exclusively owns its cause. ParseErrors
// are never changed after construction.
//
// The position of an error is the input the failing parser was handed,
// i.e. a suffix of the original input. It shares memory with the input and
// is valid only as long as the input is.
type ParseError struct {
	Kind   ErrorKind
	pos    []byte
	hasPos bool
	cause  *ParseError
}

// Code creates an error without position.
func Code(kind ErrorKind) *ParseError {
	return &ParseError{Kind: kind}
}

// Node creates an error without position, wrapping the error of a nested parser.
func Node(kind ErrorKind, cause *ParseError) *ParseError {
	return &ParseError{Kind: kind, cause: cause}
}

// Positioned creates an error at position pos.
func Positioned(kind ErrorKind, pos []byte) *ParseError {
	return &ParseError{Kind: kind, pos: pos, hasPos: true}
}

// PositionedNode creates an error at position pos, wrapping the error of a
// nested parser.
func PositionedNode(kind ErrorKind, pos []byte, cause *ParseError) *ParseError {
	return &ParseError{Kind: kind, pos: pos, hasPos: true, cause: cause}
}

// Variant returns the shape of e.
func (e *ParseError) Variant() Variant {
	switch {
	case e.hasPos && e.cause != nil:
		return PositionedNodeVariant
	case e.hasPos:
		return PositionedVariant
	case e.cause != nil:
		return NodeVariant
	}
	return CodeVariant
}

// Position returns the input at which e has been detected. The boolean result
// is false for errors without position.
func (e *ParseError) Position() ([]byte, bool) {
	return e.pos, e.hasPos
}

// Cause returns the nested error, or nil.
func (e *ParseError) Cause() *ParseError {
	return e.cause
}

// Innermost follows the cause chain down to the error which started it.
func (e *ParseError) Innermost() *ParseError {
	for e.cause != nil {
		e = e.cause
	}
	return e
}

// Offset maps the position of e to a byte offset within input, which has to
// be the input the parse started with. Offset returns -1 if e has no
// position or if the position is not a suffix of input.
//
// An empty position has no first byte to compare, so it is matched by its
// capacity only. It is taken to be at the end of input if it leaves as much
// room behind it as input does.
func (e *ParseError) Offset(input []byte) int {
	if !e.hasPos || len(e.pos) > len(input) {
		return -1
	}
	k := len(input) - len(e.pos)
	if cap(e.pos) != cap(input)-k {
		return -1
	}
	if len(e.pos) > 0 && &input[k] != &e.pos[0] {
		return -1
	}
	return k
}

// Error is part of interface error.
func (e *ParseError) Error() string {
	var b strings.Builder
	for err := e; err != nil; err = err.cause {
		if err != e {
			b.WriteString(": ")
		}
		b.WriteString(err.Kind.String())
		if err.hasPos {
			fmt.Fprintf(&b, " at %s", excerpt(err.pos, 16))
		}
	}
	return b.String()
}

// Unwrap returns the cause of e, if any. This makes errors.Is and errors.As
// walk the cause chain.
func (e *ParseError) Unwrap() error {
	if e.cause == nil {
		return nil
	}
	return e.cause
}

// Is reports whether target is a ParseError with the same kind and variant,
// ignoring positions and causes.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok || t == nil {
		return false
	}
	return e.Kind == t.Kind && e.Variant() == t.Variant()
}

func excerpt(pos []byte, max int) string {
	if len(pos) > max {
		return fmt.Sprintf("%q…", pos[:max])
	}
	return fmt.Sprintf("%q", pos)
}
