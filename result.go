package nibble

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Needed tells how many bytes of input a parser needs before it is able to
// decide. A size is a lower bound, estimated from what the parser has seen.
//
// Needed{} is the unknown amount.
type Needed struct {
	size int
}

// Unknown returns a Needed for an unspecified amount of input.
func Unknown() Needed {
	return Needed{}
}

// Size returns a Needed for an input of at least n bytes in total.
func Size(n int) Needed {
	if n <= 0 {
		return Needed{}
	}
	return Needed{size: n}
}

// IsKnown is false for Unknown.
func (n Needed) IsKnown() bool {
	return n.size > 0
}

// Size returns the number of bytes needed, or 0 if unknown.
func (n Needed) Size() int {
	return n.size
}

func (n Needed) String() string {
	if !n.IsKnown() {
		return "Unknown"
	}
	return fmt.Sprintf("Size(%d)", n.size)
}

// --- Results ---------------------------------------------------------------

type outcome uint8

const (
	done outcome = iota
	failed
	incomplete
)

// Result is the outcome of a parser invocation: either Done, Error or
// Incomplete.
//
// The zero value is Done with an empty remainder and a zero value.
type Result[O any] struct {
	outcome outcome
	rest    []byte
	value   O
	err     *ParseError
	needed  Needed
}

// Done creates a successful result. rest is the unconsumed suffix of the
// input, value is what the parser recognized.
func Done[O any](rest []byte, value O) Result[O] {
	return Result[O]{outcome: done, rest: rest, value: value}
}

// Fail creates an Error result.
func Fail[O any](err *ParseError) Result[O] {
	if err == nil {
		err = Code(NoError)
	}
	return Result[O]{outcome: failed, err: err}
}

// Incomplete creates a result signalling that more input is needed.
func Incomplete[O any](needed Needed) Result[O] {
	return Result[O]{outcome: incomplete, needed: needed}
}

// IsDone is true for successful results.
func (r Result[O]) IsDone() bool {
	return r.outcome == done
}

// IsError is true for failed results.
func (r Result[O]) IsError() bool {
	return r.outcome == failed
}

// IsIncomplete is true for results which need more input.
func (r Result[O]) IsIncomplete() bool {
	return r.outcome == incomplete
}

// Err returns the parse error of a failed result, and nil otherwise.
func (r Result[O]) Err() *ParseError {
	if r.outcome != failed {
		return nil
	}
	return r.err
}

// Needed returns how much input an incomplete result asks for. The boolean
// result is false for Done and Error.
func (r Result[O]) Needed() (Needed, bool) {
	return r.needed, r.outcome == incomplete
}

func (r Result[O]) String() string {
	switch r.outcome {
	case failed:
		return fmt.Sprintf("Error(%v)", r.err)
	case incomplete:
		return fmt.Sprintf("Incomplete(%v)", r.needed)
	}
	return fmt.Sprintf("Done(%q, %v)", r.rest, r.value)
}

// --- Accessors -------------------------------------------------------------

// InputGetter is implemented by results which may carry unconsumed input.
type InputGetter interface {
	RemainingInput() ([]byte, bool)
}

// OutputGetter is implemented by results which may carry a value of type O.
type OutputGetter[O any] interface {
	Output() (O, bool)
}

// RemainingInput returns the unconsumed input of a Done result. For Error
// and Incomplete the boolean result is false.
func (r Result[O]) RemainingInput() ([]byte, bool) {
	if r.outcome != done {
		return nil, false
	}
	return r.rest, true
}

// Output returns the value of a Done result. For Error and Incomplete the
// boolean result is false.
func (r Result[O]) Output() (O, bool) {
	if r.outcome != done {
		var zero O
		return zero, false
	}
	return r.value, true
}

// Cast converts a failed or incomplete result to a result of another value
// type. Combinators use it to forward outcomes they do not handle. Casting a
// Done result is a programming error.
func Cast[P, O any](r Result[O]) Result[P] {
	switch r.outcome {
	case failed:
		return Fail[P](r.err)
	case incomplete:
		return Incomplete[P](r.needed)
	}
	panic("nibble.Cast: cannot cast Done result")
}

var _ InputGetter = Result[[]byte]{}
var _ OutputGetter[string] = Result[string]{}
