/*
Package nibble is a toolbox of small byte-level parsers which compose into
larger ones, suited for input which arrives piecemeal.

Parsers

A parser is any function from an input byte slice to a Result:

	type Parser[O any] func(input []byte) Result[O]

Every parser invocation ends in one of three outcomes:

	Done(rest, value)    the parser matched; rest is the unconsumed suffix of input
	Error(err)           the input is definitely not acceptable
	Incomplete(needed)   the decision cannot be made yet, more bytes are required

Incomplete is not a suspended state. Parsers keep nothing between calls; a
client receiving Incomplete has to append newly arrived bytes to the input it
already supplied and call the same parser again from the start. Package
stream implements this protocol for io.Readers.

Parsers return views into the input (sub-slices sharing the backing array)
wherever they do not decode. Texts returned by TakeStr and TakeGraphemes are
owned strings.

Primitives

	Tag              match a literal
	IsNot, IsA       longest run of bytes outside/inside a byte set
	Filter           longest run of bytes satisfying a predicate
	Take             a fixed number of bytes
	TakeStr          a fixed number of bytes, decoded as UTF-8
	TakeGraphemes    a fixed number of user-perceived characters
	TakeUntil…       everything up to a delimiter, with and without consuming it

Composition

Combinators building on this package forward Error and Incomplete unchanged
and only feed the remainder of a Done result into the next step. Bind, Map,
MapRes, Context and Complete follow this rule and may serve as templates.

Delimiter search

TakeUntil and friends will flag Incomplete only if the input is shorter than
the delimiter. If the input is long enough but does not contain the
delimiter, the result is an Error, even though a later chunk of input might
have contained it. Clients scanning streams for delimiters should buffer
until they know a delimiter must be present, or treat this error as a
request for more input on their own account.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package nibble

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// NibbleError is an error type for mis-configured parsers.
type NibbleError string

func (e NibbleError) Error() string {
	return string(e)
}

// ErrNegativeCount is flagged whenever a parser is asked to take a negative
// number of bytes or characters.
const ErrNegativeCount = NibbleError("count must not be negative")
