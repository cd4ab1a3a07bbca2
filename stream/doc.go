/*
Package stream applies nibble parsers to input arriving from an io.Reader.

nibble parsers keep no state between calls. If a parser reports Incomplete,
somebody has to read more input, append it to what has been read before and
call the parser again. A Scanner does exactly this, handing out one parsed
value after the other:

	line := nibble.TakeUntilAndConsume("\r\n")
	s := stream.NewScanner(conn, line, stream.RetryOn(nibble.DelimiterNotFound))
	for s.Scan() {
	    process(s.Value())
	}
	if err := s.Err(); err != nil {
	    …
	}

Parsers searching for a delimiter report a missing delimiter as an error,
not as Incomplete. Option RetryOn lets the scanner read more input for such
errors, up to the end of input.

Values handed out by a Scanner stay valid after further calls to Scan, as a
Scanner never overwrites input it has passed to its parser.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package stream

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
