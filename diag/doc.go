/*
Package diag renders parse errors for humans.

A nibble.ParseError is a chain of errors, from the outermost parser down to
the primitive which rejected the input. Package diag flattens such a chain
into frames with byte offsets and prints it as an indented listing or as a
Graphviz DOT graph.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package diag

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
