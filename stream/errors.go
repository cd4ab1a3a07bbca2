package stream

import "errors"

var (
	// ErrUnexpectedEOF signals that input ended while the parser still asked
	// for more.
	ErrUnexpectedEOF = errors.New("stream: unexpected end of input")
	// ErrNoProgress signals a parser result which did not consume any input.
	ErrNoProgress = errors.New("stream: parser did not consume input")
	// ErrBufferFull signals that a parser asked for more input than the
	// scanner is allowed to buffer.
	ErrBufferFull = errors.New("stream: buffer limit exceeded")
	// ErrNotRegular signals an attempt to open something other than a
	// regular file.
	ErrNotRegular = errors.New("stream: not a regular file")
)
