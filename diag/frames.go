package diag

import (
	"github.com/npillmayer/nibble"
)

// Frame is a single error of a cause chain.
type Frame struct {
	Kind    nibble.ErrorKind
	Variant nibble.Variant
	Depth   int // 0 for the outermost error
	Offset  int // byte offset in the original input, or -1
}

// HasPosition is true if the frame's error carried a position within the
// original input.
func (f Frame) HasPosition() bool {
	return f.Offset >= 0
}

// Frames flattens the cause chain of err, outermost error first. input has to
// be the input the failing parse started with.
func Frames(input []byte, err *nibble.ParseError) []Frame {
	var frames []Frame
	for depth := 0; err != nil; depth++ {
		f := Frame{
			Kind:    err.Kind,
			Variant: err.Variant(),
			Depth:   depth,
			Offset:  err.Offset(input),
		}
		if _, ok := err.Position(); ok && f.Offset < 0 {
			tracer().Errorf("diag: error position %s is not within input", err.Kind)
		}
		frames = append(frames, f)
		err = err.Cause()
	}
	return frames
}

// Deepest returns the innermost frame with a position. This is the most
// specific location known for the error. The boolean result is false if no
// error of the chain carries a position.
func Deepest(frames []Frame) (Frame, bool) {
	for i := len(frames) - 1; i >= 0; i-- {
		if frames[i].HasPosition() {
			return frames[i], true
		}
	}
	return Frame{Offset: -1}, false
}
