package nibble

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Map transforms the value of a successful parse with f.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input []byte) Result[B] {
		r := p(input)
		if !r.IsDone() {
			return Cast[B](r)
		}
		return Done(r.rest, f(r.value))
	}
}

// MapRes transforms the value of a successful parse with f. If f returns an
// error, the parse fails with an error of kind MapFailed, positioned at the
// start of the input.
func MapRes[A, B any](p Parser[A], f func(A) (B, error)) Parser[B] {
	return mapResKind(p, MapFailed, f)
}

func mapResKind[A, B any](p Parser[A], kind ErrorKind, f func(A) (B, error)) Parser[B] {
	return func(input []byte) Result[B] {
		r := p(input)
		if !r.IsDone() {
			return Cast[B](r)
		}
		v, err := f(r.value)
		if err != nil {
			T().Debugf("nibble: %s: %v", kind, err)
			return Fail[B](Positioned(kind, input))
		}
		return Done(r.rest, v)
	}
}

// Bind runs p and hands its value to next, which selects the parser for the
// remaining input.
//
// Error and Incomplete of p, and errors of the second step, are the result of
// Bind unchanged. A known size needed by the second step is counted from the
// start of the input of Bind.
func Bind[A, B any](p Parser[A], next func(A) Parser[B]) Parser[B] {
	return func(input []byte) Result[B] {
		r := p(input)
		if !r.IsDone() {
			return Cast[B](r)
		}
		r2 := next(r.value)(r.rest)
		if n, ok := r2.Needed(); ok && n.IsKnown() {
			return Incomplete[B](Size(len(input) - len(r.rest) + n.Size()))
		}
		return r2
	}
}

// Context marks errors of p as happening within a parser of kind k. Errors
// of p become the cause of a Node error; Done and Incomplete pass unchanged.
func Context[O any](k ErrorKind, p Parser[O]) Parser[O] {
	return func(input []byte) Result[O] {
		r := p(input)
		if r.IsError() {
			return Fail[O](Node(k, r.err))
		}
		return r
	}
}

// ContextAt is like Context, but records the input position of the
// enclosing parser as well, creating a PositionedNode error.
func ContextAt[O any](k ErrorKind, p Parser[O]) Parser[O] {
	return func(input []byte) Result[O] {
		r := p(input)
		if r.IsError() {
			return Fail[O](PositionedNode(k, input, r.err))
		}
		return r
	}
}

// Complete converts Incomplete results of p into errors of kind
// UnexpectedEnd. It is intended for parsers which are known to see all of
// their input at once.
func Complete[O any](p Parser[O]) Parser[O] {
	return func(input []byte) Result[O] {
		r := p(input)
		if r.IsIncomplete() {
			return Fail[O](Positioned(UnexpectedEnd, input))
		}
		return r
	}
}

// Trace logs every invocation of p together with its result. Output goes to
// the core tracer at level Debug.
func Trace[O any](name string, p Parser[O]) Parser[O] {
	return func(input []byte) Result[O] {
		r := p(input)
		T().Debugf("%s: %d bytes => %v", name, len(input), r)
		return r
	}
}
