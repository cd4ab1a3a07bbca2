package nibble

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Parser is a function which recognizes a prefix of its input.
//
// Parsers have no state. Calling a parser twice with the same input yields
// the same result, and a parser may be called concurrently from different
// goroutines. Parsers never modify their input.
//
// Clients define their own parsers as closures over configuration values,
// as the constructors of this package do:
//
//	var quoted = nibble.Bind(nibble.Tag(`"`), func([]byte) nibble.Parser[[]byte] {
//	    return nibble.TakeUntilAndConsume(`"`)
//	})
type Parser[O any] func(input []byte) Result[O]

// Parse applies p to input.
func (p Parser[O]) Parse(input []byte) Result[O] {
	return p(input)
}

// Bytes is the set of types a literal, delimiter or byte set may be given as.
type Bytes interface {
	~string | ~[]byte
}

// split cuts input at k. The left part is capacity-limited, so appending to
// it never overwrites the remainder.
func split(input []byte, k int) (rest, out []byte) {
	return input[k:], input[:k:k]
}

// --- Byte sets -------------------------------------------------------------

// byteSet is a membership table for single bytes.
type byteSet [256]bool

func makeByteSet(bytes []byte) *byteSet {
	var set byteSet
	for _, b := range bytes {
		set[b] = true
	}
	return &set
}

func (set *byteSet) contains(b byte) bool {
	return set[b]
}

// --- Scanner factories -----------------------------------------------------

// scanWhile creates a parser which consumes the longest prefix of bytes for
// which accept holds. An empty match is an error of kind k. Running out of
// input is a match of the complete input, never Incomplete.
func scanWhile(accept func(byte) bool, k ErrorKind) Parser[[]byte] {
	return func(input []byte) Result[[]byte] {
		i := 0
		for i < len(input) && accept(input[i]) {
			i++
		}
		if i == 0 {
			return Fail[[]byte](Positioned(k, input))
		}
		rest, out := split(input, i)
		return Done(rest, out)
	}
}

// finder locates a delimiter in input, returning its offset and length, or
// an offset of -1.
type finder func(input []byte) (at int, width int)

// seek creates a parser which takes everything up to a delimiter located by
// find. Inputs shorter than minLen are incomplete. If consume is set, the
// delimiter is dropped from the remainder.
func seek(find finder, minLen int, consume bool) Parser[[]byte] {
	return func(input []byte) Result[[]byte] {
		if len(input) < minLen {
			return Incomplete[[]byte](Size(minLen))
		}
		at, width := find(input)
		if at < 0 {
			return Fail[[]byte](Positioned(DelimiterNotFound, input))
		}
		_, out := split(input, at)
		if consume {
			return Done(input[at+width:], out)
		}
		return Done(input[at:], out)
	}
}
