package nibble

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bytes"
)

// Tag recognizes the literal lit at the start of the input.
//
// Inputs shorter than lit are Incomplete, even if they could be ruled out
// already. A mismatch is an error positioned at the start of the input.
//
//	Tag("abcd")([]byte("abcdefgh"))  =>  Done("efgh", "abcd")
func Tag[T Bytes](lit T) Parser[[]byte] {
	l := []byte(lit)
	return func(input []byte) Result[[]byte] {
		if len(input) < len(l) {
			return Incomplete[[]byte](Size(len(l)))
		}
		if !bytes.Equal(input[:len(l)], l) {
			return Fail[[]byte](Positioned(LiteralMismatch, input))
		}
		rest, out := split(input, len(l))
		return Done(rest, out)
	}
}

// IsNot recognizes the longest non-empty run of bytes not contained in set.
//
//	IsNot(" \t\r\n")([]byte("abcdefgh\nijkl"))  =>  Done("\nijkl", "abcdefgh")
//
// If no byte of the input is in set, the complete input is recognized.
// IsNot never returns Incomplete.
func IsNot[T Bytes](set T) Parser[[]byte] {
	s := makeByteSet([]byte(set))
	return scanWhile(func(b byte) bool { return !s.contains(b) }, EmptyClassMatch)
}

// IsA recognizes the longest non-empty run of bytes contained in set. The
// order of bytes in set is irrelevant.
//
//	IsA("abcd")([]byte("dcbaefgh"))  =>  Done("efgh", "dcba")
//
// If all bytes of the input are in set, the complete input is recognized.
// IsA never returns Incomplete.
func IsA[T Bytes](set T) Parser[[]byte] {
	s := makeByteSet([]byte(set))
	return scanWhile(s.contains, ClassNotFound)
}

// Filter recognizes the longest non-empty run of bytes for which pred holds.
// If pred holds for all of the input, Filter recognizes the complete input
// and leaves an empty remainder. Filter never returns Incomplete.
func Filter(pred func(byte) bool) Parser[[]byte] {
	return scanWhile(pred, PredicateFailed)
}

// Take recognizes the next n bytes. Take panics if n is negative.
func Take(n int) Parser[[]byte] {
	if n < 0 {
		panic(ErrNegativeCount)
	}
	return func(input []byte) Result[[]byte] {
		if len(input) < n {
			return Incomplete[[]byte](Size(n))
		}
		rest, out := split(input, n)
		return Done(rest, out)
	}
}

// TakeUntil recognizes everything up to the first occurrence of delim. The
// delimiter remains part of the remainder.
//
//	TakeUntil("efgh")([]byte("abcdabcdefghijkl"))  =>  Done("efghijkl", "abcdabcd")
//
// Inputs shorter than delim are Incomplete. Longer inputs without delim are
// an error, see the package documentation.
func TakeUntil[T Bytes](delim T) Parser[[]byte] {
	d := []byte(delim)
	return seek(literalFinder(d), len(d), false)
}

// TakeUntilAndConsume recognizes everything up to the first occurrence of
// delim and drops the delimiter.
//
//	TakeUntilAndConsume("efgh")([]byte("abcdabcdefghijkl"))  =>  Done("ijkl", "abcdabcd")
func TakeUntilAndConsume[T Bytes](delim T) Parser[[]byte] {
	d := []byte(delim)
	return seek(literalFinder(d), len(d), true)
}

// TakeUntilEither recognizes everything up to the first byte contained in
// set. The delimiting byte remains part of the remainder.
//
// Empty inputs are Incomplete. Non-empty inputs without a byte of set are an
// error.
func TakeUntilEither[T Bytes](set T) Parser[[]byte] {
	return seek(setFinder(makeByteSet([]byte(set))), 1, false)
}

// TakeUntilEitherAndConsume recognizes everything up to the first byte
// contained in set and drops this byte.
func TakeUntilEitherAndConsume[T Bytes](set T) Parser[[]byte] {
	return seek(setFinder(makeByteSet([]byte(set))), 1, true)
}

func literalFinder(delim []byte) finder {
	return func(input []byte) (int, int) {
		return bytes.Index(input, delim), len(delim)
	}
}

func setFinder(set *byteSet) finder {
	return func(input []byte) (int, int) {
		for i, b := range input {
			if set.contains(b) {
				return i, 1
			}
		}
		return -1, 1
	}
}
