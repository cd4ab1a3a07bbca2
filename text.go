package nibble

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
)

// TakeStr recognizes the next n bytes and returns them as a string. The
// bytes have to be valid UTF-8, otherwise the result is an error of kind
// DecodeFailed, positioned at the start of the input.
//
//	TakeStr(5)([]byte("omnomnom"))  =>  Done("nom", "omnom")
//	TakeStr(9)([]byte("omnomnom"))  =>  Incomplete(Size(9))
//
// Invalid UTF-8 is never reported as Incomplete, even if it is a rune cut
// off at position n.
func TakeStr(n int) Parser[string] {
	return mapResKind(Take(n), DecodeFailed, decodeUTF8)
}

func decodeUTF8(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// ErrInvalidUTF8 is handed to tracing whenever decoding of text fails.
const ErrInvalidUTF8 = NibbleError("invalid UTF-8")

var setupGraphemes sync.Once

// TakeGraphemes recognizes the next n user-perceived characters, i.e.
// extended grapheme clusters as defined by UAX#29, and returns them as a
// string.
//
// A grapheme cluster may be extended by any number of combining characters.
// TakeGraphemes therefore reports Done only if the start of cluster n+1 is
// part of the input, and Incomplete(Unknown) otherwise. Clients which know
// that the input is complete should wrap the parser with Complete and take
// the remaining input themselves.
//
// Invalid UTF-8 within the first n clusters is an error of kind DecodeFailed.
// A rune cut off at the end of the input is treated as missing input.
func TakeGraphemes(n int) Parser[string] {
	if n < 0 {
		panic(ErrNegativeCount)
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	return func(input []byte) Result[string] {
		if n == 0 {
			return Done(input, "")
		}
		valid, broken := validPrefix(input)
		if valid == 0 { // no rune to segment
			if broken {
				return Fail[string](Positioned(DecodeFailed, input))
			}
			return Incomplete[string](Unknown())
		}
		gstr := grapheme.StringFromString(string(input[:valid]))
		if gstr.Len() <= n {
			if broken && gstr.Len() < n {
				return Fail[string](Positioned(DecodeFailed, input))
			}
			if !broken {
				return Incomplete[string](Unknown())
			}
		}
		k := 0
		for i := 0; i < n; i++ {
			k += len(gstr.Nth(i))
		}
		return Done(input[k:], string(input[:k]))
	}
}

// validPrefix returns the length of the longest prefix of input which is
// valid UTF-8. broken is true if this prefix is followed by an invalid byte
// sequence, as opposed to the end of input or the start of a truncated rune.
func validPrefix(input []byte) (int, bool) {
	i := 0
	for i < len(input) {
		if input[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(input[i:])
		if r == utf8.RuneError && size <= 1 {
			return i, utf8.FullRune(input[i:])
		}
		i += size
	}
	return i, false
}
