package nibble

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func expectDone(t *testing.T, r Result[[]byte], rest, out string) {
	t.Helper()
	if !r.IsDone() {
		t.Fatalf("expected Done(%q, %q), got %v", rest, out, r)
	}
	if string(r.rest) != rest || string(r.value) != out {
		t.Errorf("expected Done(%q, %q), got %v", rest, out, r)
	}
}

func expectIncomplete[O any](t *testing.T, r Result[O], size int) {
	t.Helper()
	n, ok := r.Needed()
	if !ok {
		t.Fatalf("expected Incomplete(Size(%d)), got %v", size, r)
	}
	if n.Size() != size {
		t.Errorf("expected Incomplete(Size(%d)), got %v", size, r)
	}
}

func expectError[O any](t *testing.T, r Result[O], kind ErrorKind, pos []byte) {
	t.Helper()
	if !r.IsError() {
		t.Fatalf("expected Error(%s), got %v", kind, r)
	}
	err := r.Err()
	if err.Kind != kind || err.Variant() != PositionedVariant {
		t.Errorf("expected positioned error of kind %s, got %v", kind, err)
	}
	p, ok := err.Position()
	if !ok || !bytes.Equal(p, pos) || (len(p) > 0 && &p[0] != &pos[0]) {
		t.Errorf("expected error at start of input %q, is at %q", pos, p)
	}
}

func TestTag(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	abcd := Tag("abcd")
	expectDone(t, abcd([]byte("abcdefgh")), "efgh", "abcd")
	expectDone(t, abcd([]byte("abcd")), "", "abcd")
	expectIncomplete(t, abcd([]byte("abc")), 4)
	expectIncomplete(t, abcd([]byte("xy")), 4) // cannot tell yet, by contract
	in := []byte("abcxefgh")
	expectError(t, abcd(in), LiteralMismatch, in)
}

func TestTagIsZeroCopy(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	in := []byte("GET /index.html")
	r := Tag([]byte("GET"))(in)
	out, _ := r.Output()
	rest, _ := r.RemainingInput()
	if &out[0] != &in[0] || &rest[0] != &in[3] {
		t.Errorf("expected views into input")
	}
	if cap(out) != 3 {
		t.Errorf("expected output capacity to be limited to 3, is %d", cap(out))
	}
	_ = append(out, 'X')
	if string(rest) != " /index.html" {
		t.Errorf("appending to output must not clobber remainder, rest = %q", rest)
	}
}

func TestIsNot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	notSpace := IsNot(" \t\r\n")
	expectDone(t, notSpace([]byte("abcdefgh\nijkl")), "\nijkl", "abcdefgh")
	expectDone(t, notSpace([]byte("abcdefgh")), "", "abcdefgh")
	expectDone(t, notSpace([]byte("a")), "", "a")
	in := []byte("\tabc")
	expectError(t, notSpace(in), EmptyClassMatch, in)
	empty := []byte{}
	expectError(t, notSpace(empty), EmptyClassMatch, empty)
}

func TestIsA(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	aOrB := IsA([]byte("ab"))
	expectDone(t, aOrB([]byte("abcd")), "cd", "ab")
	expectDone(t, aOrB([]byte("bcde")), "cde", "b")
	expectDone(t, aOrB([]byte("bacdef")), "cdef", "ba")
	in := []byte("cdef")
	expectError(t, aOrB(in), ClassNotFound, in)
	//
	abcd := IsA("abcd")
	expectDone(t, abcd([]byte("aaaaefgh")), "efgh", "aaaa")
	expectDone(t, abcd([]byte("dcbaefgh")), "efgh", "dcba")
	expectDone(t, abcd([]byte("dcba")), "", "dcba")
}

func TestFilter(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	isAlnum := func(b byte) bool {
		return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
	}
	alpha := Filter(isAlnum)
	expectDone(t, alpha([]byte("abcd\nefgh")), "\nefgh", "abcd")
	// predicate never fails: all of the input, no Incomplete
	expectDone(t, alpha([]byte("abcd")), "", "abcd")
	expectDone(t, alpha([]byte("x")), "", "x")
	in := []byte("\nabcd")
	expectError(t, alpha(in), PredicateFailed, in)
}

func TestTake(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	take5 := Take(5)
	expectDone(t, take5([]byte("abcdefgh")), "fgh", "abcde")
	expectDone(t, take5([]byte("abcde")), "", "abcde")
	expectIncomplete(t, take5([]byte("abcd")), 5)
	r := take5([]byte("abcdefgh"))
	rest, _ := r.RemainingInput()
	expectIncomplete(t, take5(rest), 5)
	expectDone(t, Take(0)([]byte("ab")), "ab", "")
}

func TestTakeNegativePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Take(-1) to panic")
		} else if err, ok := r.(error); !ok || !errors.Is(err, ErrNegativeCount) {
			t.Errorf("expected ErrNegativeCount, got %v", r)
		}
	}()
	Take(-1)
}

func TestTakeUntil(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	x := TakeUntilAndConsume("efgh")
	expectDone(t, x([]byte("abcdabcdefghijkl")), "ijkl", "abcdabcd")
	expectDone(t, x([]byte("abcdabcdefgh")), "", "abcdabcd")
	in := []byte("abcefg")
	expectError(t, x(in), DelimiterNotFound, in)
	expectIncomplete(t, x([]byte("ab")), 4)
	//
	y := TakeUntil("efgh")
	expectDone(t, y([]byte("abcdabcdefghijkl")), "efghijkl", "abcdabcd")
	expectDone(t, y([]byte("efgh")), "efgh", "")
	//
	end := TakeUntil("end")
	expectIncomplete(t, end([]byte("nd")), 3)
	expectIncomplete(t, end([]byte("ab")), 3)
	in = []byte("123")
	// the delimiter might still arrive, but this is reported as an error
	expectError(t, end(in), DelimiterNotFound, in)
}

func TestTakeUntilEmptyDelimiter(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	expectDone(t, TakeUntil("")([]byte("abc")), "abc", "")
	expectDone(t, TakeUntilAndConsume("")([]byte("")), "", "")
}

func TestTakeUntilEither(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	x := TakeUntilEither("!.")
	in := []byte("123")
	expectError(t, x(in), DelimiterNotFound, in)
	expectDone(t, x([]byte("hello. world!")), ". world!", "hello")
	expectDone(t, x([]byte("!")), "!", "")
	expectIncomplete(t, x([]byte{}), 1)
	//
	y := TakeUntilEitherAndConsume("!.")
	expectDone(t, y([]byte("hello. world!")), " world!", "hello")
	expectDone(t, y([]byte("hi!")), "", "hi")
	expectIncomplete(t, y(nil), 1)
	in = []byte("abc")
	expectError(t, TakeUntilEither("")(in), DelimiterNotFound, in)
}
