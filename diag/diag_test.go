package diag

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/nibble"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var kindRecord = nibble.Custom(1)

func failingRecord(t *testing.T, input []byte) *nibble.ParseError {
	t.Helper()
	field := nibble.Bind(nibble.TakeUntilAndConsume(";"), func([]byte) nibble.Parser[[]byte] {
		return nibble.TakeUntilAndConsume("\n")
	})
	r := nibble.ContextAt(kindRecord, nibble.Context(nibble.Custom(2), field))(input)
	if !r.IsError() {
		t.Fatalf("expected record parser to fail, got %v", r)
	}
	return r.Err()
}

func TestFrames(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	input := []byte("name;value without newline")
	frames := Frames(input, failingRecord(t, input))
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	if frames[0].Kind != kindRecord || frames[0].Offset != 0 || frames[0].Depth != 0 {
		t.Errorf("unexpected outer frame %+v", frames[0])
	}
	if frames[1].Variant != nibble.NodeVariant || frames[1].HasPosition() {
		t.Errorf("unexpected middle frame %+v", frames[1])
	}
	if frames[2].Kind != nibble.DelimiterNotFound || frames[2].Offset != 5 {
		t.Errorf("unexpected inner frame %+v", frames[2])
	}
	deepest, ok := Deepest(frames)
	if !ok || deepest.Offset != 5 {
		t.Errorf("expected deepest position at 5, got %+v", deepest)
	}
	if _, ok := Deepest(Frames(input, nibble.Code(nibble.MapFailed))); ok {
		t.Errorf("expected no position for bare code")
	}
}

func TestFprint(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := []byte("name;value without newline")
	var buf bytes.Buffer
	if err := Fprint(&buf, input, failingRecord(t, input), Options{Excerpt: 5}); err != nil {
		t.Fatal(err)
	}
	expected := "custom(1) @0 \"name;\"…\n" +
		"  custom(2)\n" +
		"    delimiter-not-found @5 \"value\"…\n"
	if buf.String() != expected {
		t.Errorf("unexpected listing:\n%s", buf.String())
	}
	buf.Reset()
	if err := Fprint(&buf, input, failingRecord(t, input), Options{Color: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected ANSI escapes in colored output")
	}
	t.Logf("\n%s", buf.String())
}

func TestUseColor(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if UseColor(nil) {
		t.Errorf("nil file cannot be a terminal")
	}
	f, err := os.CreateTemp(t.TempDir(), "diag")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if UseColor(f) {
		t.Errorf("regular file must not be a terminal")
	}
}

func TestToDot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := []byte("name;value without newline")
	var buf bytes.Buffer
	if err := ToDot(&buf, input, failingRecord(t, input)); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	for _, s := range []string{
		"strict digraph {",
		`"1" -> "2";`,
		`"2" -> "3";`,
		`label="delimiter-not-found\n@5"`,
		"shape=ellipse",
	} {
		if !strings.Contains(dot, s) {
			t.Errorf("expected DOT output to contain %s", s)
		}
	}
	t.Logf("\n%s", dot)
}
