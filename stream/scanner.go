package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/nibble"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

const (
	defaultFragSize = 4096
	defaultMaxBuf   = 64 * oneMb
	maxEmptyReads   = 100
)

// Option configures a Scanner.
type Option func(*config)

type config struct {
	fragSize int
	maxBuf   int
	retry    map[nibble.ErrorKind]bool
}

// FragmentSize sets the number of bytes a Scanner tries to read at once.
// Values <= 0 select a default.
func FragmentSize(n int) Option {
	return func(c *config) {
		c.fragSize = n
	}
}

// MaxBuffer limits the number of bytes a Scanner will hold to satisfy a
// single parser invocation. Values <= 0 select a default of 64 MB.
func MaxBuffer(n int) Option {
	return func(c *config) {
		c.maxBuf = n
	}
}

// RetryOn makes a Scanner treat parse errors as a request for more input, as
// long as the input has not ended. An error qualifies if the error which
// started its cause chain is of one of the given kinds.
//
// This is the way to scan streams for delimiters: the TakeUntil parsers
// report a missing delimiter as DelimiterNotFound, not as Incomplete.
func RetryOn(kinds ...nibble.ErrorKind) Option {
	return func(c *config) {
		if c.retry == nil {
			c.retry = make(map[nibble.ErrorKind]bool, len(kinds))
		}
		for _, k := range kinds {
			c.retry[k] = true
		}
	}
}

func (c config) retries(err *nibble.ParseError) bool {
	return err != nil && c.retry[err.Innermost().Kind]
}

// Scanner repeatedly applies a parser to the input read from an io.Reader.
// A Scanner is not safe for concurrent use.
type Scanner[O any] struct {
	r      io.Reader
	closer io.Closer
	parser nibble.Parser[O]
	conf   config
	buf    []byte         // unconsumed input
	offset int64          // stream offset of buf[0]
	value  O              // last value parsed
	eof    bool           // reader is exhausted
	err    error          // sticky error; io.EOF after clean end of input
	cast   *caster.Caster // broadcaster for parsed values, created on demand
}

// NewScanner creates a scanner applying p to the input from r.
func NewScanner[O any](r io.Reader, p nibble.Parser[O], opts ...Option) *Scanner[O] {
	s := &Scanner[O]{r: r, parser: p}
	for _, opt := range opts {
		opt(&s.conf)
	}
	if s.conf.fragSize <= 0 {
		s.conf.fragSize = defaultFragSize
	}
	if s.conf.maxBuf <= 0 {
		s.conf.maxBuf = defaultMaxBuf
	}
	if s.conf.fragSize > s.conf.maxBuf {
		s.conf.fragSize = s.conf.maxBuf
	}
	return s
}

// Open opens a file, which must be a regular file, and creates a scanner
// applying p to its content. Clients should Close the scanner when done.
// If no fragment size is given, Open chooses one from the file size.
func Open[O any](name string, p nibble.Parser[O], opts ...Option) (*Scanner[O], error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	opts = append([]Option{FragmentSize(fragSizeFor(fi.Size()))}, opts...)
	s := NewScanner(file, p, opts...)
	s.closer = file
	tracer().Debugf("stream: opened %s (%d bytes), fragment size %d", name, fi.Size(), s.conf.fragSize)
	return s, nil
}

func fragSizeFor(size int64) int {
	switch {
	case size < 64:
		return 64
	case size < 1024:
		return 256
	case size < tenKb:
		return 1024
	case size < hundredKb:
		return twoKb
	case size < oneMb:
		return sixKb
	}
	return 4 * sixKb
}

// Scan applies the parser to the unconsumed input, reading more input as
// long as the parser reports Incomplete. It returns true if the parser
// succeeded; the value is available through Value. Scan returns false at the
// end of input or after an error.
func (s *Scanner[O]) Scan() bool {
	if s.err != nil {
		return false
	}
	need := 0
	for {
		if s.eof && len(s.buf) == 0 {
			s.err = io.EOF
			return false
		}
		if !s.eof && len(s.buf) < max(need, 1) {
			if s.fill(need) != nil {
				return false
			}
			continue
		}
		// with input ended, the parser gets a last chance on what is left
		r := s.parser(s.buf)
		switch {
		case r.IsDone():
			rest, _ := r.RemainingInput()
			consumed := len(s.buf) - len(rest)
			if consumed <= 0 {
				s.err = fmt.Errorf("%w at offset %d", ErrNoProgress, s.offset)
				return false
			}
			s.value, _ = r.Output()
			s.buf = rest
			s.offset += int64(consumed)
			return true
		case r.IsError():
			if s.eof || !s.conf.retries(r.Err()) {
				s.err = fmt.Errorf("stream: parse error at offset %d: %w", s.offset, r.Err())
				return false
			}
			tracer().Debugf("stream: retrying after %v at offset %d", r.Err(), s.offset)
			need = len(s.buf) + 1
		default:
			n, _ := r.Needed()
			need = len(s.buf) + 1
			if n.IsKnown() && n.Size() > need {
				need = n.Size()
			}
			tracer().Debugf("stream: parser needs %v, have %d bytes at offset %d", n, len(s.buf), s.offset)
		}
		if s.eof {
			s.err = fmt.Errorf("%w at offset %d (%d bytes pending)", ErrUnexpectedEOF, s.offset, len(s.buf))
			return false
		}
		if s.fill(need) != nil {
			return false
		}
	}
}

// fill reads input until at least need bytes are buffered, the reader is
// exhausted, or an error occurs. With need <= len(buf), fill reads once.
//
// Bytes are appended behind the unconsumed input, never in front of it, so
// values handed out earlier are left alone. If there is not enough room,
// the unconsumed input moves to a new array.
func (s *Scanner[O]) fill(need int) error {
	if need > s.conf.maxBuf {
		s.err = fmt.Errorf("%w: %d bytes needed, limit is %d", ErrBufferFull, need, s.conf.maxBuf)
		return s.err
	}
	want := max(need, len(s.buf)+1)
	if cap(s.buf) < want || cap(s.buf)-len(s.buf) < s.conf.fragSize/2 {
		size := min(max(want, len(s.buf)+s.conf.fragSize), s.conf.maxBuf)
		grown := make([]byte, len(s.buf), size)
		copy(grown, s.buf)
		s.buf = grown
	}
	empty := 0
	for len(s.buf) < want {
		n, err := s.r.Read(s.buf[len(s.buf):cap(s.buf)])
		s.buf = s.buf[:len(s.buf)+n]
		if errors.Is(err, io.EOF) {
			s.eof = true
			return nil
		} else if err != nil {
			s.err = fmt.Errorf("stream: read error at offset %d: %w", s.offset+int64(len(s.buf)), err)
			return s.err
		}
		if n == 0 {
			if empty++; empty >= maxEmptyReads {
				s.err = io.ErrNoProgress
				return s.err
			}
		}
	}
	return nil
}

// Value returns the value recognized by the most recent successful Scan.
func (s *Scanner[O]) Value() O {
	return s.value
}

// Err returns the first error the scanner ran into. A clean end of input is
// not an error.
func (s *Scanner[O]) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Offset returns the position in the stream up to which input has been
// consumed.
func (s *Scanner[O]) Offset() int64 {
	return s.offset
}

// Buffered returns the input which has been read but not yet consumed.
func (s *Scanner[O]) Buffered() []byte {
	return s.buf
}

// Subscribe registers a subscriber for values published by Run. capacity is
// the channel capacity of the subscriber. Subscriptions end with the
// cancellation of ctx or on Close.
func (s *Scanner[O]) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	if s.cast == nil {
		s.cast = caster.New(nil)
	}
	return s.cast.Sub(ctx, capacity)
}

// Run scans until the end of input or the first error, publishing every
// value to the subscribers. Run blocks while a subscriber does not accept a
// value. Run returns the same error as Err.
func (s *Scanner[O]) Run() error {
	count := 0
	for s.Scan() {
		if s.cast != nil {
			s.cast.Pub(s.value)
		}
		count++
	}
	tracer().Infof("stream: %d values scanned up to offset %d", count, s.offset)
	return s.Err()
}

// Close ends all subscriptions and closes the underlying file, if the
// scanner has been created by Open.
func (s *Scanner[O]) Close() error {
	if s.cast != nil {
		s.cast.Close()
	}
	if s.closer != nil {
		err := s.closer.Close()
		s.closer = nil
		return err
	}
	return nil
}
