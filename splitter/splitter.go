package splitter

import (
	"strconv"

	"github.com/sonali8434/IRanges/irerrors"
)

// Splitter splits delimited integer-list strings under a fixed separator.
//
// A Splitter owns a reusable IntBuffer: every Split call resets it, fills it
// during the scan, and materializes it into a fresh result slice, so many
// calls on one Splitter allocate only their results. A Splitter is not safe
// for concurrent use; create one per goroutine.
type Splitter struct {
	// Sep is the separator character. It must not be a decimal digit,
	// '+', or '-', since those are ambiguous with number syntax.
	Sep byte

	// Buffer accumulates values during a scan. If nil, a buffer is
	// allocated on first use.
	Buffer *IntBuffer

	// Logger receives diagnostic output. If nil, logging is disabled.
	Logger Logger
}

// New returns a Splitter for the given separator, configured by opts.
// It fails with a ConfigError if the separator is a decimal digit, '+',
// or '-', or if the options are invalid.
func New(sep byte, opts ...Option) (*Splitter, error) {
	if err := checkSep(sep); err != nil {
		return nil, err
	}
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	buf := cfg.buffer
	if buf == nil {
		buf = NewIntBuffer(cfg.capacityHint)
	}
	logger := cfg.logger
	if logger == nil {
		logger = NopLogger{}
	}
	return &Splitter{Sep: sep, Buffer: buf, Logger: logger}, nil
}

// Split is a convenience wrapper that splits one string with a one-shot
// Splitter. Callers splitting many strings should construct a Splitter once
// and reuse it so the internal buffer amortizes.
func Split(input string, sep byte) ([]int32, error) {
	s, err := New(sep)
	if err != nil {
		return nil, err
	}
	return s.Split(input)
}

// Split parses input as a list of decimal int32 values delimited by s.Sep.
//
// The scan is a single left-to-right pass: at each field it takes the
// longest signed decimal literal (optional '+' or '-', then digits),
// range-checks it against int32, appends it to the buffer, skips any run of
// blanks or tabs, and then requires either end of input or the separator.
// Blank and tab runs are also tolerated between a separator and the next
// literal, but a blank never substitutes for the separator itself, and no
// other whitespace is accepted anywhere. The empty string yields an empty,
// non-nil result. A trailing separator fails: once a separator is consumed,
// another literal must follow.
//
// On failure the returned error is a *irerrors.SplitError carrying the
// reason and the 1-based character offset, or a *irerrors.ConfigError when
// s.Sep violates its precondition. No partial results are returned.
func (s *Splitter) Split(input string) ([]int32, error) {
	if err := checkSep(s.Sep); err != nil {
		return nil, err
	}
	if s.Buffer == nil {
		s.Buffer = NewIntBuffer(0)
	}
	buf := s.Buffer
	buf.Reset()

	if len(input) == 0 {
		return buf.Materialize(), nil
	}

	offset := 0
	for {
		pos := offset
		for pos < len(input) && isBlank(input[pos]) {
			pos++
		}
		n := scanIntLiteral(input[pos:])
		if n == 0 {
			// Reported at the field start, before any leading
			// blanks, matching the historical diagnostics.
			return nil, &irerrors.SplitError{
				Reason: irerrors.ReasonExpectedInteger,
				Offset: offset + 1,
			}
		}
		lit := input[pos : pos+n]
		offset = pos + n
		for offset < len(input) && isBlank(input[offset]) {
			offset++
		}
		val, err := strconv.ParseInt(lit, 10, 32)
		if err != nil {
			// scanIntLiteral guarantees the syntax, so the only
			// possible failure is a range overflow. The reported
			// offset points just past the literal and any blank
			// run, matching the historical diagnostics.
			return nil, &irerrors.SplitError{
				Reason: irerrors.ReasonIntegerOutOfRange,
				Offset: offset + 1,
			}
		}
		buf.Append(int32(val))
		if offset == len(input) {
			break
		}
		if input[offset] != s.Sep {
			return nil, &irerrors.SplitError{
				Reason: irerrors.ReasonExpectedSeparator,
				Offset: offset + 1,
			}
		}
		// Past the separator another literal is required, so a
		// trailing separator fails on the next iteration.
		offset++
	}

	if s.Logger != nil {
		s.Logger.Debug("split complete", "len", len(input), "tokens", buf.Len())
	}
	return buf.Materialize(), nil
}

// checkSep rejects separator characters that are ambiguous with number
// syntax: decimal digits, '+', and '-'.
func checkSep(sep byte) error {
	if (sep >= '0' && sep <= '9') || sep == '+' || sep == '-' {
		return irerrors.NewSeparatorError(sep)
	}
	return nil
}

// scanIntLiteral returns the length of the signed decimal integer literal at
// the start of s, or 0 if none starts there. A sign with no following digit
// is not a literal.
func scanIntLiteral(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	return i
}

// isBlank reports horizontal whitespace: blank or tab only, never newline.
func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
