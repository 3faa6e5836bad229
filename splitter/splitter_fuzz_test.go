package splitter

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/sonali8434/IRanges/irerrors"
)

// FuzzSplit is a Go Fuzz Test targeting Split. It mutates the input to try
// and find strings that cause panics, and cross-checks every success against
// a strings.Split/strconv re-parse of the same input.
func FuzzSplit(f *testing.F) {
	seedCorpus := []string{
		"",
		"1,2,3",
		"1, 2,  3",
		"-1,+2",
		"1,2,",
		",1",
		"1;2",
		"2147483647",
		"-2147483648",
		"2147483648",
		"-2147483649",
		"99999999999999999999999999999",
		"1\t,2",
		"1 2",
		"10.3",
		"1,,2",
		"+,1",
		"\x00",
		"1,\xff,2",
		strings.Repeat("1,", 1000) + "1",
	}
	for _, seed := range seedCorpus {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		s, err := New(',')
		if err != nil {
			t.Fatalf("New(',') failed: %v", err)
		}

		values, err := s.Split(input)
		if err != nil {
			// Failures must be structured and positioned within the
			// input (offset is 1-based and may point one past the
			// end for truncated inputs).
			var splitErr *irerrors.SplitError
			if !errors.As(err, &splitErr) {
				t.Fatalf("Split(%q) returned unstructured error: %v", input, err)
			}
			if splitErr.Offset < 1 || splitErr.Offset > len(input)+1 {
				t.Fatalf("Split(%q) offset %d outside input", input, splitErr.Offset)
			}
			return
		}

		// On success, re-parsing each comma-separated field after
		// trimming blanks must reproduce the values.
		if input == "" {
			if len(values) != 0 {
				t.Fatalf("Split(%q) = %v, want empty", input, values)
			}
			return
		}
		fields := strings.Split(input, ",")
		if len(fields) != len(values) {
			t.Fatalf("Split(%q) = %d values, input has %d fields", input, len(values), len(fields))
		}
		for i, field := range fields {
			want, perr := strconv.ParseInt(strings.Trim(field, " \t"), 10, 32)
			if perr != nil {
				t.Fatalf("Split(%q) accepted field %q rejected by strconv: %v", input, field, perr)
			}
			if int32(want) != values[i] {
				t.Fatalf("Split(%q)[%d] = %d, want %d", input, i, values[i], want)
			}
		}
	})
}
