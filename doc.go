// Package iranges provides strict string-to-integer-list splitting utilities.
//
// The library turns delimited strings of decimal integers (for example exon
// start/end lists such as "1888,2586,3390") into validated int32 sequences.
// Unlike a permissive split-and-coerce pipeline, every malformed input is
// rejected with a position-anchored error instead of being clamped, truncated,
// or silently dropped.
//
// # Overview
//
// The library consists of three packages:
//
//   - splitter: the strict tokenizer and its reusable growable buffer
//   - irerrors: structured error types for programmatic error handling
//   - strutil: byte-safe string explosion and Subversion-style timestamps
//
// # Quick Start
//
// Split a single string:
//
//	import "github.com/sonali8434/IRanges/splitter"
//
//	s, err := splitter.New(',')
//	if err != nil {
//		log.Fatal(err)
//	}
//	values, err := s.Split("1,2,3")
//	if err != nil {
//		log.Fatal(err) // e.g. "decimal integer expected at char 5"
//	}
//
// Split many strings with one reused buffer:
//
//	s, _ := splitter.New(',')
//	lists, err := s.SplitAll([]string{"1,2,3", "4,5"})
//
// Distinguish failure reasons:
//
//	import "github.com/sonali8434/IRanges/irerrors"
//
//	_, err := s.Split("1,2,")
//	var splitErr *irerrors.SplitError
//	if errors.As(err, &splitErr) {
//		fmt.Println(splitErr.Reason, splitErr.Offset)
//	}
//
// # Strictness
//
// The splitter rejects, rather than repairs:
//
//   - non-numeric tokens ("1,x,3")
//   - out-of-range values (anything outside int32)
//   - misplaced separators ("1;2" with separator ',')
//   - trailing separators ("1,2,")
//
// Horizontal whitespace (blank or tab) is tolerated only between a number and
// the following separator or end of string, matching the historical behavior
// of the splitting routine this package derives from.
//
// # Concurrency
//
// A Splitter owns a reusable buffer and is not safe for concurrent use.
// Create one Splitter per goroutine, or pass each call site its own buffer
// with splitter.WithBuffer.
//
// # Command-Line Interface
//
// In addition to the library packages, iranges provides a command-line
// interface:
//
//	# Split strings into integer lists
//	iranges split -sep , "1,2,3" "4,5"
//
//	# Split a batch file (YAML or JSON)
//	iranges split -file batch.yaml -format json
//
//	# Explode a string into single characters
//	iranges explode "abc"
//
//	# Run the MCP server over stdio
//	iranges mcp
//
// Install the CLI:
//
//	go install github.com/sonali8434/IRanges/cmd/iranges@latest
package iranges
