// Package splitter implements strict splitting of delimited integer-list
// strings into validated int32 sequences.
//
// A Splitter scans one string left to right under a single caller-chosen
// separator character, accumulating parsed values in a reusable growable
// buffer so that splitting thousands of strings does not reallocate per call.
// Any malformed input fails with a position-anchored error from package
// irerrors; nothing is coerced, clamped, or dropped.
package splitter
