// Package irerrors provides structured error types for iranges.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors without matching on message text.
//
// # Error Categories
//
//   - SplitError: a parse failure in one input string, carrying the failure
//     reason and the 1-based character offset where it was detected
//   - ConfigError: invalid splitter configuration, such as a separator that
//     is a digit, '+', or '-'
//   - BatchError: a failure while splitting a collection of strings,
//     carrying the 1-based index of the offending element
//
// # Usage with errors.Is
//
//	values, err := s.Split(input)
//	if errors.Is(err, irerrors.ErrIntegerOutOfRange) {
//	    // the literal parsed but exceeds int32 range
//	}
//
// # Usage with errors.As
//
//	var splitErr *irerrors.SplitError
//	if errors.As(err, &splitErr) {
//	    fmt.Printf("failed at char %d: %s\n", splitErr.Offset, splitErr.Reason)
//	}
package irerrors
