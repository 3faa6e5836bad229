package splitter

import "github.com/sonali8434/IRanges/irerrors"

// SplitAll splits each input string independently and returns one int32
// sequence per input, in order.
//
// Processing is sequential and fail-fast: the first string that fails aborts
// the batch and the error is a *irerrors.BatchError carrying the 1-based
// index of the offending element and its split error. There is no
// partial-results mode.
func (s *Splitter) SplitAll(inputs []string) ([][]int32, error) {
	if err := checkSep(s.Sep); err != nil {
		return nil, err
	}
	results := make([][]int32, 0, len(inputs))
	for i, input := range inputs {
		values, err := s.Split(input)
		if err != nil {
			return nil, &irerrors.BatchError{Index: i + 1, Cause: err}
		}
		results = append(results, values)
	}
	return results, nil
}

// SplitValues is SplitAll for inputs where strings may be absent, the shape
// produced by decoding YAML or JSON documents with null entries.
//
// A nil element is a hard input-validation failure for the whole batch:
// irerrors.ErrNullInput is returned before any string is split, distinct
// from a per-string parse failure.
func (s *Splitter) SplitValues(inputs []*string) ([][]int32, error) {
	if err := checkSep(s.Sep); err != nil {
		return nil, err
	}
	for _, input := range inputs {
		if input == nil {
			return nil, irerrors.ErrNullInput
		}
	}
	results := make([][]int32, 0, len(inputs))
	for i, input := range inputs {
		values, err := s.Split(*input)
		if err != nil {
			return nil, &irerrors.BatchError{Index: i + 1, Cause: err}
		}
		results = append(results, values)
	}
	return results, nil
}
