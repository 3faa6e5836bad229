package splitter_test

import (
	"errors"
	"fmt"

	"github.com/sonali8434/IRanges/irerrors"
	"github.com/sonali8434/IRanges/splitter"
)

func ExampleSplit() {
	values, err := splitter.Split("1888,2586,3390", ',')
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(values)
	// Output: [1888 2586 3390]
}

func ExampleSplitter_Split_failure() {
	s, _ := splitter.New(',')
	_, err := s.Split("1,2,")
	fmt.Println(err)
	// Output: decimal integer expected at char 5
}

func ExampleSplitter_SplitAll() {
	s, _ := splitter.New(',')
	lists, err := s.SplitAll([]string{"1,2,3", "4,5"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(lists)
	// Output: [[1 2 3] [4 5]]
}

func ExampleSplitter_Split_reasons() {
	s, _ := splitter.New(',')
	_, err := s.Split("1,2147483648")
	var splitErr *irerrors.SplitError
	if errors.As(err, &splitErr) {
		fmt.Printf("%s at offset %d\n", splitErr.Reason, splitErr.Offset)
	}
	// Output: out of range integer at offset 13
}
