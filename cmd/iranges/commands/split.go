package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	iranges "github.com/sonali8434/IRanges"
	"github.com/sonali8434/IRanges/splitter"
)

// SplitFlags contains flags for the split command
type SplitFlags struct {
	Sep    string
	File   string
	Format string
	Output string
	Quiet  bool
}

// SetupSplitFlags creates and configures a FlagSet for the split command.
// Returns the FlagSet and a SplitFlags struct with bound flag variables.
func SetupSplitFlags() (*flag.FlagSet, *SplitFlags) {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	flags := &SplitFlags{}

	fs.StringVar(&flags.Sep, "sep", ",", "separator character (not a digit, '+', or '-')")
	fs.StringVar(&flags.File, "file", "", "batch file with a 'strings' list (YAML or JSON), or '-' for stdin")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "output", "", "write output to a file instead of stdout")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: iranges split [flags] <string>...\n\n")
		Writef(output, "Split delimited integer-list strings into validated integers.\n")
		Writef(output, "Malformed input fails with a position-anchored error; nothing is coerced.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  iranges split \"1,2,3\" \"4,5\"\n")
		Writef(output, "  iranges split -sep ';' \"1;2;3\"\n")
		Writef(output, "  iranges split -file batch.yaml -format json\n")
		Writef(output, "  cat batch.yaml | iranges split -file - -format yaml\n")
		Writef(output, "\nBatch file format (YAML or JSON):\n")
		Writef(output, "  sep: \",\"        # optional separator override\n")
		Writef(output, "  strings:\n")
		Writef(output, "    - \"1,2,3\"\n")
		Writef(output, "    - \"4,5\"\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    All strings split successfully\n")
		Writef(output, "  1    Invalid configuration or a string failed to split\n")
	}

	return fs, flags
}

// HandleSplit executes the split command
func HandleSplit(args []string) error {
	fs, flags := SetupSplitFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	sepStr := flags.Sep
	var inputs []*string
	if flags.File != "" {
		if fs.NArg() != 0 {
			return fmt.Errorf("split command takes either -file or positional strings, not both")
		}
		doc, err := LoadBatchFile(flags.File)
		if err != nil {
			return err
		}
		if doc.Sep != nil {
			sepStr = *doc.Sep
		}
		inputs = doc.Strings
	} else {
		if fs.NArg() == 0 {
			fs.Usage()
			return fmt.Errorf("split command requires at least one string or -file")
		}
		for _, arg := range fs.Args() {
			inputs = append(inputs, &arg)
		}
	}

	sep, err := ParseSeparator(sepStr)
	if err != nil {
		return err
	}

	s, err := splitter.New(sep)
	if err != nil {
		return err
	}
	lists, err := s.SplitValues(inputs)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		Writef(os.Stderr, "iranges version: %s\n", iranges.Version())
		Writef(os.Stderr, "Strings: %d\n", len(lists))
	}

	if flags.Format == FormatText {
		return EmitText(renderLists(lists, sep), flags.Output)
	}
	return EmitStructured(lists, flags.Format, flags.Output)
}

// renderLists renders one line per input, values joined by the separator, so
// text output round-trips through split again.
func renderLists(lists [][]int32, sep byte) string {
	var sb strings.Builder
	for _, list := range lists {
		for i, v := range list {
			if i > 0 {
				sb.WriteByte(sep)
			}
			sb.WriteString(strconv.FormatInt(int64(v), 10))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
