package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/sonali8434/IRanges/strutil"
)

// ExplodeFlags contains flags for the explode command
type ExplodeFlags struct {
	Format string
	Output string
}

// SetupExplodeFlags creates and configures a FlagSet for the explode command.
func SetupExplodeFlags() (*flag.FlagSet, *ExplodeFlags) {
	fs := flag.NewFlagSet("explode", flag.ContinueOnError)
	flags := &ExplodeFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "output", "", "write output to a file instead of stdout")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: iranges explode [flags] <string>\n\n")
		Writef(output, "Explode a string into single characters, one per byte.\n")
		Writef(output, "Safe on arbitrary content, including invalid UTF-8.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  iranges explode \"abc\"\n")
		Writef(output, "  iranges explode -format json \"1,2\"\n")
	}

	return fs, flags
}

// HandleExplode executes the explode command
func HandleExplode(args []string) error {
	fs, flags := SetupExplodeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("explode command requires exactly one string")
	}

	chars := strutil.Explode(fs.Arg(0))

	if flags.Format == FormatText {
		var sb strings.Builder
		for _, c := range chars {
			sb.WriteString(c)
			sb.WriteByte('\n')
		}
		return EmitText(sb.String(), flags.Output)
	}
	return EmitStructured(chars, flags.Format, flags.Output)
}
