package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sonali8434/IRanges/strutil"
)

// SetupSVNTimeFlags creates and configures a FlagSet for the svn-time command.
func SetupSVNTimeFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("svn-time", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: iranges svn-time\n\n")
		Writef(output, "Print the current time in Subversion format, e.g.\n")
		Writef(output, "  2007-12-07 10:03:15 -0800 (Fri, 07 Dec 2007)\n")
	}

	return fs
}

// HandleSVNTime executes the svn-time command
func HandleSVNTime(args []string) error {
	fs := SetupSVNTimeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("svn-time command takes no arguments")
	}

	Writef(os.Stdout, "%s\n", strutil.SVNTimeNow())
	return nil
}
