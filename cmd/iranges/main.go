package main

import (
	"context"
	"fmt"
	"os"

	iranges "github.com/sonali8434/IRanges"
	"github.com/sonali8434/IRanges/cmd/iranges/commands"
	"github.com/sonali8434/IRanges/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("iranges v%s\n", iranges.Version())
	case "help", "-h", "--help":
		printUsage()
	case "split":
		if err := commands.HandleSplit(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "explode":
		if err := commands.HandleExplode(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "svn-time":
		if err := commands.HandleSVNTime(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists every command suggestCommand may propose.
var knownCommands = []string{"split", "explode", "svn-time", "mcp", "version", "help"}

// suggestCommand returns the known command closest to input within edit
// distance 2, or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`iranges - strict integer-list string tools

Usage:
  iranges <command> [options]

Commands:
  split       Split delimited integer-list strings into validated integers
  explode     Explode a string into single characters
  svn-time    Print the current time in Subversion format
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  iranges split "1,2,3" "4,5"
  iranges split -sep ';' "1;2;3"
  iranges split -file batch.yaml -format json
  echo "strings: ['1,2', '3']" | iranges split -file -
  iranges explode "abc"

Run 'iranges <command> --help' for more information on a command.`)
}
