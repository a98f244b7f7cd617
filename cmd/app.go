// Package cmd implements the CLI application to manage a household.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/household"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them all
// on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&healthCmd{},
	&forecastCmd{},
	&networthCmd{},
	&budgetCmd{},
	&alertsCmd{},
	&vestingCmd{},
	&memberCmd{},
	&accountCmd{},
	&txCmd{},
	&goalCmd{},
	&fmtCmd{},
	&importBankCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("file", "household.jsonl", "Path to the household file (JSONL format)")

// loadSnapshot reads the household file into a snapshot dated on.
// A missing file yields an empty snapshot rather than an error.
func loadSnapshot(on household.Date) (*household.Snapshot, error) {
	f, err := os.Open(*snapshotFile)
	if errors.Is(err, fs.ErrNotExist) {
		return household.NewSnapshot(on), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open household file %q: %w", *snapshotFile, err)
	}
	defer f.Close()
	return household.DecodeSnapshot(f, on)
}

// appendRecords appends records to the household file, creating it if
// needed.
func appendRecords(records ...household.Record) subcommands.ExitStatus {
	if err := household.ValidateRecords(records...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid record: %v\n", err)
		return subcommands.ExitFailure
	}

	f, err := os.OpenFile(*snapshotFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening household file %q: %v\n", *snapshotFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := household.EncodeRecords(f, records...); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to household file %q: %v\n", *snapshotFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %d record(s) to %s\n", len(records), *snapshotFile)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// parseDateFlag parses a -d flag value, empty meaning today.
func parseDateFlag(date string) (household.Date, error) {
	if date == "" {
		return household.Today(), nil
	}
	return household.ParseDate(date)
}
