package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/household"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the household file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `hcs fmt

  Reads the household file, validates every record, and writes it back
  in canonical order: members, accounts, transactions sorted by date,
  assets, goals, vesting schedules, budgets, summaries.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSnapshot(household.Today())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading household: %v\n", err)
		return subcommands.ExitFailure
	}
	if !s.HasData() {
		fmt.Fprintln(os.Stderr, "Warning: nothing to format.")
		return subcommands.ExitSuccess
	}

	tmp := *snapshotFile + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", tmp, err)
		return subcommands.ExitFailure
	}
	if err := household.EncodeSnapshot(out, s); err != nil {
		out.Close()
		os.Remove(tmp)
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", tmp, err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		fmt.Fprintf(os.Stderr, "Error closing %q: %v\n", tmp, err)
		return subcommands.ExitFailure
	}
	if err := os.Rename(tmp, *snapshotFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error replacing %q: %v\n", *snapshotFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %s\n", *snapshotFile)
	return subcommands.ExitSuccess
}
