package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/household"
	"github.com/etnz/household/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd asks the AI assistant a question about the household. The
// reports are passed as context, never the raw transaction history.
type assistCmd struct {
	model string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant about your finances" }
func (*assistCmd) Usage() string {
	return `hcs assist <question>

  Sends the question to the assistant together with the household's
  summary, health score and current advice. Requires a configured
  Gemini API key.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Model to use.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a question is required.")
		return subcommands.ExitUsageError
	}
	question := strings.Join(f.Args(), " ")

	s, err := loadSnapshot(household.Today())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading household: %v\n", err)
		return subcommands.ExitFailure
	}

	totals := s.Totals()
	var prompt strings.Builder
	prompt.WriteString("You are a careful personal finance assistant for one household.\n")
	prompt.WriteString("Answer the question using only the reports below. Be concrete and brief.\n\n")
	prompt.WriteString(renderer.SummaryMarkdown(&totals))
	prompt.WriteString("\n")
	prompt.WriteString(renderer.HealthMarkdown(s.Health()))
	prompt.WriteString("\n")
	prompt.WriteString(renderer.AdviceMarkdown(s.Advice()))
	prompt.WriteString("\n\nQuestion: ")
	prompt.WriteString(question)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt.String()), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating answer:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
