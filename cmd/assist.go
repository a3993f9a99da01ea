package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davral/etfpulse/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `etp assist [question]

  Starts an interactive session with the AI assistant. The assistant can
  read the enriched holdings and the latest screener results, and search
  for market context. Requires a GEMINI_API_KEY.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	strategist := agent.NewStrategist()
	analyst := agent.NewAnalyst(*outputDir)
	screener := agent.NewScreener(*outputDir)
	a := agent.New(os.Stdout, os.Stdin, strategist, analyst, screener)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
