package agent

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davral/etfpulse"
	"github.com/davral/etfpulse/date"
	"github.com/davral/etfpulse/kurv"
	"github.com/davral/etfpulse/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert skills you can reach through the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs the wheel strategy (covered calls and cash-secured puts) and tracks
			covered-call ETFs. He is here to understand what those funds hold and to find
			underlyings worth wheeling.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request. Check the holdings first when the user mentions a fund.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewStrategist returns a search-grounded expert for market context.
func NewStrategist() *Expert {
	return &Expert{
		Name: "Strategist",
		Description: `This is an expert options strategist,
		very well aware of financial products, issuers and market structure,
		and of the latest news about companies and funds.
		Ask the Strategist whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in options trading and the wheel strategy. You can search and
			find anything related to companies, markets, funds and option chains. You
			leverage Google Search to ground your assertions in solid truth, and you know
			how to relate the latest news to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the enriched holdings files
// stored under dir.
func NewAnalyst(dir string) *Expert {
	lib := []Function{listFunds(dir), fundSummary(dir)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He reads the decoded holdings of the tracked
		covered-call ETFs: every stock, written call and written put position, with
		strikes, expirations and classifications.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's ETF holdings files.
				You know how to use the Tools to list the tracked funds and to read the
				per-classification summary of any of them. Other experts might ask you
				questions, pardon their approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewScreener returns the expert in charge of the latest weekly screener run
// stored under dir.
func NewScreener(dir string) *Expert {
	lib := []Function{weeklysTable(dir)}

	return &Expert{
		Name: "Screener",
		Description: `This is the Screener. He knows the latest weekly options screener
		results: every underlying with weekly options, with price, implied volatility,
		trend and valuation metrics. Ask him for wheel candidates.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are in charge of the weekly options screener results.
				Use the Tools to read the latest run. An up trend with a high implied
				volatility and no imminent earnings makes a good wheel candidate;
				say so when asked for picks, but let the user decide.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements Function with plain fields.
type Func struct {
	Decl *genai.FunctionDeclaration
	Run  func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Run(ctx, id, args)
}

// failure builds the error response of a function call.
func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

// success builds the output response of a function call.
func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}

// listFunds lists the ETFs with an enriched holdings file under dir.
func listFunds(dir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "ListFunds",
			Description: `ListFunds lists the ticker symbols of the covered-call ETFs the user tracks.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A comma-separated list of ETF ticker symbols.",
			},
		},
		Run: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			matches, err := filepath.Glob(filepath.Join(dir, "enriched_*.csv"))
			if err != nil {
				return failure(id, "ListFunds", err)
			}
			var funds []string
			for _, m := range matches {
				name := strings.TrimSuffix(filepath.Base(m), ".csv")
				funds = append(funds, strings.TrimPrefix(name, "enriched_"))
			}
			if len(funds) == 0 {
				return failure(id, "ListFunds", fmt.Errorf("no enriched holdings found in %q, run 'etp enrich' first", dir))
			}
			return success(id, "ListFunds", strings.Join(funds, ", "))
		},
	}
}

// fundSummary renders the per-classification summary of one ETF.
func fundSummary(dir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "FundSummary",
			Description: `FundSummary reads the enriched holdings of one ETF and returns its
			per-classification summary: positions, quantities and market value for stocks,
			covered calls, cash-secured puts and long options.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"etf": {
						Type:        genai.TypeString,
						Description: "The ETF ticker symbol, e.g. KYLD.",
					},
				},
				Required: []string{"etf"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted summary table of the fund's holdings.",
			},
		},
		Run: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			etf, ok := args["etf"].(string)
			if !ok {
				return failure(id, "FundSummary", fmt.Errorf("argument 'etf' is not a string but %T", args["etf"]))
			}
			report, err := summarize(dir, etf)
			if err != nil {
				return failure(id, "FundSummary", err)
			}
			return success(id, "FundSummary", renderer.RenderSummary(renderer.NewSummary(report)))
		},
	}
}

// summarize loads the enriched holdings of an ETF and aggregates them.
func summarize(dir, etf string) (*etfpulse.SummaryReport, error) {
	path := filepath.Join(dir, kurv.EnrichedName(etf))
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("no enriched holdings for %s, run 'etp enrich %s' first: %w", etf, etf, err)
	}
	defer f.Close()

	holdings, err := etfpulse.DecodeHoldings(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	// re-derive the classifications, the file only stores them for humans
	holdings.Enrich(strings.ToUpper(etf))
	return etfpulse.NewSummaryReport(holdings, date.Today()), nil
}

// weeklysTable reads the latest weekly screener results under dir.
func weeklysTable(dir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "WeeklyCandidates",
			Description: `WeeklyCandidates returns the latest weekly options screener run:
			every underlying with weekly options, with price, ATM implied volatility,
			moving-average trend, valuation ratios and the next earnings date.
			Up-trending names are listed first.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of screened underlyings.",
			},
		},
		Run: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			path := filepath.Join(dir, "weeklys_latest.csv")
			f, err := os.Open(path)
			if err != nil {
				return failure(id, "WeeklyCandidates", fmt.Errorf("no screener results, run 'etp weeklys' first: %w", err))
			}
			defer f.Close()

			rows, err := etfpulse.DecodeWeeklys(f)
			if err != nil {
				return failure(id, "WeeklyCandidates", fmt.Errorf("cannot read %q: %w", path, err))
			}
			view := renderer.NewWeeklys(date.Today(), rows, 0)
			return success(id, "WeeklyCandidates", renderer.RenderWeeklys(view))
		},
	}
}
