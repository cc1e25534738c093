package agent

import (
	"context"
	"fmt"

	"github.com/etnz/pennywise"
	"github.com/etnz/pennywise/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his personal finances: where his money is,
			what he spent it on, and who owes him.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.

			The user will assume that you already read his ledger, check the balances first to understand them.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAccountant builds the expert in charge of the user's ledger. The opener
// is called on every tool invocation so the expert always sees fresh data.
func NewAccountant(open func() (*pennywise.Store, error)) *Expert {

	lib := []Function{
		balancesFunc(open),
		transactionsFunc(open),
		pendingDebtsFunc(open),
	}

	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. He is in charge of reading the user's ledger.
		He can report balances per account or source, list recent transactions, and
		track pending debts.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant in charge of the user's personal ledger.
				You know how to use the Tools to extract relevant information about the user's money.
				You are part of a team of experts, yours is everything about the user's ledger. They might ask
				you questions about it, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the user's ledger
				  - balances per source and per account
				  - income, expense, transfer and debt entries
				  - pending debts, lent and borrowed
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func balancesFunc(open func() (*pennywise.Store, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Balances",
			Description: `Balances reports the current state of the user's money:
			balance per source (wallet, bank, NCMC), balance per active account,
			the total balance, and the pending debt totals.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report of all balances.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, err := open()
			if err != nil {
				return errorResponse(id, "Balances", err)
			}
			return outputResponse(id, "Balances", renderer.SummaryMarkdown(s.Summarize()))
		},
	}
}

func transactionsFunc(open func() (*pennywise.Store, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Transactions",
			Description: `Transactions lists the entries of one kind in the user's
			ledger, newest first.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"kind": {
						Type:        genai.TypeString,
						Description: "The kind of entries to list: income, expense, transfer or debt.",
						Enum:        []string{"income", "expense", "transfer", "debt"},
					},
				},
				Required: []string{"kind"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the requested entries.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			kind, ok := args["kind"].(string)
			if !ok {
				return errorResponse(id, "Transactions", fmt.Errorf("argument 'kind' is not a string as expected but %T", args["kind"]))
			}
			s, err := open()
			if err != nil {
				return errorResponse(id, "Transactions", err)
			}
			var out string
			switch kind {
			case "income":
				out = renderer.Incomes(s.Income())
			case "expense":
				out = renderer.Expenses(s.Expenses())
			case "transfer":
				out = renderer.Transfers(s.Transfers())
			case "debt":
				out = renderer.Debts(s.Debts())
			default:
				return errorResponse(id, "Transactions", fmt.Errorf("unknown kind %q, expected income, expense, transfer or debt", kind))
			}
			return outputResponse(id, "Transactions", out)
		},
	}
}

func pendingDebtsFunc(open func() (*pennywise.Store, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "PendingDebts",
			Description: `PendingDebts lists the debts still waiting to be settled,
			split between money the user lent and money the user borrowed, with the
			remaining amount on each.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of pending debts.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, err := open()
			if err != nil {
				return errorResponse(id, "PendingDebts", err)
			}
			pending := append(s.PendingDebts(pennywise.Lent), s.PendingDebts(pennywise.Borrowed)...)
			return outputResponse(id, "PendingDebts", renderer.Debts(pending))
		},
	}
}
