package agent

import (
	"google.golang.org/genai"
)

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// creates the facilitator
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user comes for financial advice about their savings: how to allocate them, how
			they could grow, whether their retirement is funded, or what is happening to a stock.
			Adapt your vocabulary to their knowledge level, as given in their profile.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.
			Never recommend buying or selling a specific security, you give education and general guidance only.
		`),
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the expert grounded on Google Search for recent market
// information.
func NewAnalyst(model string) *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is a market analyst,
		very well aware of financial products and institutions,
		and of the latest news about funds or companies.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are a market analyst, you can search and find about anything related to
			financial institutions, companies, markets, funds etc. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
			`),
		},
	}
}

// NewPlanner returns the expert computing on the user's profile with tools.
func NewPlanner(model string, tools *Tools) *Expert {
	lib := tools.Functions()
	return &Expert{
		Name: "Planner",
		Description: `This is the financial Planner. It knows the user's profile: age, objective,
		savings, horizon, risk tolerance and retirement goals. It computes the suggested allocation,
		projections of the savings, the retirement check, and reads market quotes with technical
		indicators. Ask the Planner for any figure about the user's situation.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You are a financial planner in charge of the user's profile.
			You know how to use the Tools to compute relevant figures about the user's situation.
			You are part of a team of experts, yours is everything about the user's profile and plan.
			They might ask you questions in approximate language, figure out what they meant.

			Always use the tools for figures, never compute them yourself:
			  - the profile
			  - the suggested allocation, possibly for another risk tolerance or horizon
			  - the projection of the savings
			  - the retirement check
			  - quotes and technical indicators of a symbol
			  - the documentation topics, to explain a term or a method
			`),
		},
		Library: NewLibrary(lib),
	}
}
