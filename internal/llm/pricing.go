package llm

import "strings"

// ModelCost is USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD cost of the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1e6
}

// EstimateCost prices a request by model ID. OpenRouter IDs such as
// "openai/gpt-4o-mini" fall back to the bare model name. The second result
// is false when the model has no pricing entry; local Ollama models never do.
func EstimateCost(modelID string, inputTokens, outputTokens int) (float64, bool) {
	c, ok := modelCosts[modelID]
	if !ok {
		if _, bare, found := strings.Cut(modelID, "/"); found {
			c, ok = modelCosts[bare]
		}
	}
	if !ok {
		return 0, false
	}
	return c.Cost(inputTokens, outputTokens), true
}

func price(in, out float64) ModelCost {
	return ModelCost{InputPerMTok: in, OutputPerMTok: out}
}

// modelCosts lists list prices from models.dev, last checked 2026-02-15.
var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5":           price(1, 5),
	"claude-haiku-4-5-20251001":  price(1, 5),
	"claude-3-5-haiku-20241022":  price(0.8, 4),
	"claude-3-5-haiku-latest":    price(0.8, 4),
	"claude-3-haiku-20240307":    price(0.25, 1.25),
	"claude-sonnet-4-5":          price(3, 15),
	"claude-sonnet-4-5-20250929": price(3, 15),
	"claude-sonnet-4-0":          price(3, 15),
	"claude-sonnet-4-20250514":   price(3, 15),
	"claude-3-7-sonnet-20250219": price(3, 15),
	"claude-3-7-sonnet-latest":   price(3, 15),
	"claude-opus-4-1":            price(15, 75),
	"claude-opus-4-1-20250805":   price(15, 75),
	"claude-opus-4-20250514":     price(15, 75),
	"claude-opus-4-5":            price(5, 25),
	"claude-opus-4-5-20251101":   price(5, 25),

	"gpt-4o":       price(2.5, 10),
	"gpt-4o-mini":  price(0.15, 0.6),
	"gpt-4.1":      price(2, 8),
	"gpt-4.1-mini": price(0.4, 1.6),
	"gpt-4.1-nano": price(0.1, 0.4),
	"gpt-5":        price(1.25, 10),
	"gpt-5-mini":   price(0.25, 2),
	"gpt-5-nano":   price(0.05, 0.4),
	"gpt-5.1":      price(1.25, 10),
	"gpt-5.2":      price(1.75, 14),
	"o3":           price(2, 8),
	"o3-mini":      price(1.1, 4.4),
	"o4-mini":      price(1.1, 4.4),

	"gemini-2.0-flash":       price(0.1, 0.4),
	"gemini-2.0-flash-lite":  price(0.075, 0.3),
	"gemini-2.5-flash":       price(0.3, 2.5),
	"gemini-2.5-flash-lite":  price(0.1, 0.4),
	"gemini-2.5-pro":         price(1.25, 10),
	"gemini-3-flash-preview": price(0.5, 3),
	"gemini-3-pro-preview":   price(2, 12),
	"gemini-flash-latest":    price(0.3, 2.5),
}
