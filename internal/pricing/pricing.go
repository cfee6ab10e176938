// Package pricing estimates the USD cost of Gemini API calls from a
// static price table.
// Source: https://ai.google.dev/gemini-api/docs/pricing
package pricing

import "strings"

// ModelPricing holds USD prices per 1,000,000 tokens, input and output
// priced independently.
type ModelPricing struct {
	Input  float64
	Output float64
}

// defaultModel absorbs unknown model names.
const defaultModel = "gemini-2.0-flash"

var geminiPricing = map[string]ModelPricing{
	"gemini-2.0-flash":       {Input: 0.10, Output: 0.40},
	"gemini-2.5-flash":       {Input: 0.30, Output: 2.50},
	"gemini-2.5-pro":         {Input: 1.25, Output: 10.00},
	"gemini-1.5-pro":         {Input: 1.25, Output: 5.00},
	"gemini-1.5-flash":       {Input: 0.075, Output: 0.30},
	"gemini-3-pro-preview":   {Input: 2.00, Output: 12.00},
	"gemini-3-flash-preview": {Input: 0.50, Output: 3.00},
}

// orderedModels keeps prefix resolution deterministic; map iteration
// order is not.
var orderedModels = []string{
	"gemini-2.0-flash",
	"gemini-2.5-flash",
	"gemini-2.5-pro",
	"gemini-1.5-pro",
	"gemini-1.5-flash",
	"gemini-3-pro-preview",
	"gemini-3-flash-preview",
}

// Lookup resolves a model name to its pricing: exact match first, then
// the first table key that prefixes the name (absorbs dated suffixes like
// "gemini-2.0-flash-001"), then the default model.
func Lookup(model string) ModelPricing {
	if p, ok := geminiPricing[model]; ok {
		return p
	}
	for _, key := range orderedModels {
		if strings.HasPrefix(model, key) {
			return geminiPricing[key]
		}
	}
	return geminiPricing[defaultModel]
}

// EstimateCost returns the estimated USD cost of one call. Pure and
// total: any model name and any token counts yield a numeric result.
func EstimateCost(model string, promptTokens, completionTokens int) float64 {
	p := Lookup(model)
	return (float64(promptTokens)*p.Input + float64(completionTokens)*p.Output) / 1_000_000
}
