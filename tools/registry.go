package tools

import (
	"encoding/json"

	"healthcopilot/prompts"
	"healthcopilot/tips"
)

// Registry holds the tool set keyed by name for dispatch, preserving
// declaration order for listings.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry builds a registry over the given tip catalog. Pass
// tips.Default() unless an override catalog is in play.
func NewRegistry(catalog tips.Catalog) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range All(catalog) {
		r.tools[t.Name] = t
		r.order = append(r.order, t.Name)
	}
	return r
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the tool names in declaration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Declarations returns every tool in the function-calling wire shape
// expected by chat-completion style APIs.
func (r *Registry) Declarations() []map[string]any {
	result := make([]map[string]any, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		result = append(result, map[string]any{
			"type": "function",
			"function": map[string]any{
				"name":        t.Name,
				"description": t.Description,
				"parameters":  t.Parameters,
			},
		})
	}
	return result
}

// EstimateTokens returns the estimated context cost of the tool
// declarations. Schemas are serialized as JSON in API requests and count
// against the caller's context budget.
func (r *Registry) EstimateTokens() int {
	total := 0
	for _, t := range r.tools {
		total += prompts.EstimateTokens(t.Name)
		total += prompts.EstimateTokens(t.Description)
		if schema, err := json.Marshal(t.Parameters); err == nil {
			total += prompts.EstimateTokens(string(schema))
		}
		total += 10 // per-tool framing overhead
	}
	return total
}
