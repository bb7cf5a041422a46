// Package tools describes the copilot's callable utilities to an external
// agent framework: each Tool pairs a function-calling declaration (name,
// guidance for the model, JSON Schema parameters) with the Go function that
// executes it.
//
// Both tools take a single string and always return a human-readable string,
// success or failure, so an agent can relay the result to an end user
// without error translation. No tool-selection or retry logic lives here.
package tools

import (
	"healthcopilot/reminder"
	"healthcopilot/tips"
)

type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any // JSON Schema
	Run         func(input string) string
}

// All returns the tool set bound to the given tip catalog.
func All(catalog tips.Catalog) []Tool {
	return []Tool{
		{
			Name: "get_health_tips",
			Description: "Return preventive health tips for a given health condition. " +
				"Call this ONLY when the user is explicitly asking for preventive advice " +
				"tied to a specific condition name. Returns a bullet list of tips, or " +
				"'No tips found for: <condition>' for an unknown condition.",
			Parameters: objReq(map[string]any{
				"condition": prop("string", "Short condition name such as 'stress', 'diabetes', or 'hypertension'. Case-insensitive."),
			}, "condition"),
			Run: catalog.Lookup,
		},
		{
			Name: "schedule_preventive_reminder",
			Description: "Schedule a preventive health reminder at a specific datetime. " +
				"Input format: 'ISO_DATETIME || reminder message', e.g. " +
				"'2025-01-01T08:00:00 || Morning walk'. The datetime must follow ISO 8601 " +
				"(YYYY-MM-DDTHH:MM:SS). Use this when the user wants something scheduled at " +
				"a specific time rather than a relative duration (e.g. 'in 2 hours').",
			Parameters: objReq(map[string]any{
				"input": prop("string", "Combined input: 'YYYY-MM-DDTHH:MM:SS || reminder message'."),
			}, "input"),
			Run: reminder.Schedule,
		},
	}
}

// Helper functions for building JSON Schema objects.

func prop(typ, desc string) map[string]any {
	return map[string]any{"type": typ, "description": desc}
}

func obj(properties map[string]any) map[string]any {
	if properties == nil {
		properties = map[string]any{}
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
	}
}

func objReq(properties map[string]any, required ...string) map[string]any {
	s := obj(properties)
	s["required"] = required
	return s
}
