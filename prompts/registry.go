// Package prompts is a registry of named prompt templates for a
// preventive-health assistant. Each template encodes a reasoning strategy
// (direct answer, structured answer, ReAct, plan-and-solve, tool-calling
// agent) as an immutable sequence of role-tagged message texts with named
// {placeholder} slots.
//
// The registry hands templates out unrendered. Placeholder substitution is
// the caller's job, so a template can flow into whatever rendering layer
// the consuming agent framework uses.
package prompts

import (
	"errors"
	"fmt"
	"sort"
)

// Catalog variant names. Two catalogs define overlapping strategies with
// different wording; both are valid, neither supersedes the other.
const (
	CatalogChat  = "prompt"  // system/user message pairs
	CatalogPlain = "prompt1" // single self-contained prompt texts
)

// ErrUnknownTemplate is returned when a requested template or catalog name
// is not registered. There is no fallback template: silently returning an
// empty one would send a broken request downstream.
var ErrUnknownTemplate = errors.New("unknown template")

// Message is one role-tagged entry of a template.
type Message struct {
	Role string // system, user
	Text string // literal text, {placeholder} slots unfilled
}

// Template is an immutable named message sequence. Placeholders lists the
// slot names the caller must fill before sending the template downstream;
// the registry does not validate substitution.
type Template struct {
	Name         string
	Catalog      string
	Messages     []Message
	Placeholders []string
}

// clone returns a copy whose slices are detached from the registry, so a
// caller mutating the result cannot corrupt the registered template.
func (t Template) clone() Template {
	t.Messages = append([]Message(nil), t.Messages...)
	t.Placeholders = append([]string(nil), t.Placeholders...)
	return t
}

var catalogs = map[string][]Template{
	CatalogChat:  chatTemplates,
	CatalogPlain: plainTemplates,
}

// Lookup returns the named template from the chat catalog.
func Lookup(name string) (Template, error) {
	return LookupIn(CatalogChat, name)
}

// LookupIn returns the named template from the given catalog. Unknown
// catalog or template names fail with ErrUnknownTemplate.
func LookupIn(catalog, name string) (Template, error) {
	templates, ok := catalogs[catalog]
	if !ok {
		return Template{}, fmt.Errorf("%w: no catalog %q", ErrUnknownTemplate, catalog)
	}
	for _, t := range templates {
		if t.Name == name {
			return t.clone(), nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q in catalog %q", ErrUnknownTemplate, name, catalog)
}

// Names returns the sorted template names registered in a catalog, or nil
// for an unknown catalog.
func Names(catalog string) []string {
	templates, ok := catalogs[catalog]
	if !ok {
		return nil
	}
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	sort.Strings(names)
	return names
}

// Catalogs returns the sorted catalog variant names.
func Catalogs() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
