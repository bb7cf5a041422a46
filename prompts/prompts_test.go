package prompts

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestLookup_ChatCatalog(t *testing.T) {
	tests := []struct {
		name         string
		placeholders []string
	}{
		{"baseline", []string{"condition"}},
		{"structured", []string{"condition"}},
		{"react", []string{"query"}},
		{"plan_solve", []string{"query"}},
		{"tool_agent", []string{"input"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", tt.name, err)
			}
			if tpl.Catalog != CatalogChat {
				t.Errorf("Catalog = %q, want %q", tpl.Catalog, CatalogChat)
			}
			if len(tpl.Messages) != 2 {
				t.Fatalf("got %d messages, want 2", len(tpl.Messages))
			}
			if tpl.Messages[0].Role != "system" || tpl.Messages[1].Role != "user" {
				t.Errorf("roles = %q, %q; want system, user", tpl.Messages[0].Role, tpl.Messages[1].Role)
			}
			if !reflect.DeepEqual(tpl.Placeholders, tt.placeholders) {
				t.Errorf("Placeholders = %v, want %v", tpl.Placeholders, tt.placeholders)
			}
		})
	}
}

func TestLookupIn_PlainCatalog(t *testing.T) {
	for _, name := range []string{"baseline", "react", "plan_solve"} {
		t.Run(name, func(t *testing.T) {
			tpl, err := LookupIn(CatalogPlain, name)
			if err != nil {
				t.Fatalf("LookupIn(%q, %q) error: %v", CatalogPlain, name, err)
			}
			if len(tpl.Messages) != 1 {
				t.Fatalf("got %d messages, want 1", len(tpl.Messages))
			}
			if tpl.Messages[0].Role != "user" {
				t.Errorf("role = %q, want user", tpl.Messages[0].Role)
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	tests := []struct {
		name    string
		catalog string
		tplName string
	}{
		{"unknown template", CatalogChat, "socratic"},
		{"structured only exists in chat catalog", CatalogPlain, "structured"},
		{"unknown catalog", "prompt2", "baseline"},
		{"empty name", CatalogChat, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LookupIn(tt.catalog, tt.tplName)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, ErrUnknownTemplate) {
				t.Errorf("error %v does not wrap ErrUnknownTemplate", err)
			}
		})
	}
}

func TestPlaceholdersAppearInText(t *testing.T) {
	for _, catalog := range Catalogs() {
		for _, name := range Names(catalog) {
			tpl, err := LookupIn(catalog, name)
			if err != nil {
				t.Fatal(err)
			}
			var all strings.Builder
			for _, m := range tpl.Messages {
				all.WriteString(m.Text)
			}
			for _, p := range tpl.Placeholders {
				if !strings.Contains(all.String(), "{"+p+"}") {
					t.Errorf("%s/%s: declared placeholder {%s} not found in text", catalog, name, p)
				}
			}
		}
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	tpl, err := Lookup("baseline")
	if err != nil {
		t.Fatal(err)
	}
	tpl.Messages[0].Text = "clobbered"
	tpl.Placeholders[0] = "clobbered"

	again, err := Lookup("baseline")
	if err != nil {
		t.Fatal(err)
	}
	if again.Messages[0].Text == "clobbered" {
		t.Error("mutating a looked-up template changed the registry")
	}
	if again.Placeholders[0] == "clobbered" {
		t.Error("mutating looked-up placeholders changed the registry")
	}
}

func TestNames(t *testing.T) {
	got := Names(CatalogChat)
	want := []string{"baseline", "plan_solve", "react", "structured", "tool_agent"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names(%q) = %v, want %v", CatalogChat, got, want)
	}
	if Names("prompt2") != nil {
		t.Error("expected nil for an unknown catalog")
	}
}

func TestCatalogs(t *testing.T) {
	got := Catalogs()
	want := []string{CatalogChat, CatalogPlain}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Catalogs() = %v, want %v", got, want)
	}
}
