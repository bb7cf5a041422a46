package prompts

import "testing"

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"short", "hi", 1},
		{"exactly four chars", "test", 1},
		{"five chars rounds up", "hello", 2},
		{"typical sentence", "The quick brown fox jumps over the lazy dog.", 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateTokens(tt.input)
			if got != tt.want {
				t.Errorf("EstimateTokens(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTemplateEstimateTokens(t *testing.T) {
	tpl := Template{
		Messages: []Message{
			{Role: "system", Text: "be brief"}, // 4 overhead + 2
			{Role: "user", Text: "hello"},      // 4 overhead + 2
		},
	}
	if got := tpl.EstimateTokens(); got != 12 {
		t.Errorf("EstimateTokens() = %d, want 12", got)
	}
}

func TestTemplateEstimateTokens_AllRegistered(t *testing.T) {
	// Sanity bounds for every shipped template. Guards against the
	// estimate being wildly off for real prompt text.
	for _, catalog := range Catalogs() {
		for _, name := range Names(catalog) {
			tpl, err := LookupIn(catalog, name)
			if err != nil {
				t.Fatal(err)
			}
			got := tpl.EstimateTokens()
			if got < 5 || got > 500 {
				t.Errorf("%s/%s: estimated %d tokens, expected between 5 and 500", catalog, name, got)
			}
		}
	}
}
