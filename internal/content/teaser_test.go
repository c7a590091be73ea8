package content

import "testing"

func TestTeaser(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"plain", "Depot and maintenance yard.", 0, "Depot and maintenance yard."},
		{"emphasis stripped", "**Headquarters** fit-out across *six* floors.", 0, "Headquarters fit-out across six floors."},
		{"heading and paragraph", "## Development\n\nWe take sites\nfrom acquisition.", 0, "Development We take sites from acquisition."},
		{"link label kept", "See [our work](https://example.com) today", 0, "See our work today"},
		{"code block dropped", "Intro\n\n```\nrm -rf /\n```\n\nOutro", 0, "Intro Outro"},
		{"truncated", "one two three four", 9, "one two…"},
		{"short enough", "tiny", 10, "tiny"},
		{"empty", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Teaser(tt.in, tt.max); got != tt.want {
				t.Errorf("Teaser(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
