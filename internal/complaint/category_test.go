package complaint

import "testing"

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"wrong order", "Wrong Orders"},
		{"wrong orders", "Wrong Orders"},
		{"WRONG ORDER", "Wrong Orders"},
		{"  wait time  ", "Wait Times"},
		{"app", "App/Tech"},
		{"technology", "App/Tech"},
		{"cold food", "Cold Food"},
		{"cleanliness", "Cleanliness"},
	}

	for _, tt := range tests {
		if got := NormalizeCategory(tt.in); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestCategoryEmoji(t *testing.T) {
	if got := CategoryEmoji("fries"); got != "🍟" {
		t.Errorf("fries emoji = %q", got)
	}
	if got := CategoryEmoji("Wrong Order"); got != "📦" {
		t.Errorf("wrong order emoji = %q", got)
	}
	if got := CategoryEmoji("something else"); got != "🌶️" {
		t.Errorf("expected fallback emoji, got %q", got)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cold food", "Cold Food"},
		{"app/tech", "App/tech"},
		{"", ""},
		{"a  b", "A  B"},
	}

	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
