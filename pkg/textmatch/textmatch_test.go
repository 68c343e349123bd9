package textmatch

import "testing"

func TestContainsWord(t *testing.T) {
	tests := []struct {
		s       string
		literal string
		want    bool
	}{
		{"chips CRF clas", "CRF", true},
		{"chips crf clas", "CRF", true},
		{"SCRFX clas", "CRF", false},
		{"JUS 1,5L FIN", "1,5L", true},
		{"JUS 135L FIN", "1.5L", false},
		{"LAIT 1/2L", "1/2L", true},
		{"", "CRF", false},
	}

	for _, tt := range tests {
		if got := ContainsWord(tt.s, tt.literal); got != tt.want {
			t.Errorf("ContainsWord(%q, %q) = %v, want %v", tt.s, tt.literal, got, tt.want)
		}
	}
}

func TestDeleteWord(t *testing.T) {
	tests := []struct {
		s       string
		literal string
		want    string
	}{
		{"CRF chips CRF", "crf", " chips "},
		{"JUS 1.5L FIN", "1.5L", "JUS  FIN"},
		{"SCRFX", "CRF", "SCRFX"},
		{"a b", "c", "a b"},
	}

	for _, tt := range tests {
		if got := DeleteWord(tt.s, tt.literal); got != tt.want {
			t.Errorf("DeleteWord(%q, %q) = %q, want %q", tt.s, tt.literal, got, tt.want)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"  a   b ", "a b"},
		{"a\t\nb", "a b"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := CollapseWhitespace(tt.s); got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.s, got, tt.want)
		}
	}
}
