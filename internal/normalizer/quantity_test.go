package normalizer

import (
	"reflect"
	"testing"
)

func TestQuantityExtractor_Extract(t *testing.T) {
	e := NewQuantityExtractor()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "decimal with period canonicalized",
			input: "Desodorisant 2.5ml 4scent",
			want:  []string{"2,5ML"},
		},
		{
			name:  "decimal with comma kept",
			input: "BQ ALU 1,5L PROFONDE",
			want:  []string{"1,5L"},
		},
		{
			name:  "multiplier",
			input: "6X30g chips lisse",
			want:  []string{"6X30G"},
		},
		{
			name:  "multiplier with decimal part",
			input: "pack 4X0.5L eau",
			want:  []string{"4X0,5L"},
		},
		{
			name:  "large bare quantity",
			input: "soda 330ml canette",
			want:  []string{"330ML"},
		},
		{
			name:  "large bare quantity with space",
			input: "vin 75 cl rouge",
			want:  []string{"75 CL"},
		},
		{
			name:  "small bare quantity at text start",
			input: "1L PET PUR JUS POMME",
			want:  []string{"1L"},
		},
		{
			name:  "small bare quantity after space",
			input: "JUS POMME 2l BIO",
			want:  []string{"2L"},
		},
		{
			name:  "digit embedded in token ignored",
			input: "REF A1L STYLO",
			want:  nil,
		},
		{
			name:  "fraction with unit",
			input: "LAIT 1/2L ENTIER",
			want:  []string{"1/2L"},
		},
		{
			name:  "unit fraction suppresses its bare form",
			input: "LAIT 1/2 L ENTIER",
			want:  []string{"1/2 L"},
		},
		{
			name:  "bare fraction",
			input: "BQ ALU 1/2 PROFONDE",
			want:  []string{"1/2"},
		},
		{
			name:  "exact duplicates dropped",
			input: "JUS 1L POMME 1L",
			want:  []string{"1L"},
		},
		{
			name:  "cascade order not text order",
			input: "CRF 330ML SIROP 1.5L",
			want:  []string{"1,5L", "330ML"},
		},
		{
			name:  "multiple families",
			input: "6X30G CHIPS 330ML",
			want:  []string{"6X30G", "330ML"},
		},
		{
			name:  "no quantities",
			input: "stylo bille rouge",
			want:  nil,
		},
		{
			name:  "empty text",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestQuantityExtractor_SeparatorVariantsShareToken(t *testing.T) {
	e := NewQuantityExtractor()

	period := e.Extract("JUS 1.5L")
	comma := e.Extract("JUS 1,5L")

	if !reflect.DeepEqual(period, comma) {
		t.Fatalf("separator variants diverge: %v vs %v", period, comma)
	}

	if len(period) != 1 || period[0] != "1,5L" {
		t.Errorf("Extract = %v, want [1,5L]", period)
	}
}

func TestTokenSet_OrderAndDedup(t *testing.T) {
	s := newTokenSet()
	s.add("1L")
	s.add("330ML")
	s.add("1L")

	want := []string{"1L", "330ML"}
	if !reflect.DeepEqual(s.items, want) {
		t.Errorf("items = %v, want %v", s.items, want)
	}

	if !s.containsSubstring("330") {
		t.Error("containsSubstring(330) = false, want true")
	}

	if s.containsSubstring("KG") {
		t.Error("containsSubstring(KG) = true, want false")
	}
}
