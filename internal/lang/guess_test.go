package lang

import "testing"

func TestGuess(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			"english sentence",
			"The quick brown fox jumps over the lazy dog while the farmer watches from the porch.",
			"EN",
			true,
		},
		{
			"german sentence",
			"Der schnelle braune Fuchs springt über den faulen Hund, während der Bauer von der Veranda aus zusieht.",
			"DE",
			true,
		},
		{"too short", "Hello", "", false},
		{"empty", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Guess(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Guess(%q) ok = %v, want %v (code %q)", tt.text, ok, tt.wantOK, got)
			}
			if got != tt.want {
				t.Errorf("Guess(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
