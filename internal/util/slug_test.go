package util

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "accents and symbols", input: "Café & Açúcar", expected: "cafe-acucar"},
		{name: "portuguese tilde", input: "Verão", expected: "verao"},
		{name: "surrounding spaces", input: "  Vestidos Longos  ", expected: "vestidos-longos"},
		{name: "digits kept", input: "Top 10 Looks", expected: "top-10-looks"},
		{name: "repeated separators", input: "a -- b__c", expected: "a-b-c"},
		{name: "sharp s", input: "Straße", expected: "strasse"},
		{name: "nordic letters", input: "Søren Æble", expected: "soren-aeble"},
		{name: "ligature and stroke letters", input: "Œuvre Łódź Đakovo", expected: "oeuvre-lodz-dakovo"},
		{name: "uppercase sharp s", input: "GROẞE", expected: "grosse"},
		{name: "only symbols", input: "!!!", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Slugify(tt.input); got != tt.expected {
				t.Fatalf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugifyIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"Café & Açúcar", "Verão 2024", "já-é-slug", "ÁÉÍÓÚ çãõ", "Straße Øst"} {
		once := Slugify(input)
		if twice := Slugify(once); twice != once {
			t.Fatalf("Slugify not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestUniqueSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     string
		taken    []string
		expected string
	}{
		{name: "free", base: "verao", taken: nil, expected: "verao"},
		{name: "first collision", base: "verao", taken: []string{"verao"}, expected: "verao-1"},
		{name: "second collision", base: "verao", taken: []string{"verao", "verao-1"}, expected: "verao-2"},
		{name: "gap is reused", base: "verao", taken: []string{"verao", "verao-2"}, expected: "verao-1"},
		{name: "unrelated slugs", base: "verao", taken: []string{"inverno"}, expected: "verao"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := UniqueSlug(tt.base, tt.taken); got != tt.expected {
				t.Fatalf("UniqueSlug(%q) = %q, want %q", tt.base, got, tt.expected)
			}
		})
	}
}
