package slug

import (
	"regexp"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "basic ascii",
			input:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "with punctuation",
			input:    "Invisalign Cost 2024: A Complete UK Price Guide",
			expected: "invisalign-cost-2024-a-complete-uk-price-guide",
		},
		{
			name:     "apostrophes are removed not hyphenated",
			input:    "Eating with Invisalign: The Do's and Don'ts",
			expected: "eating-with-invisalign-the-dos-and-donts",
		},
		{
			name:     "double quotes are removed",
			input:    `The "Lite" Package`,
			expected: "the-lite-package",
		},
		{
			name:     "with leading/trailing spaces",
			input:    "  Hello World  ",
			expected: "hello-world",
		},
		{
			name:     "leading and trailing symbols",
			input:    "--- Braces vs Aligners! ---",
			expected: "braces-vs-aligners",
		},
		{
			name:     "underscores become hyphens",
			input:    "Hello_World_Test",
			expected: "hello-world-test",
		},
		{
			name:     "accented letters are not transliterated",
			input:    "Café München",
			expected: "caf-m-nchen",
		},
		{
			name:     "empty string falls back",
			input:    "",
			expected: "post",
		},
		{
			name:     "only special characters falls back",
			input:    "@#$%^&*()",
			expected: "post",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSlugifyShape(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	inputs := []string{
		"Invisalign vs Traditional Braces: The Aesthetic Verdict",
		"  ??? ",
		"Orthodontic Relapse — Why Invisalign is the Solution",
		"100% FREE!!!",
		"a",
		"Привет Мир",
		"tab\tand\nnewline",
		"'quoted'",
	}

	for _, input := range inputs {
		s := Slugify(input)
		if !valid.MatchString(s) {
			t.Errorf("Slugify(%q) = %q, not a lowercase hyphenated slug", input, s)
		}
		if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
			t.Errorf("Slugify(%q) = %q, has leading or trailing hyphen", input, s)
		}
	}
}

func TestBase(t *testing.T) {
	if got := Base("  custom-slug ", "Some Title"); got != "custom-slug" {
		t.Errorf("Base with authored slug = %q, want %q", got, "custom-slug")
	}
	if got := Base("   ", "Some Title"); got != "some-title" {
		t.Errorf("Base with blank authored slug = %q, want %q", got, "some-title")
	}
}

func TestMakeUnique(t *testing.T) {
	r := NewRegistry()

	want := []string{"guide", "guide-2", "guide-3", "guide-4"}
	for i, expected := range want {
		if got := r.MakeUnique("guide"); got != expected {
			t.Errorf("call %d: MakeUnique(guide) = %q, want %q", i+1, got, expected)
		}
	}

	if r.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", r.Len(), len(want))
	}
}

func TestMakeUniqueEmptyBase(t *testing.T) {
	r := NewRegistry()

	if got := r.MakeUnique(""); got != "post" {
		t.Errorf("MakeUnique(\"\") = %q, want post", got)
	}
	if got := r.MakeUnique("post"); got != "post-2" {
		t.Errorf("MakeUnique(post) after empty base = %q, want post-2", got)
	}
}

func TestMakeUniqueSkipsTakenSuffix(t *testing.T) {
	// An authored slug can occupy a suffix before the collision happens
	r := NewRegistry()
	r.MakeUnique("guide")
	r.MakeUnique("guide-2")

	if got := r.MakeUnique("guide"); got != "guide-3" {
		t.Errorf("MakeUnique(guide) = %q, want guide-3", got)
	}
}

func TestMakeUniqueDeterministic(t *testing.T) {
	bases := []string{"a", "b", "a", "", "a", "post", "b"}

	run := func() []string {
		r := NewRegistry()
		out := make([]string, 0, len(bases))
		for _, b := range bases {
			out = append(out, r.MakeUnique(b))
		}
		return out
	}

	first, second := run(), run()
	seen := make(map[string]bool)
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("index %d: %q != %q across runs", i, first[i], second[i])
		}
		if seen[first[i]] {
			t.Errorf("duplicate slug %q", first[i])
		}
		seen[first[i]] = true
	}
}

func TestZeroRegistry(t *testing.T) {
	var r Registry
	if got := r.MakeUnique("x"); got != "x" {
		t.Errorf("MakeUnique on zero Registry = %q, want x", got)
	}
}

func TestForName(t *testing.T) {
	tests := map[string]string{
		"London":              "london",
		"Newcastle upon Tyne": "newcastle-upon-tyne",
		"King's Lynn":         "king's-lynn",
		"Stoke-on-Trent":      "stoke-on-trent",
		"Bury  St Edmunds":    "bury-st-edmunds",
	}

	for input, expected := range tests {
		if got := ForName(input); got != expected {
			t.Errorf("ForName(%q) = %q, want %q", input, got, expected)
		}
	}
}
