package catalog

import (
	"errors"
	"testing"
)

func mustLoad(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return c
}

func TestLoadEmbedded(t *testing.T) {
	c := mustLoad(t)

	var names []string
	for _, r := range c.Regions {
		names = append(names, r.Name)
	}
	want := []string{"England", "Scotland", "Wales", "Northern Ireland"}
	if len(names) != len(want) {
		t.Fatalf("regions = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("region[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	if len(c.Services) != 6 {
		t.Errorf("services = %d, want 6", len(c.Services))
	}
	for _, ctx := range []string{FAQHome, FAQServices, FAQLocation} {
		faqs, err := c.FAQs(ctx)
		if err != nil {
			t.Errorf("FAQs(%q) error: %v", ctx, err)
			continue
		}
		if len(faqs) != 3 {
			t.Errorf("FAQs(%q) = %d entries, want 3", ctx, len(faqs))
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "regions: [unterminated"},
		{"no regions", "services: []"},
		{"service without id", "regions:\n  - name: A\n    cities: [X]\nservices:\n  - title: Untitled\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Fatal("Expected error, got nil")
			}
		})
	}
}

func TestCity(t *testing.T) {
	c := mustLoad(t)

	tests := []struct {
		slug    string
		want    string
		wantErr bool
	}{
		{slug: "london", want: "London"},
		{slug: "newcastle-upon-tyne", want: "Newcastle upon Tyne"},
		{slug: "stoke-on-trent", want: "Stoke-on-Trent"},
		{slug: "king's-lynn", want: "King's Lynn"},
		{slug: "bangor", want: "Bangor"},
		{slug: "London", wantErr: true},
		{slug: "atlantis", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			got, err := c.City(tt.slug)
			if tt.wantErr {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("City(%q) error = %v, want ErrNotFound", tt.slug, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("City(%q) error: %v", tt.slug, err)
			}
			if got != tt.want {
				t.Errorf("City(%q) = %q, want %q", tt.slug, got, tt.want)
			}
		})
	}
}

func TestSearchCities(t *testing.T) {
	c, err := Parse([]byte(`
regions:
  - name: North
    cities: [Leeds, York, Bradford]
  - name: South
    cities: [Brighton, Exeter]
  - name: West
    cities: [Bristol]
`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if got := c.SearchCities(""); len(got) != 3 {
		t.Errorf("empty query returned %d regions, want 3", len(got))
	}

	got := c.SearchCities("BR")
	if len(got) != 3 {
		t.Fatalf("SearchCities(BR) = %+v, want 3 filtered regions", got)
	}
	if got[0].Name != "North" || len(got[0].Cities) != 1 || got[0].Cities[0] != "Bradford" {
		t.Errorf("North = %+v, want [Bradford]", got[0])
	}
	if got[1].Name != "South" || len(got[1].Cities) != 1 || got[1].Cities[0] != "Brighton" {
		t.Errorf("South = %+v, want [Brighton]", got[1])
	}
	if got[2].Name != "West" || len(got[2].Cities) != 1 {
		t.Errorf("West = %+v, want [Bristol]", got[2])
	}

	if got := c.SearchCities("zzz"); len(got) != 0 {
		t.Errorf("no-match query returned %+v", got)
	}
}

func TestNearbyCities(t *testing.T) {
	c, err := Parse([]byte(`
regions:
  - name: A
    cities: [One, Two, Three]
  - name: B
    cities: [Four, Five, Six, Seven]
`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	got := c.NearbyCities("Two", 5)
	want := []string{"One", "Three", "Four", "Five", "Six"}
	if len(got) != len(want) {
		t.Fatalf("NearbyCities = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NearbyCities[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestServices(t *testing.T) {
	c := mustLoad(t)

	s, err := c.Service("gaps")
	if err != nil {
		t.Fatalf("Service(gaps) error: %v", err)
	}
	if s.Title != "Invisalign for Gaps" {
		t.Errorf("title = %q", s.Title)
	}

	if _, err := c.Service("Gaps"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Service(Gaps) error = %v, want ErrNotFound", err)
	}

	others := c.OtherServices("gaps", 5)
	if len(others) != 5 {
		t.Fatalf("OtherServices = %d, want 5", len(others))
	}
	for _, o := range others {
		if o.ID == "gaps" {
			t.Error("OtherServices included the current service")
		}
	}
	if others[0].ID != "crowded" || others[1].ID != "overbite" {
		t.Errorf("OtherServices order = %s, %s", others[0].ID, others[1].ID)
	}

	treatments := c.Treatments()
	if len(treatments) != 6 || treatments[0] != "Invisalign for Crowded Teeth" {
		t.Errorf("Treatments = %v", treatments)
	}
}

func TestFAQsUnknownContext(t *testing.T) {
	c := mustLoad(t)
	if _, err := c.FAQs("pricing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FAQs(pricing) error = %v, want ErrNotFound", err)
	}
}
