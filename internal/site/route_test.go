package site

import "testing"

func TestResolveRoute(t *testing.T) {
	known := SectionIDs()
	tests := []struct {
		fragment string
		want     string
	}{
		{"", "home"},
		{"#", "home"},
		{"#colors", "colors"},
		{"logos", "logos"},
		{"#assets", "assets"},
		{"#unknown", "home"},
		{"#Colors", "home"},
		{"##colors", "home"},
	}
	for _, tt := range tests {
		if got := ResolveRoute(tt.fragment, known); got != tt.want {
			t.Errorf("ResolveRoute(%q) = %q, want %q", tt.fragment, got, tt.want)
		}
	}
}

func TestSectionIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, id := range SectionIDs() {
		if seen[id] {
			t.Errorf("duplicate section id %q", id)
		}
		seen[id] = true
	}
	if len(seen) != 9 {
		t.Errorf("sections = %d, want 9", len(seen))
	}
}

func TestGroupSections(t *testing.T) {
	groups := groupSections(Sections)
	var titles []string
	for _, g := range groups {
		titles = append(titles, g.Title)
	}
	want := []string{"", "Design system", "Ressources", "Brand kit"}
	if len(titles) != len(want) {
		t.Fatalf("groups = %q, want %q", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("group %d = %q, want %q", i, titles[i], want[i])
		}
	}
	if n := len(groups[1].Sections); n != 4 {
		t.Errorf("design system sections = %d, want 4", n)
	}
}
