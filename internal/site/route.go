package site

import (
	"slices"
	"strings"
)

// HomeSection is the page shown for an empty or unknown fragment.
const HomeSection = "home"

// Section is one page of the dashboard and its sidebar entry.
type Section struct {
	ID    string
	Label string
	Icon  string
	Group string
}

// Sections lists the dashboard pages in sidebar order.
var Sections = []Section{
	{ID: HomeSection, Label: "Accueil", Icon: "🏠"},
	{ID: "colors", Label: "Couleurs", Icon: "🎨", Group: "Design system"},
	{ID: "typography", Label: "Typographie", Icon: "🔤", Group: "Design system"},
	{ID: "spacing", Label: "Espacements", Icon: "📏", Group: "Design system"},
	{ID: "components", Label: "Composants", Icon: "🧩", Group: "Design system"},
	{ID: "templates", Label: "Templates", Icon: "📝", Group: "Ressources"},
	{ID: "logos", Label: "Logos", Icon: "✨", Group: "Brand kit"},
	{ID: "brand", Label: "Couleurs & polices", Icon: "🖋️", Group: "Brand kit"},
	{ID: "assets", Label: "Fichiers", Icon: "📁", Group: "Brand kit"},
}

// SectionIDs returns the ids of all known sections.
func SectionIDs() []string {
	ids := make([]string, len(Sections))
	for i, s := range Sections {
		ids[i] = s.ID
	}
	return ids
}

// ResolveRoute maps a URL fragment (with or without the leading '#') to the
// section to display.
func ResolveRoute(fragment string, known []string) string {
	id := strings.TrimPrefix(fragment, "#")
	if id != "" && slices.Contains(known, id) {
		return id
	}
	return HomeSection
}

// navGroup is a run of consecutive sections sharing a sidebar heading.
type navGroup struct {
	Title    string
	Sections []Section
}

func groupSections(sections []Section) []navGroup {
	var groups []navGroup
	for _, s := range sections {
		if n := len(groups); n > 0 && groups[n-1].Title == s.Group {
			groups[n-1].Sections = append(groups[n-1].Sections, s)
			continue
		}
		groups = append(groups, navGroup{Title: s.Group, Sections: []Section{s}})
	}
	return groups
}
