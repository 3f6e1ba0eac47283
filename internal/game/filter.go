package game

import "strings"

// AnyColor disables a colour filter.
const AnyColor = "All Colours"

// Filter selects songs by colour, difficulty and name.
type Filter struct {
	Primary    string
	Secondary  string
	Search     string
	Difficulty string
}

func matchColor(filter string, c Color) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, AnyColor) {
		return true
	}
	return strings.EqualFold(filter, c.String())
}

func (f *Filter) Match(s *Song) bool {
	if !matchColor(f.Primary, s.PrimaryColor) || !matchColor(f.Secondary, s.SecondaryColor) {
		return false
	}
	if f.Difficulty != "" && !strings.EqualFold(f.Difficulty, string(s.Difficulty)) {
		return false
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))
	return search == "" || strings.Contains(strings.ToLower(s.Name), search)
}
