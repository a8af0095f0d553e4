package teams

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Directory is an immutable lookup table of teams, built once at startup.
type Directory struct {
	byAbbr        map[string]Team
	byID          map[string]Team
	teams         []Team
	abbreviations []string
}

// NewDirectory builds a directory from the given teams. Later duplicates of an abbreviation are ignored.
func NewDirectory(items []Team) *Directory {
	d := &Directory{
		byAbbr: make(map[string]Team, len(items)),
		byID:   make(map[string]Team, len(items)),
	}
	for _, t := range items {
		key := strings.ToUpper(t.Abbreviation)
		if _, exists := d.byAbbr[key]; exists {
			continue
		}
		t.Abbreviation = key
		d.byAbbr[key] = t
		d.byID[t.ID] = t
		d.teams = append(d.teams, t)
		d.abbreviations = append(d.abbreviations, key)
	}
	sort.Strings(d.abbreviations)
	return d
}

// Resolve finds a team by abbreviation, ignoring case and surrounding whitespace.
func (d *Directory) Resolve(abbreviation string) (Team, error) {
	key := strings.ToUpper(strings.TrimSpace(abbreviation))
	if t, ok := d.byAbbr[key]; ok {
		return t, nil
	}
	return Team{}, &UnknownTeamError{
		Input:      abbreviation,
		Suggestion: d.suggest(abbreviation),
		Valid:      d.Abbreviations(),
	}
}

// ByID returns the team with the given provider id.
func (d *Directory) ByID(id string) (Team, bool) {
	t, ok := d.byID[id]
	return t, ok
}

// Abbreviations returns every known abbreviation in sorted order.
func (d *Directory) Abbreviations() []string {
	out := make([]string, len(d.abbreviations))
	copy(out, d.abbreviations)
	return out
}

// suggest returns the abbreviation closest to input, or "" when nothing is close.
// Abbreviations within one edit win; otherwise a fuzzy match on team names is tried.
func (d *Directory) suggest(input string) string {
	needle := strings.TrimSpace(input)
	if needle == "" {
		return ""
	}

	upper := strings.ToUpper(needle)
	best, bestDist := "", -1
	for _, abbr := range d.abbreviations {
		dist := fuzzy.LevenshteinDistance(upper, abbr)
		if dist <= 1 && (bestDist == -1 || dist < bestDist) {
			best, bestDist = abbr, dist
		}
	}
	if best != "" {
		return best
	}

	if len(needle) < 3 {
		return ""
	}
	targets := make([]string, 0, 2*len(d.teams))
	owners := make([]string, 0, 2*len(d.teams))
	for _, abbr := range d.abbreviations {
		t := d.byAbbr[abbr]
		targets = append(targets, t.Name, t.FullName)
		owners = append(owners, abbr, abbr)
	}
	ranks := fuzzy.RankFindNormalizedFold(needle, targets)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return owners[ranks[0].OriginalIndex]
}
