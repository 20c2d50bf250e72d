package risk

// Sighting is the external bounty-hunter record: a hunter present at
// Planet on Day (spec.md §6, "bounty_hunters").
type Sighting struct {
	Planet string
	Day    int64
}

// Table maps a planet to the set of days a hunter is known to be
// present there. The zero value is a valid, empty Table.
type Table struct {
	byPlanet map[string]map[int64]struct{}
}

// NewTable returns an empty risk Table.
func NewTable() *Table {
	return &Table{byPlanet: make(map[string]map[int64]struct{})}
}

// BuildTable collapses a list of hunter sightings into a Table.
// Duplicate (planet, day) pairs collapse naturally since days are
// stored as a set.
func BuildTable(sightings []Sighting) *Table {
	t := NewTable()
	for _, s := range sightings {
		t.Add(s.Planet, s.Day)
	}
	return t
}

// Add records a single hunter sighting.
func (t *Table) Add(planet string, day int64) {
	if t.byPlanet == nil {
		t.byPlanet = make(map[string]map[int64]struct{})
	}
	days, ok := t.byPlanet[planet]
	if !ok {
		days = make(map[int64]struct{})
		t.byPlanet[planet] = days
	}
	days[day] = struct{}{}
}

// IsRisky reports whether a hunter is present at planet on day. A
// planet absent from the table, or present but without day in its set,
// both report false — there is no distinction between "no risk ever"
// and "no risk today" from the caller's point of view.
func (t *Table) IsRisky(planet string, day int64) bool {
	if t == nil {
		return false
	}
	days, ok := t.byPlanet[planet]
	if !ok {
		return false
	}
	_, risky := days[day]
	return risky
}

// Count returns the total number of distinct (planet, day) sightings
// recorded, mostly useful for logging.
func (t *Table) Count() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, days := range t.byPlanet {
		n += len(days)
	}
	return n
}
