package match

import "slices"

// Location is a source kind inside an example where the query was found.
type Location string

// DocumentationLocation tags a match in the documentation file.
const DocumentationLocation Location = "documentation"

const scriptPrefix = "script:"

// ScriptLocation tags a match in the named script file.
func ScriptLocation(file string) Location { return Location(scriptPrefix + file) }

// Match records where one example matched a query. Presence per source only, no offsets.
type Match struct {
	example   string
	locations []Location
}

// New creates a match record.
func New(example string, locations []Location) Match {
	return Match{example: example, locations: slices.Clone(locations)}
}

// Example returns the matching example identifier.
func (m Match) Example() string { return m.example }

// Locations returns the match locations, documentation first then scripts by name.
func (m Match) Locations() []Location { return slices.Clone(m.locations) }
