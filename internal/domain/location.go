package domain

import "sort"

// Location is a named place supported by the prediction model, with WGS-84
// coordinates and its administrative state. The registry is fixed at build
// time and never mutated.
type Location struct {
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	State string  `json:"state"`
}

// Resolve looks up a location by exact, case-sensitive name. A miss means
// "not supported", not a failure: callers get ok=false, never an error.
func Resolve(name string) (Location, bool) {
	loc, ok := registry[name]
	return loc, ok
}

// SupportedLocations returns all registry names, sorted.
func SupportedLocations() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AllLocations returns every registry entry, sorted by name.
func AllLocations() []Location {
	locations := make([]Location, 0, len(registry))
	for _, name := range SupportedLocations() {
		locations = append(locations, registry[name])
	}
	return locations
}

// States returns the distinct state names covered by the registry, sorted.
func States() []string {
	seen := make(map[string]struct{})
	for _, loc := range registry {
		seen[loc.State] = struct{}{}
	}
	states := make([]string, 0, len(seen))
	for state := range seen {
		states = append(states, state)
	}
	sort.Strings(states)
	return states
}

// LocationsByState returns the names of registry entries in the given state,
// sorted. Unknown states yield an empty slice.
func LocationsByState(state string) []string {
	var names []string
	for name, loc := range registry {
		if loc.State == state {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
