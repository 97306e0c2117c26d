// SPDX-License-Identifier: GPL-3.0-only

package geodata

// Index answers the country, state and city lookups over a loaded dataset.
// It is never modified after BuildIndex or Unavailable returns, so a single
// Index may be shared by any number of goroutines.
type Index struct {
	available bool
	loadErr   error

	countries []Place
	// country id -> states of the first country carrying that id
	states map[int64][]Place
	// state id -> cities of the matching state with a cities list, see BuildIndex
	cities map[int64][]Place

	stats  Stats
	digest string
}

func BuildIndex(countries []Country) *Index {
	idx := &Index{
		available: true,
		countries: make([]Place, 0, len(countries)),
		states:    make(map[int64][]Place),
		cities:    make(map[int64][]Place),
	}

	for _, c := range countries {
		idx.countries = append(idx.countries, project(c.ID, c.Name))
		idx.stats.Countries++
		idx.stats.States += len(c.States)

		if c.ID != nil {
			if _, ok := idx.states[*c.ID]; !ok {
				idx.states[*c.ID] = projectStates(c.States)
			}
		}

		// first match within a country, last match across countries
		seen := make(map[int64]bool, len(c.States))
		for _, s := range c.States {
			idx.stats.Cities += len(s.Cities)
			if s.ID == nil || seen[*s.ID] {
				continue
			}
			seen[*s.ID] = true
			if s.Cities == nil {
				continue
			}
			idx.cities[*s.ID] = projectCities(s.Cities)
		}
	}

	idx.digest = digestOf(countries)
	return idx
}

// Unavailable returns an Index standing in for a dataset that failed to load.
func Unavailable(err error) *Index {
	return &Index{loadErr: err}
}

func (idx *Index) Available() bool {
	return idx.available
}

// Err returns the load failure behind an unavailable Index.
func (idx *Index) Err() error {
	return idx.loadErr
}

func (idx *Index) Stats() Stats {
	return idx.stats
}

// Digest is a hex BLAKE2b-256 of the loaded tree, empty when unavailable.
func (idx *Index) Digest() string {
	return idx.digest
}

func (idx *Index) ListCountries() ([]Place, error) {
	if !idx.available {
		return nil, ErrDatasetUnavailable
	}
	return clonePlaces(idx.countries), nil
}

// ListStates returns ErrNotFound both for an unknown country and for a
// country without states.
func (idx *Index) ListStates(countryID int64) ([]Place, error) {
	states := idx.states[countryID]
	if len(states) == 0 {
		return nil, ErrNotFound
	}
	return clonePlaces(states), nil
}

// ListCities returns ErrNotFound both for an unknown state and for a state
// without cities.
func (idx *Index) ListCities(stateID int64) ([]Place, error) {
	cities := idx.cities[stateID]
	if len(cities) == 0 {
		return nil, ErrNotFound
	}
	return clonePlaces(cities), nil
}

func projectStates(states []State) []Place {
	out := make([]Place, 0, len(states))
	for _, s := range states {
		out = append(out, project(s.ID, s.Name))
	}
	return out
}

func projectCities(cities []City) []Place {
	out := make([]Place, 0, len(cities))
	for _, c := range cities {
		out = append(out, project(c.ID, c.Name))
	}
	return out
}

// clonePlaces copies the projections down to their id and name values, so
// callers can never write into the Index.
func clonePlaces(places []Place) []Place {
	out := make([]Place, len(places))
	for i, p := range places {
		out[i] = project(p.ID, p.Name)
	}
	return out
}
