// SPDX-License-Identifier: GPL-3.0-only

package geodata

// ID and Name are pointers so that records with a missing field load
// unchanged. A nil ID never matches a lookup.
type City struct {
	ID   *int64  `json:"id" yaml:"id"`
	Name *string `json:"name" yaml:"name"`
}

type State struct {
	ID     *int64  `json:"id" yaml:"id"`
	Name   *string `json:"name" yaml:"name"`
	Cities []City  `json:"cities" yaml:"cities"`
}

type Country struct {
	ID     *int64  `json:"id" yaml:"id"`
	Name   *string `json:"name" yaml:"name"`
	States []State `json:"states" yaml:"states"`
}

// Place is the {id, name} projection returned by every lookup.
type Place struct {
	ID   *int64  `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

type Stats struct {
	Countries int `json:"countries"`
	States    int `json:"states"`
	Cities    int `json:"cities"`
}

// project copies id and name, leaving the source record unshared.
func project(id *int64, name *string) Place {
	var p Place
	if id != nil {
		v := *id
		p.ID = &v
	}
	if name != nil {
		v := *name
		p.Name = &v
	}
	return p
}
