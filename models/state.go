// SPDX-License-Identifier: GPL-3.0-only

package models

// State ids are unique across the whole table, not per country.
type State struct {
	ID        int64   `gorm:"primaryKey;autoIncrement:false"`
	CountryID int64   `gorm:"not null;index:idx_states_parent_position,priority:1"`
	Name      *string `gorm:"size:255;default:null"`
	Position  int     `gorm:"not null;index:idx_states_parent_position,priority:2"`
	Cities    []City  `gorm:"foreignKey:StateID;constraint:OnDelete:CASCADE"`
}

func init() {
	AllModels = append(AllModels, &State{})
}
