// SPDX-License-Identifier: GPL-3.0-only

package models

type City struct {
	ID       int64   `gorm:"primaryKey;autoIncrement:false"`
	StateID  int64   `gorm:"not null;index:idx_cities_parent_position,priority:1"`
	Name     *string `gorm:"size:255;default:null"`
	Position int     `gorm:"not null;index:idx_cities_parent_position,priority:2"`
}

func init() {
	AllModels = append(AllModels, &City{})
}
