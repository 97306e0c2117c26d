// SPDX-License-Identifier: GPL-3.0-only

package models

type Country struct {
	ID       int64   `gorm:"primaryKey;autoIncrement:false"`
	Name     *string `gorm:"size:255;default:null"`
	Position int     `gorm:"not null;index"`
	States   []State `gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
}

func init() {
	AllModels = append(AllModels, &Country{})
}
