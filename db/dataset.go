// SPDX-License-Identifier: GPL-3.0-only

package db

import (
	"fmt"

	"geo-lookup-server/commons"
	"geo-lookup-server/geodata"
	"geo-lookup-server/models"

	"gorm.io/gorm"
)

const importBatchSize = 500

type ImportStats struct {
	Countries int
	States    int
	Cities    int
	// Skipped counts records without an id, including the children of a
	// skipped parent.
	Skipped int
}

func ordered(tx *gorm.DB) *gorm.DB {
	return tx.Order("position").Order("id")
}

// LoadDataset reads the whole tree in source order. Any failure is reported
// as a *geodata.LoadError.
func LoadDataset(conn *gorm.DB, source string) ([]geodata.Country, error) {
	var rows []models.Country
	err := ordered(conn).
		Preload("States", ordered).
		Preload("States.Cities", ordered).
		Find(&rows).Error
	if err != nil {
		return nil, &geodata.LoadError{Source: source, Err: err}
	}

	countries := make([]geodata.Country, 0, len(rows))
	for _, row := range rows {
		country := geodata.Country{
			ID:     &row.ID,
			Name:   row.Name,
			States: make([]geodata.State, 0, len(row.States)),
		}
		for _, s := range row.States {
			state := geodata.State{
				ID:     &s.ID,
				Name:   s.Name,
				Cities: make([]geodata.City, 0, len(s.Cities)),
			}
			for _, c := range s.Cities {
				state.Cities = append(state.Cities, geodata.City{ID: &c.ID, Name: c.Name})
			}
			country.States = append(country.States, state)
		}
		countries = append(countries, country)
	}
	return countries, nil
}

// ImportDataset replaces the stored tree with countries inside a single
// transaction.
func ImportDataset(conn *gorm.DB, countries []geodata.Country) (ImportStats, error) {
	var stats ImportStats
	var (
		countryRows []models.Country
		stateRows   []models.State
		cityRows    []models.City
	)

	for ci, c := range countries {
		if c.ID == nil {
			stats.Skipped += 1 + len(c.States)
			for _, s := range c.States {
				stats.Skipped += len(s.Cities)
			}
			continue
		}
		countryRows = append(countryRows, models.Country{ID: *c.ID, Name: c.Name, Position: ci})

		for si, s := range c.States {
			if s.ID == nil {
				stats.Skipped += 1 + len(s.Cities)
				continue
			}
			stateRows = append(stateRows, models.State{ID: *s.ID, CountryID: *c.ID, Name: s.Name, Position: si})

			for ti, city := range s.Cities {
				if city.ID == nil {
					stats.Skipped++
					continue
				}
				cityRows = append(cityRows, models.City{ID: *city.ID, StateID: *s.ID, Name: city.Name, Position: ti})
			}
		}
	}

	err := conn.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.City{}, &models.State{}, &models.Country{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}
		if len(countryRows) > 0 {
			if err := tx.CreateInBatches(&countryRows, importBatchSize).Error; err != nil {
				return fmt.Errorf("insert countries: %w", err)
			}
		}
		if len(stateRows) > 0 {
			if err := tx.CreateInBatches(&stateRows, importBatchSize).Error; err != nil {
				return fmt.Errorf("insert states: %w", err)
			}
		}
		if len(cityRows) > 0 {
			if err := tx.CreateInBatches(&cityRows, importBatchSize).Error; err != nil {
				return fmt.Errorf("insert cities: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return ImportStats{}, err
	}

	stats.Countries = len(countryRows)
	stats.States = len(stateRows)
	stats.Cities = len(cityRows)
	commons.Logger.Infof("Imported %d countries, %d states, %d cities (%d skipped without id)",
		stats.Countries, stats.States, stats.Cities, stats.Skipped)
	return stats, nil
}
