// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"geo-lookup-server/commons"
	"geo-lookup-server/db"
	"geo-lookup-server/geodata"
)

const formatDB = "db"

// loadIndex runs the dataset loader once. A failed load is logged and turned
// into an unavailable Index so that the server still starts.
func loadIndex(cfg *commons.Config) *geodata.Index {
	countries, err := loadDataset(cfg)
	if err != nil {
		commons.Logger.Error("Error loading or parsing the dataset: ", err)
		return geodata.Unavailable(err)
	}

	idx := geodata.BuildIndex(countries)
	stats := idx.Stats()
	commons.Logger.Infof("Data successfully loaded: %d countries, %d states, %d cities",
		stats.Countries, stats.States, stats.Cities)
	return idx
}

func loadDataset(cfg *commons.Config) ([]geodata.Country, error) {
	if cfg.Dataset.Format != formatDB {
		return geodata.LoadFile(cfg.Dataset.Path, geodata.Format(cfg.Dataset.Format))
	}

	conn, dbInfo, err := db.Open(cfg.DB)
	if err != nil {
		return nil, &geodata.LoadError{Source: cfg.DB.Dialect, Err: err}
	}
	if sqlDB, err := conn.DB(); err == nil {
		defer sqlDB.Close()
	}
	return db.LoadDataset(conn, dbInfo)
}
