// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"

	"geo-lookup-server/commons"
	"geo-lookup-server/db"
	"geo-lookup-server/geodata"

	"github.com/jessevdk/go-flags"
)

type options struct {
	Dataset  string `long:"dataset" env:"DATASET_PATH" default:"countries+states+cities.json" description:"Dataset file to import"`
	Format   string `long:"format" default:"auto" choice:"auto" choice:"json" choice:"yaml" description:"Dataset file format"`
	LogLevel string `long:"log-level" env:"LOG_LEVEL" default:"INFO" description:"Log level"`

	DB commons.DBConfig
}

// importDataset loads the dataset file and replaces the database contents
// with it. The server reads the result with --dataset-format db.
func importDataset(opts options) (db.ImportStats, error) {
	countries, err := geodata.LoadFile(opts.Dataset, geodata.Format(opts.Format))
	if err != nil {
		return db.ImportStats{}, err
	}

	conn, _, err := db.Open(opts.DB)
	if err != nil {
		return db.ImportStats{}, err
	}
	if sqlDB, err := conn.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := db.Migrate(conn); err != nil {
		return db.ImportStats{}, err
	}
	return db.ImportDataset(conn, countries)
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}
	commons.ConfigureLogger(commons.Logger, opts.LogLevel)

	stats, err := importDataset(opts)
	if err != nil {
		commons.Logger.Fatalf("Import failed: %v", err)
	}
	fmt.Printf("Imported %d countries, %d states and %d cities from %s\n",
		stats.Countries, stats.States, stats.Cities, opts.Dataset)
}

// go run ./cmd/importcli.go --dataset countries+states+cities.json --db-path geo.db
