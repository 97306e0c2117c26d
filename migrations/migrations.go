// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"fmt"

	"geo-lookup-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "001_create_geo_tables",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(models.AllModels...); err != nil {
					return fmt.Errorf("failed to create geo tables: %w", err)
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&models.City{}, &models.State{}, &models.Country{})
			},
		},
	}
}
