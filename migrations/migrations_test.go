package migrations_test

import (
	"path/filepath"
	"testing"

	"geo-lookup-server/commons"
	"geo-lookup-server/db"
	"geo-lookup-server/migrations"
	"geo-lookup-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGeoTablesMigrateAndRollback(t *testing.T) {
	conn, _, err := db.Open(commons.DBConfig{Dialect: "sqlite", Path: filepath.Join(t.TempDir(), "geo.db")})
	require.NoError(t, err)

	m := gormigrate.New(conn, gormigrate.DefaultOptions, migrations.List())
	require.NoError(t, m.Migrate())
	assert.True(t, conn.Migrator().HasTable(&models.Country{}))
	assert.True(t, conn.Migrator().HasTable(&models.State{}))
	assert.True(t, conn.Migrator().HasTable(&models.City{}))

	require.NoError(t, m.RollbackLast())
	assert.False(t, conn.Migrator().HasTable(&models.Country{}))
	assert.False(t, conn.Migrator().HasTable(&models.City{}))
}
