package database

import (
	"path/filepath"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDatabaseSQLiteMemory(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:"}, Options{MaxRetries: 1})
	require.NoError(t, err)
	require.NotNil(t, db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestInitDatabaseSQLiteFileUsesSingleConnection(t *testing.T) {
	cfg, err := ParseDatabaseURI("sqlite://" + filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)

	db, err := InitDatabase(cfg, Options{MaxRetries: 1})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	var journalMode string
	require.NoError(t, db.Raw("PRAGMA journal_mode").Scan(&journalMode).Error)
	assert.Equal(t, "wal", journalMode)
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "oracle"}, Options{MaxRetries: 1})
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestMigrateAndSeed(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: ":memory:"}, Options{MaxRetries: 1})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	require.NoError(t, Seed(db))

	var restaurants, pizzas, restaurantPizzas int64
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.Pizza{}).Count(&pizzas)
	db.Model(&models.RestaurantPizza{}).Count(&restaurantPizzas)
	assert.Equal(t, int64(3), restaurants)
	assert.Equal(t, int64(3), pizzas)
	assert.Equal(t, int64(3), restaurantPizzas)

	// seeding a non-empty database does nothing
	require.NoError(t, Seed(db))
	db.Model(&models.Restaurant{}).Count(&restaurants)
	assert.Equal(t, int64(3), restaurants)
}
