package database

import (
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the restaurant, pizza and restaurant_pizza tables
func Migrate(db *gorm.DB) error {
	log.Info("Running schema migration")
	return db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{})
}
