package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantPizzaService manages the priced links between restaurants and pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza links an existing pizza to an existing restaurant.
	// The returned value has Pizza and Restaurant populated.
	CreateRestaurantPizza(ctx context.Context, price float64, pizzaID, restaurantID uint) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, price float64, pizzaID, restaurantID uint) (models.RestaurantPizza, error) {
	var created models.RestaurantPizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := findByID(tx, &pizza, pizzaID); err != nil {
			return err
		}
		var restaurant models.Restaurant
		if err := findByID(tx, &restaurant, restaurantID); err != nil {
			return err
		}

		rp := models.RestaurantPizza{
			Price:        price,
			PizzaID:      pizza.ID,
			RestaurantID: restaurant.ID,
		}
		// Omit associations so gorm does not upsert the referenced rows
		if err := tx.Omit("Pizza", "Restaurant").Create(&rp).Error; err != nil {
			return fmt.Errorf("create restaurant pizza: %w", err)
		}
		rp.Pizza = pizza
		rp.Restaurant = restaurant
		created = rp
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return created, nil
}

func findByID(tx *gorm.DB, dest interface{}, id uint) error {
	err := tx.First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPizzaOrRestaurantNotFound
	}
	return err
}
