package models

// Inclusive bounds for RestaurantPizza.Price
const (
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza links a restaurant to a pizza at a given price
type RestaurantPizza struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Price        float64    `gorm:"not null" json:"price"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	PizzaID      uint       `gorm:"not null;index" json:"pizza_id"`
	Restaurant   Restaurant `json:"-"`
	Pizza        Pizza      `json:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}
