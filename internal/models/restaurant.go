package models

// Restaurant represents a restaurant and the pizzas it serves
type Restaurant struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	Name             string            `json:"name"`
	Address          string            `json:"address"`
	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
