package models

// Pizza represents a pizza that restaurants can offer
type Pizza struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	Name             string            `json:"name"`
	Ingredients      string            `json:"ingredients"`
	RestaurantPizzas []RestaurantPizza `json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}
