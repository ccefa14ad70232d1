package models

// RestaurantSummary is the public projection of a restaurant
type RestaurantSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaSummary is the public projection of a pizza
type PizzaSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaEntry is a single priced pizza nested inside RestaurantDetail
type RestaurantPizzaEntry struct {
	Price float64      `json:"price"`
	Pizza PizzaSummary `json:"pizza"`
}

// RestaurantDetail is a restaurant with the pizzas it serves
type RestaurantDetail struct {
	ID               uint                   `json:"id"`
	Name             string                 `json:"name"`
	Address          string                 `json:"address"`
	RestaurantPizzas []RestaurantPizzaEntry `json:"restaurant_pizzas"`
}

// RestaurantPizzaView is returned after creating a restaurant pizza
type RestaurantPizzaView struct {
	ID         uint              `json:"id"`
	Price      float64           `json:"price"`
	Pizza      PizzaSummary      `json:"pizza"`
	Restaurant RestaurantSummary `json:"restaurant"`
}

func NewRestaurantSummary(r Restaurant) RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

func NewPizzaSummary(p Pizza) PizzaSummary {
	return PizzaSummary{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

// NewRestaurantDetail expects r.RestaurantPizzas to be loaded together with their pizzas
func NewRestaurantDetail(r Restaurant) RestaurantDetail {
	entries := make([]RestaurantPizzaEntry, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		entries = append(entries, RestaurantPizzaEntry{
			Price: rp.Price,
			Pizza: NewPizzaSummary(rp.Pizza),
		})
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: entries,
	}
}

func NewRestaurantPizzaView(rp RestaurantPizza) RestaurantPizzaView {
	return RestaurantPizzaView{
		ID:         rp.ID,
		Price:      rp.Price,
		Pizza:      NewPizzaSummary(rp.Pizza),
		Restaurant: NewRestaurantSummary(rp.Restaurant),
	}
}
