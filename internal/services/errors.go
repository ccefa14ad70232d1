package services

import "errors"

var (
	// ErrRestaurantNotFound is returned when no restaurant matches the requested id
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrPizzaOrRestaurantNotFound is returned when a restaurant pizza references a missing row
	ErrPizzaOrRestaurantNotFound = errors.New("pizza or restaurant not found")
)
