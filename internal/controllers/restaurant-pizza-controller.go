package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

var priceRule = fmt.Sprintf("gte=%d,lte=%d", models.MinPrice, models.MaxPrice)

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza links a pizza to a restaurant at a price
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service  services.RestaurantPizzaService
	validate *validator.Validate
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{
		service:  service,
		validate: validator.New(),
	}
}

// CreateRestaurantPizzaRequest documents the request body of CreateRestaurantPizza
type CreateRestaurantPizzaRequest struct {
	Price        float64 `json:"price" example:"5"`
	PizzaID      uint    `json:"pizza_id" example:"1"`
	RestaurantID uint    `json:"restaurant_id" example:"3"`
}

// requestError carries the status and message of a rejected payload
type requestError struct {
	status  int
	message string
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Link an existing pizza to an existing restaurant at a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Restaurant pizza"
// @Success 201 {object} models.RestaurantPizzaView
// @Failure 400 {object} models.ErrorsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorsResponse
// @Security BearerAuth
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(models.MsgInvalidPayload))
		return
	}

	req, reqErr := c.parseCreateRequest(body)
	if reqErr != nil {
		ctx.JSON(reqErr.status, models.NewErrorsResponse(reqErr.message))
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), req.Price, req.PizzaID, req.RestaurantID)
	if err != nil {
		if errors.Is(err, services.ErrPizzaOrRestaurantNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewErrorsResponse(models.MsgPizzaOrRestaurantNotFound))
			return
		}
		log.WithError(err).Error("Failed to create restaurant pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorsResponse(err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, models.NewRestaurantPizzaView(created))
}

// parseCreateRequest checks the payload, then the presence of each field, then the
// price, then the ids. The first failing check decides the response.
func (c *restaurantPizzaController) parseCreateRequest(body []byte) (CreateRestaurantPizzaRequest, *requestError) {
	var req CreateRestaurantPizzaRequest

	var fields map[string]json.RawMessage
	if len(bytes.TrimSpace(body)) == 0 || json.Unmarshal(body, &fields) != nil || len(fields) == 0 {
		return req, &requestError{http.StatusBadRequest, models.MsgInvalidPayload}
	}

	for _, key := range []string{"price", "pizza_id", "restaurant_id"} {
		if _, ok := fields[key]; !ok {
			return req, &requestError{http.StatusBadRequest, models.MsgMissingFields}
		}
	}

	price, ok := decodeNumber(fields["price"])
	if !ok || c.validate.Var(price, priceRule) != nil {
		return req, &requestError{http.StatusBadRequest, models.MsgValidationErrors}
	}
	req.Price = price

	pizzaID, pizzaOK := c.decodeID(fields["pizza_id"])
	restaurantID, restaurantOK := c.decodeID(fields["restaurant_id"])
	if !pizzaOK || !restaurantOK {
		return req, &requestError{http.StatusNotFound, models.MsgPizzaOrRestaurantNotFound}
	}
	req.PizzaID = pizzaID
	req.RestaurantID = restaurantID

	return req, nil
}

// decodeNumber accepts a JSON number and nothing else, null included
func decodeNumber(raw json.RawMessage) (float64, bool) {
	var value *float64
	if err := json.Unmarshal(raw, &value); err != nil || value == nil {
		return 0, false
	}
	return *value, true
}

// decodeID accepts integral JSON numbers that fit a row id, and decimal strings
// such as "1", which SQLite's integer affinity matches against the same row
func (c *restaurantPizzaController) decodeID(raw json.RawMessage) (uint, bool) {
	var text string
	if json.Unmarshal(raw, &text) == nil {
		id, err := strconv.ParseUint(text, 10, 32)
		if err != nil || c.validate.Var(id, "gt=0") != nil {
			return 0, false
		}
		return uint(id), true
	}

	value, ok := decodeNumber(raw)
	if !ok || value != math.Trunc(value) || value > math.MaxUint32 {
		return 0, false
	}
	if c.validate.Var(value, "gt=0") != nil {
		return 0, false
	}
	return uint(value), true
}
