package router

import (
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Options control the optional parts of the router
type Options struct {
	// AuthEnabled requires an admin JWT for the write endpoints
	AuthEnabled bool
	JWTSecret   []byte
	Logger      *logrus.Logger
}

// New wires services and controllers around db and registers every route
func New(db *gorm.DB, opts Options) *gin.Engine {
	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))

	router.GET("/", controllers.Index)
	router.GET("/health", controllers.HealthCheck)

	// Write endpoints are public unless auth is enabled
	var writeGuards []gin.HandlerFunc
	if opts.AuthEnabled {
		writeGuards = []gin.HandlerFunc{middleware.JWTAuth(opts.JWTSecret), middleware.RequireRole("admin")}
	}
	guarded := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writeGuards...), handler)
	}

	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", guarded(restaurantController.DeleteRestaurant)...)

	router.GET("/pizzas", pizzaController.GetAllPizzas)

	router.POST("/restaurant_pizzas", guarded(restaurantPizzaController.CreateRestaurantPizza)...)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
