package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/joho/godotenv"
)

// Prints a bearer token for local use when AUTH_ENABLED=true.
//
//	go run ./scripts -role admin -ttl 24h
func main() {
	role := flag.String("role", "admin", "User role (admin or user)")
	userID := flag.Uint("uid", 1, "User ID placed in the uid claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	if *role != "admin" && *role != "user" {
		log.Fatalf("Invalid role %q: must be admin or user", *role)
	}

	_ = godotenv.Load()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set (environment or .env file)")
	}

	token, err := middleware.GenerateToken([]byte(secret), *userID, *role, *ttl)
	if err != nil {
		log.Fatal("Failed to sign token:", err)
	}

	fmt.Printf("Role: %s\n", *role)
	fmt.Printf("Expires in: %s\n", *ttl)
	fmt.Printf("Authorization: Bearer %s\n", token)
}
