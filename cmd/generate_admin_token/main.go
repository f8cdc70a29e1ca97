package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"car-rental-backend/internal/config"
	"car-rental-backend/internal/models"
	"car-rental-backend/internal/utils"
)

// Выпускает токен администратора для ручной проверки API без прохождения входа.
func main() {
	id := flag.Uint("id", 1, "admin id")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg := config.NewConfig()

	token, err := utils.GenerateJWT(*id, models.RoleAdmin, cfg.JWT.Secret, *ttl)
	if err != nil {
		log.Fatalf("Error generating admin token: %v", err)
	}

	fmt.Printf("Generated admin token: %s\n", token)
}
