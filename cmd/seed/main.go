package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"

	"github.com/dentalcare360/storefront/config"
	"github.com/dentalcare360/storefront/internal/application"
	kvinfra "github.com/dentalcare360/storefront/internal/infrastructure/kv"
	"github.com/dentalcare360/storefront/pkg/helpers"
)

// Seeds a demo account with one default address into the users index.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()
	store := kvinfra.NewRedisStore(rdb, cfg.KeyPrefix, logger)

	accounts := application.NewAccountStore(ctx, store, logger, 0)

	email := "demo@dentalcare360.com.br"
	u, err := accounts.Register(ctx, "Cliente Demo", email, "password123")
	if err != nil {
		if errors.Is(err, application.ErrEmailInUse) {
			log.Printf("demo account already seeded: %s", email)
			return
		}
		log.Fatalf("failed to seed account: %v", err)
	}

	if _, err := accounts.AddAddress(ctx, application.AddressInput{
		Street:       "Avenida Paulista",
		Number:       "1000",
		Complement:   "Sala 42",
		Neighborhood: "Bela Vista",
		City:         "São Paulo",
		State:        "SP",
		ZipCode:      "01310-100",
		IsDefault:    true,
	}); err != nil {
		log.Fatalf("failed to seed address: %v", err)
	}

	// Seeding must not leave an active session behind
	accounts.Logout(ctx)

	log.Printf("seeded account: id=%s email=%s", u.ID, u.Email)
}
