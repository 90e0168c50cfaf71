// seed inserts a few demo accounts into the local dev database.
// Run: DATABASE_URL=... go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/artembaranov/accounts/internal/domain"
	"github.com/artembaranov/accounts/internal/infrastructure/postgres"
	"github.com/artembaranov/accounts/internal/usecase"
)

type account struct {
	email    string
	password string
	fullName string
}

var accounts = []account{
	{"demo@test.local", "demo-password", "Демо Пользователь"},
	{"ann@test.local", "secret1", "Ann Petrova"},
	{"bob@test.local", "secret2", "Bob Ivanov"},
}

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	if err := postgres.Migrate(ctx, databaseURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	repo := postgres.NewUserRepository(pool)

	for _, a := range accounts {
		email := usecase.NormalizeEmail(a.email)
		u, err := repo.Create(ctx, email, usecase.HashPassword(a.password), a.fullName)
		if err != nil {
			if errors.Is(err, domain.ErrEmailTaken) {
				fmt.Printf("skip %s: already exists\n", email)
				continue
			}
			log.Fatalf("create %s: %v", email, err)
		}
		fmt.Printf("created %s (id=%d)\n", u.Email, u.ID)
	}
}
