package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Parryho/Menuplaner/pkg/accounts"
	"github.com/Parryho/Menuplaner/pkg/config"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: go run ./cmd/create_user <username> <password> [administrator|operator]")
		os.Exit(2)
	}
	username := os.Args[1]
	password := os.Args[2]
	role := ""
	if len(os.Args) > 3 {
		role = os.Args[3]
	}

	cfg := config.Load()
	if cfg.DSN == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	if err := accounts.EnsureRoles(db); err != nil {
		log.Fatalf("roles: %v", err)
	}

	user, err := accounts.Register(db, username, password, role)
	if errors.Is(err, accounts.ErrUserExists) {
		fmt.Printf("user %s already exists\n", username)
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	fmt.Printf("created user %s id=%d role=%s\n", user.Username, user.ID, user.Role.Name)
}
