package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/vidarbha-bioenergy/contact-api/internal/config"
	internal_errors "github.com/vidarbha-bioenergy/contact-api/internal/errors"
	"github.com/vidarbha-bioenergy/contact-api/internal/service"
	"github.com/vidarbha-bioenergy/contact-api/internal/storage/pg"
)

func main() {
	var (
		configFolder string
		username     string
		password     string
		hashOnly     bool
		cost         int
	)
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&username, "username", "admin", "admin username")
	flag.StringVar(&password, "password", "", "admin password")
	flag.BoolVar(&hashOnly, "hash-only", false, "print the bcrypt hash of -password and exit")
	flag.IntVar(&cost, "cost", 0, "bcrypt cost, default if zero")
	flag.Parse()

	if password == "" {
		log.Fatal("-password is required")
	}

	if hashOnly {
		hash, err := service.HashPassword(password, cost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		fmt.Println(hash)
		return
	}

	cfg := config.MustLoad(configFolder)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	storage, err := pg.New(ctx, cfg.Private.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer storage.Cleanup()

	admin, err := service.NewCredentials(storage, cost).Create(ctx, username, password)
	if err != nil {
		if errors.Is(err, internal_errors.ErrDuplicateIdentity) {
			log.Fatalf("Admin %q already exists", username)
		}
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("Admin %q created with id %s\n", admin.Username, admin.Id)
}
