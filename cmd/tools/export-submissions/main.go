package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/vidarbha-bioenergy/contact-api/internal/apiclient"
)

// Logs in as admin and prints all stored submissions of one collection as JSON.
func main() {
	var (
		baseURL    string
		username   string
		password   string
		collection string
	)
	flag.StringVar(&baseURL, "url", "http://localhost:5000", "api base url")
	flag.StringVar(&username, "username", "admin", "admin username")
	flag.StringVar(&password, "password", os.Getenv("ADMIN_PASSWORD"), "admin password, defaults to $ADMIN_PASSWORD")
	flag.StringVar(&collection, "collection", "inquiries", "contacts or inquiries")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client := apiclient.New(baseURL)
	token, err := client.Login(ctx, username, password)
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}

	var out any
	switch collection {
	case "contacts":
		out, err = client.Contacts(ctx, token)
	case "inquiries":
		out, err = client.Inquiries(ctx, token)
	default:
		log.Fatalf("Unknown collection %q", collection)
	}
	if err != nil {
		log.Fatalf("Failed to fetch %s: %v", collection, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}
