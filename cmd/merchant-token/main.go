package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"rewards-server/internal/auth/processor"
	"rewards-server/internal/observability"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// merchant-token issues a bearer token for the merchant API.
func main() {
	merchant := flag.String("merchant", "", "merchant id")
	ttl := flag.Duration("ttl", processor.DefaultTokenTTL, "token lifetime")
	flag.Parse()

	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			log.Printf("Warning: env.local file not found: %v", err)
		}
	}

	merchantID, err := uuid.Parse(*merchant)
	if err != nil {
		log.Fatalf("invalid -merchant: %v", err)
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	if *ttl <= 0 || *ttl > 365*24*time.Hour {
		log.Fatal("-ttl must be positive and at most a year")
	}

	auth := processor.New(secret, observability.NewLogger())
	token, err := auth.GenerateMerchantToken(context.Background(), merchantID, *ttl)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	fmt.Println(token)
}
