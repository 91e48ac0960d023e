package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/icconsult/customer-service/internal/auth"
	"github.com/icconsult/customer-service/internal/config"
)

// Prints an HS256 bearer token signed with the service's configured secret.
// Local development only.
func main() {
	subject := flag.String("sub", "", "subject claim")
	scope := flag.String("scope", "", "optional scope claim")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "usage: devjwt -sub <subject> [-scope <scope>]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes, cfg.Auth.Issuer, cfg.Auth.Audience)
	token, expiresAt, err := tokens.GenerateToken(*subject, *scope)
	if err != nil {
		log.Fatalf("failed to mint token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "expires %s\n", expiresAt.UTC().Format("2006-01-02T15:04:05Z"))
	fmt.Println(token)
}
