// Command devtoken mints an access token for local development, signed with
// the configured JWT secret.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/learnhub-center/backoffice/internal/config"
	"github.com/learnhub-center/backoffice/internal/pkg/jwt"
)

func main() {
	staffID := flag.String("staff", "", "staff ID to put in the token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}
	if cfg.App.Env == "production" {
		fmt.Fprintln(os.Stderr, "devtoken refuses to run with APP_ENV=production")
		os.Exit(1)
	}

	token, expiresAt, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration).GenerateAccessToken(*staffID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating token:", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintln(os.Stderr, "expires", time.Unix(expiresAt, 0).Format(time.RFC3339))
}
