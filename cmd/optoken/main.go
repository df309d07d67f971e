// Command optoken mints an operator token for the manual job endpoints.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"clinic-agenda/internal/pkg/jwt"
)

func main() {
	secret := strings.TrimSpace(os.Getenv("JOBS_OPERATOR_SECRET"))
	if secret == "" {
		log.Fatal("JOBS_OPERATOR_SECRET is required")
	}

	subject := "operator"
	if len(os.Args) >= 2 && os.Args[1] != "" {
		subject = os.Args[1]
	}

	ttl := time.Hour
	if raw := strings.TrimSpace(os.Getenv("JOBS_OPERATOR_TOKEN_TTL")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid JOBS_OPERATOR_TOKEN_TTL: %v", err)
		}
		ttl = parsed
	}

	token, err := jwt.NewService(secret, ttl).GenerateToken(subject)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
