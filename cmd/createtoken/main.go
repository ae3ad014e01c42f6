package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"churchtrack.com/churchtrack/security"
)

// Mints a development admin token so the console can be pointed at a
// backend without going through the login flow.
func main() {
	username := flag.String("username", "admin", "username claim")
	name := flag.String("name", "Administrator", "display name claim")
	role := flag.String("role", "ADMIN", "role claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("CHURCHTRACK_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("CHURCHTRACK_SIGNING_SECRET is required")
	}

	token, err := security.CreateIdentityToken(&security.Identity{
		ID:       1,
		Username: *username,
		Name:     *name,
		Role:     *role,
	}, secret, *ttl)
	if err != nil {
		log.Fatalf("failed to create token: %v", err)
	}

	fmt.Println(token)
}
