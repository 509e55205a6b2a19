package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/xavierca1/farmareach/internal/config"
	"github.com/xavierca1/farmareach/internal/infra/integration/backend"
)

// tokenHolder is the minimal session the client needs for one run.
type tokenHolder struct {
	token string
}

func (t *tokenHolder) Token() string { return t.token }

func (t *tokenHolder) Invalidate(context.Context) {
	log.Println("backend answered 401, token dropped")
	t.token = ""
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := backend.NewClient(cfg.API.BaseURL, 10*time.Second)
	session := &tokenHolder{}
	client.Bind(session)

	fmt.Printf("Backend: %s\n", client.BaseURL())

	health, err := client.Health(ctx)
	if err != nil {
		log.Fatalf("health: %v", err)
	}
	fmt.Printf("Status: %s\n", health.Status)
	for name, ok := range health.Capabilities {
		fmt.Printf("   %s: %t\n", name, ok)
	}

	email, password := os.Getenv("SMOKE_EMAIL"), os.Getenv("SMOKE_PASSWORD")
	if email == "" || password == "" {
		fmt.Println("SMOKE_EMAIL/SMOKE_PASSWORD not set, skipping authenticated checks")
		return
	}

	auth, err := client.Login(ctx, backend.LoginRequest{Email: email, Password: password})
	if err != nil {
		log.Fatalf("login: %v", err)
	}
	session.token = auth.AccessToken
	fmt.Printf("Signed in as %s\n", auth.User.Email)

	rows, err := client.ListLeads(ctx, backend.ListLeadsParams{Limit: 1000})
	if err != nil {
		log.Fatalf("leads: %v", err)
	}
	leads := backend.MapLeads(rows)

	withEmail := 0
	for _, l := range leads {
		if l.HasEmail() {
			withEmail++
		}
	}
	fmt.Printf("Leads: %d (%d with email)\n", len(leads), withEmail)
}
