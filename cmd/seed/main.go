// Seeds a central admin plus a handful of approved Dayee accounts for local
// development. Safe to re-run: existing emails are skipped.
package main

import (
	"context"
	"log"
	"time"

	"github.com/boe-dawah/boe-backend/internal/config"
	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/repository/postgres"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	email    string
	name     string
	role     domain.Role
	markaz   string
	division string
	district string
}

var seedUsers = []seedUser{
	{"admin@boe.example", "Central Admin", domain.RoleCentralAdmin, "", "", ""},
	{"dhaka.admin@boe.example", "Dhaka Division Admin", domain.RoleDivisionAdmin, "", "Dhaka", ""},
	{"rahim@boe.example", "Rahim Uddin", domain.RoleDayee, "Mirpur Markaz", "Dhaka", "Dhaka"},
	{"karim@boe.example", "Karim Hossain", domain.RoleDayee, "Sadar Markaz", "Chattogram", "Chattogram"},
	{"jamal@boe.example", "Jamal Mia", domain.RoleDayee, "Kotwali Markaz", "Sylhet", "Sylhet"},
}

const seedPassword = "changeme123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	repos := postgres.NewRepositories(db)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}

	for _, su := range seedUsers {
		if _, err := repos.User.GetByEmail(ctx, su.email); err == nil {
			log.Printf("skipping %s: already exists", su.email)
			continue
		}

		user := &domain.User{
			ID:           uuid.New(),
			Email:        su.email,
			PasswordHash: string(hash),
			Name:         su.name,
			Role:         su.role,
			Markaz:       su.markaz,
			Division:     su.division,
			District:     su.district,
			Approved:     true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := repos.User.Create(ctx, user); err != nil {
			log.Fatalf("failed to create %s: %v", su.email, err)
		}
		log.Printf("created %s (%s)", su.email, su.role)
	}

	log.Println("seed complete")
}
