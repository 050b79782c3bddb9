package main

import (
	"context"
	"log"
	"os"

	"github.com/nutristack/advisor/backend/internal/adapters/database"
	"github.com/nutristack/advisor/backend/internal/application/rules"
	"github.com/nutristack/advisor/backend/internal/infrastructure/clients/postgres"
	"github.com/nutristack/advisor/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	supplementRepo := database.NewSupplementAdapter(pgClient)
	protocolRepo := database.NewProtocolAdapter(pgClient)
	safetyRuleRepo := database.NewSafetyRuleAdapter(pgClient)

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				prescriptions,
				safety_rules,
				protocols,
				supplements
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	// 1. Seed the supplement catalog
	supplements := rules.DefaultSupplements()
	for _, s := range supplements {
		if err := supplementRepo.Create(ctx, s); err != nil {
			log.Printf("Failed to create supplement %s: %v", s.Name, err)
		}
	}
	log.Printf("Seeded %d supplements", len(supplements))

	// 2. Seed goal protocols
	protocols := rules.DefaultProtocols()
	for _, p := range protocols {
		if err := protocolRepo.Create(ctx, p); err != nil {
			log.Printf("Failed to create protocol %s: %v", p.Goal, err)
		}
	}
	log.Printf("Seeded %d protocols", len(protocols))

	// 3. Seed safety rules
	safetyRules := rules.DefaultSafetyRules()
	for _, r := range safetyRules {
		if err := safetyRuleRepo.Create(ctx, r); err != nil {
			log.Printf("Failed to create safety rule %s: %v", r.ID, err)
		}
	}
	log.Printf("Seeded %d safety rules", len(safetyRules))

	log.Println("Seeding complete")
}
