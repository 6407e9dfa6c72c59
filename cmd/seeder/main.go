package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-directory/internal/database"
	"github.com/mauv0809/tennis-directory/internal/player"
)

func main() {
	log.Info("Starting player seeder...")
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load seeder config: %s", err)
	}

	roster, err := player.RosterFrom(cfg.RosterFile)()
	if err != nil {
		log.Fatalf("Failed to load roster: %s", err)
	}
	log.Info("Roster loaded", "players", len(roster), "file", cfg.RosterFile)

	if cfg.DryRun {
		for _, p := range roster {
			log.Info("[Dry Run] Would upsert player", "id", p.ID, "name", p.Name, "ranking", p.Ranking)
		}
		return
	}

	db, teardown, err := database.InitDB(cfg.DBName, cfg.TursoURL, cfg.TursoAuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	startTime := time.Now()
	store := player.New(db)
	if err := store.UpsertPlayers(roster); err != nil {
		log.Fatalf("Failed to upsert players: %s", err)
	}
	count, err := store.Count()
	if err != nil {
		log.Fatalf("Failed to count players: %s", err)
	}
	log.Info("Seeding complete", "upserted", len(roster), "total", count, "duration", time.Since(startTime))
}
