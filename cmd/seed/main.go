package main

import (
	"pawbook/internal/seed"
	"pawbook/pkg/config"
	"pawbook/pkg/db"
	"pawbook/pkg/model"
)

const ServiceName = "pawbook-seed"

func main() {
	cfg := config.Load(ServiceName)

	gdb, err := db.Open(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to connect to database", "error", err)
	}
	defer db.Close(gdb)

	if err := model.AutoMigrate(gdb); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}

	if err := seed.SeedDoctors(gdb, cfg.Log); err != nil {
		cfg.Log.Fatal("Seeding failed", "error", err)
	}
}
