package main

import (
	"pawbook/pkg/config"
	"pawbook/pkg/db"
	"pawbook/pkg/model"
)

const ServiceName = "pawbook-migrate"

func main() {
	cfg := config.Load(ServiceName)

	gdb, err := db.Open(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to connect to database", "error", err)
	}
	defer db.Close(gdb)

	cfg.Log.Info("Running schema migration")
	if err := model.AutoMigrate(gdb); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}
	cfg.Log.Info("Migration completed")
}
