package main

import (
	"fmt"
	"log"

	"github.com/andidevel/mireis/internal/config"
	"github.com/andidevel/mireis/internal/database"
	"github.com/andidevel/mireis/internal/logging"
	"github.com/andidevel/mireis/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format)

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	r := router.Setup(cfg, db, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	logger.WithField("addr", addr).Info("server starting")
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
