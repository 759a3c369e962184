// Command migrate applies, reverts or lists the catalog schema migrations
// against the database described by the usual DB_* environment.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"catalog-api/internal/config"
	"catalog-api/internal/database"
	"catalog-api/internal/logger"
	"catalog-api/migrations"

	"go.uber.org/zap"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [up|down|status]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env, cfg.Server.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	dbService, err := database.New(context.Background(), cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer dbService.Close()

	db := dbService.DB()

	switch command {
	case "up":
		err = database.RunMigrations(db, migrations.FS, ".", log)
	case "down":
		err = database.RollbackMigration(db, migrations.FS, ".")
	case "status":
		err = database.MigrationStatus(db, migrations.FS, ".")
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal("Migration command failed", zap.String("command", command), zap.Error(err))
	}
	log.Info("Migration command finished", zap.String("command", command))
}
