package database

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

func prepare(fsys fs.FS) error {
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// RunMigrations executes all pending migrations found in dir of fsys
func RunMigrations(db *sql.DB, fsys fs.FS, dir string, logger *zap.Logger) error {
	if err := prepare(fsys); err != nil {
		return err
	}

	logger.Info("Checking for pending migrations...", zap.String("dir", dir))

	if err := goose.Up(db, dir); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	logger.Info("Migrations completed successfully", zap.Int64("version", version))
	return nil
}

// RollbackMigration reverts the most recently applied migration
func RollbackMigration(db *sql.DB, fsys fs.FS, dir string) error {
	if err := prepare(fsys); err != nil {
		return err
	}
	return goose.Down(db, dir)
}

// MigrationStatus prints the applied state of every migration
func MigrationStatus(db *sql.DB, fsys fs.FS, dir string) error {
	if err := prepare(fsys); err != nil {
		return err
	}
	return goose.Status(db, dir)
}
