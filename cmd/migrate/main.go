package main

import (
	"log/slog"
	"os"
	"strconv"

	"addressbook/pkg/config"
	"addressbook/postgres"

	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     strconv.Itoa(cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		logger.Error("cannot connect to db", "error", err)
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("cannot get db instance", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	direction := migrate.Up
	if len(os.Args) > 1 && os.Args[1] == "down" {
		direction = migrate.Down
	}

	migrations := &migrate.FileMigrationSource{
		Dir: "migrations",
	}

	total, err := migrate.Exec(sqlDB, "postgres", migrations, direction)
	if err != nil {
		logger.Error("cannot execute migration", "error", err)
		os.Exit(1)
	}

	logger.Info("applied migrations", "total", total)
}
