package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/staffplanner-dev/staff-planner/backend/internal/config"
	"github.com/staffplanner-dev/staff-planner/backend/internal/domain"
	"github.com/staffplanner-dev/staff-planner/backend/internal/repository"
	"github.com/staffplanner-dev/staff-planner/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var dateFlag string

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random employees, 2: insert random wish book entries, 3: insert a ready-to-plan demo day)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.StringVar(&dateFlag, "date", time.Now().Format(time.DateOnly), "target date (2006-01-02)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// create database connection pool
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database connection pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only creates the pool object, it does not connect yet, so
	// ping explicitly
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to the database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	date, err := domain.ParseDate(dateFlag)
	if err != nil {
		logger.Error("invalid date flag", "date", dateFlag, "error", err)
		os.Exit(1)
	}

	switch op {
	case 1:
		seed.SeedRandomEmployees(repo, n)
	case 2:
		seed.SeedRandomWishes(repo, date, n)
	case 3:
		seed.SeedDemoDay(repo, date)
	default:
		logger.Error("unknown operation", "op", op)
		os.Exit(1)
	}
}
