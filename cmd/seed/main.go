package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/postboard/config"
	pginfra "github.com/oksasatya/postboard/internal/infrastructure/postgres"
	"github.com/oksasatya/postboard/internal/seed"
	"github.com/oksasatya/postboard/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)

	out := flag.String("out", cfg.SeedOutput, "path of the generated SQL script")
	apply := flag.Bool("apply", false, "apply the seed to the configured postgres database instead of writing a file")
	flag.Parse()

	data := seed.Build(time.Now())
	if err := data.Check(); err != nil {
		log.Fatalf("invalid seed data: %v", err)
	}

	if !*apply {
		if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
			log.Fatalf("failed to create %s: %v", filepath.Dir(*out), err)
		}
		if err := os.WriteFile(*out, []byte(data.SQL()), 0o644); err != nil {
			log.Fatalf("failed to write seed: %v", err)
		}
		logger.WithField("path", *out).Info("seed SQL file generated")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, stmt := range data.Statements() {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("failed to apply seed: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"users":    len(data.Users),
		"posts":    len(data.Posts),
		"comments": len(data.Comments),
	}).Info("seed applied")
}
