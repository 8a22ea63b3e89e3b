// Seed populates a fresh portal database with the default mall layout:
// floors, the standard category set, and a bootstrap admin account when no
// admin exists yet. Safe to re-run; existing rows are left untouched.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/auth"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/config"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/domain"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/migrations"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/repository/postgres"
	"github.com/ShivenPandit/Super-Mall-Web-App/pkg/database"
	apperrors "github.com/ShivenPandit/Super-Mall-Web-App/pkg/errors"
	"github.com/ShivenPandit/Super-Mall-Web-App/pkg/logger"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultFloors() []domain.Floor {
	return []domain.Floor{
		{Name: "Basement", Code: "B1", Level: -1, Description: "Parking and supermarket"},
		{Name: "Ground Floor", Code: "GF", Level: 0, Description: "Main entrance, anchor stores"},
		{Name: "First Floor", Code: "F1", Level: 1},
		{Name: "Second Floor", Code: "F2", Level: 2},
		{Name: "Third Floor", Code: "F3", Level: 3, Description: "Food court and entertainment"},
		{Name: "Fourth Floor", Code: "F4", Level: 4, Description: "Cinema and offices"},
	}
}

func defaultCategories() []domain.Category {
	return []domain.Category{
		{Name: "Clothing", Description: "Apparel and fashion", Icon: "checkroom"},
		{Name: "Electronics", Description: "Gadgets and appliances", Icon: "devices"},
		{Name: "Food & Dining", Description: "Restaurants, cafes and food stalls", Icon: "restaurant"},
		{Name: "Footwear", Description: "Shoes and accessories", Icon: "steps"},
		{Name: "Beauty & Wellness", Description: "Salons, spas and cosmetics", Icon: "spa"},
		{Name: "Books & Stationery", Description: "Bookstores and office supplies", Icon: "menu_book"},
		{Name: "Jewellery", Description: "Gold, silver and fashion jewellery", Icon: "diamond"},
		{Name: "Sports & Fitness", Description: "Sportswear and equipment", Icon: "fitness_center"},
		{Name: "Toys & Games", Description: "Toy stores and gaming", Icon: "toys"},
		{Name: "Home & Living", Description: "Furniture and home decor", Icon: "chair"},
	}
}

func main() {
	if err := run(); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New("portal-seed", cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := database.NewPostgresPoolWithLogger(ctx, &database.PostgresConfig{
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		User:     cfg.PostgresUser,
		Password: cfg.PostgresPass,
		DBName:   cfg.PostgresDB,
		SSLMode:  cfg.PostgresSSL,
		MaxConns: 5,
		MinConns: 1,
	}, log)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool, migrations.FS, log); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	floorRepo := postgres.NewFloorRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)

	for _, f := range defaultFloors() {
		floor := f
		err := floorRepo.Create(ctx, &floor)
		switch {
		case err == nil:
			log.Info("floor created", slog.String("code", floor.Code))
		case errors.Is(err, apperrors.ErrAlreadyExists):
			log.Info("floor already exists, skipping", slog.String("code", floor.Code))
		default:
			return fmt.Errorf("seed floor %s: %w", floor.Code, err)
		}
	}

	// Category names carry no database uniqueness constraint, so re-running
	// the seed must check for existing names itself.
	existing, err := categoryRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	seeded := make(map[string]bool, len(existing))
	for _, c := range existing {
		seeded[c.Name] = true
	}

	for _, c := range defaultCategories() {
		if seeded[c.Name] {
			log.Info("category already exists, skipping", slog.String("name", c.Name))
			continue
		}
		category := c
		if err := categoryRepo.Create(ctx, &category); err != nil {
			return fmt.Errorf("seed category %s: %w", category.Name, err)
		}
		log.Info("category created", slog.String("name", category.Name))
	}

	count, err := adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		log.Info("admin accounts already present, skipping bootstrap", slog.Int("count", count))
		return nil
	}

	email := getEnv("SEED_ADMIN_EMAIL", "admin@supermall.local")
	password := getEnv("SEED_ADMIN_PASSWORD", "ChangeMe@123")
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := domain.Admin{
		Email:        email,
		Name:         getEnv("SEED_ADMIN_NAME", "Portal Admin"),
		PasswordHash: hash,
	}
	if err := adminRepo.Create(ctx, &admin); err != nil {
		return fmt.Errorf("create bootstrap admin: %w", err)
	}
	log.Info("bootstrap admin created", slog.String("email", email))

	return nil
}
