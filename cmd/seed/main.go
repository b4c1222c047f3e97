package main

import (
	"context"
	"log"

	"ecocart/internal/dto"
	"ecocart/internal/models"
	"ecocart/internal/repository"
	"ecocart/internal/service"
	"ecocart/pkg/auth"
	"ecocart/pkg/config"
	"ecocart/pkg/logger"
	"ecocart/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'Customer',
    first_name TEXT NOT NULL DEFAULT '',
    last_name TEXT NOT NULL DEFAULT '',
    is_blocked BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS products (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL,
    brand TEXT NOT NULL,
    category TEXT NOT NULL,
    price NUMERIC NOT NULL DEFAULT 0,
    description TEXT NOT NULL DEFAULT '',
    sustainability JSONB,
    sustainability_score INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS comparisons (
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    product_id1 UUID NOT NULL,
    product_id2 UUID NOT NULL,
    product1_score INTEGER NOT NULL,
    product2_score INTEGER NOT NULL,
    winner_id UUID,
    score_difference INTEGER NOT NULL,
    highlights JSONB NOT NULL,
    graph JSONB NOT NULL,
    external_data JSONB NOT NULL,
    recommendations JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT comparisons_distinct_products CHECK (product_id1 <> product_id2)
);

CREATE INDEX IF NOT EXISTS idx_comparisons_user_created ON comparisons (user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_comparisons_created ON comparisons (created_at);
CREATE INDEX IF NOT EXISTS idx_products_name ON products (LOWER(name));
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Starting database seeding...")

	if err := createSchema(ctx, db); err != nil {
		appLogger.Fatal("Failed to create schema", zap.Error(err))
	}

	if err := seedAdminUser(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to seed admin user", zap.Error(err))
	}

	if err := seedProducts(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to seed products", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func createSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, schema)
	return err
}

func seedAdminUser(ctx context.Context, db *pgxpool.Pool, appLogger *zap.Logger) error {
	userRepo := repository.NewUserRepository(db, appLogger)

	if existing, _ := userRepo.GetByEmail(ctx, "admin@ecocart.dev"); existing != nil {
		appLogger.Info("Admin user already exists, skipping")
		return nil
	}

	hashed, err := auth.HashPassword("admin-change-me")
	if err != nil {
		return err
	}

	admin := &models.User{
		ID:        uuid.New(),
		Email:     "admin@ecocart.dev",
		Password:  hashed,
		Role:      models.RoleAdmin,
		FirstName: "Admin",
		LastName:  "User",
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	appLogger.Info("Admin user created", zap.String("email", admin.Email))
	return nil
}

func intPtr(v int) *int { return &v }

func seedProducts(ctx context.Context, db *pgxpool.Pool, appLogger *zap.Logger) error {
	productRepo := repository.NewProductRepository(db, appLogger)
	productService := service.NewProductService(productRepo, appLogger)

	samples := []dto.CreateProductRequest{
		{
			Name:        "Bamboo Toothbrush",
			Brand:       "GreenSmile",
			Category:    "Personal Care",
			Price:       3.99,
			Description: "Biodegradable bamboo toothbrush with plant-based bristles",
			Sustainability: &models.Sustainability{
				RecyclableMaterial:  true,
				Biodegradable:       true,
				PlasticFree:         true,
				CarbonFootprint:     0.8,
				CrueltyFree:         true,
				FairTradeCertified:  true,
				RenewableEnergyUsed: true,
			},
		},
		{
			Name:        "Plastic Toothbrush",
			Brand:       "BrightWhite",
			Category:    "Personal Care",
			Price:       1.49,
			Description: "Classic plastic toothbrush",
			Sustainability: &models.Sustainability{
				CarbonFootprint: 6.5,
			},
		},
		{
			Name:        "Organic Cotton Tote",
			Brand:       "EarthCarry",
			Category:    "Accessories",
			Price:       12.50,
			Description: "Reusable organic cotton shopping bag",
			Sustainability: &models.Sustainability{
				RecyclableMaterial: true,
				Biodegradable:      true,
				PlasticFree:        true,
				CarbonFootprint:    2.3,
				CrueltyFree:        true,
				FairTradeCertified: true,
			},
		},
		{
			Name:        "LED Desk Lamp",
			Brand:       "Lumina",
			Category:    "Home",
			Price:       29.99,
			Description: "Energy-efficient LED desk lamp",
			Sustainability: &models.Sustainability{
				RecyclableMaterial:     true,
				CarbonFootprint:        3.1,
				RenewableEnergyUsed:    true,
				EnergyEfficiencyRating: intPtr(5),
			},
		},
		{
			Name:        "Halogen Desk Lamp",
			Brand:       "Lumina",
			Category:    "Home",
			Price:       14.99,
			Description: "Halogen desk lamp",
			Sustainability: &models.Sustainability{
				CarbonFootprint:        5.2,
				EnergyEfficiencyRating: intPtr(2),
			},
		},
	}

	for i := range samples {
		if existing, _ := productRepo.FindByName(ctx, samples[i].Name); existing != nil {
			continue
		}
		if _, err := productService.Create(ctx, &samples[i]); err != nil {
			return err
		}
	}

	appLogger.Info("Sample products seeded", zap.Int("count", len(samples)))
	return nil
}
