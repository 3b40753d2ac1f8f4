package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/arimendoza/coffeehaus-backend/internal/catalog"
	"github.com/arimendoza/coffeehaus-backend/pkg/config"
	"github.com/arimendoza/coffeehaus-backend/pkg/db"
	"github.com/arimendoza/coffeehaus-backend/pkg/enums"
	"github.com/arimendoza/coffeehaus-backend/pkg/logger"
	"github.com/arimendoza/coffeehaus-backend/pkg/migrate"
)

var catalogSeed = []catalog.CreateProductInput{
	{
		Type:              enums.ProductTypeCoffee,
		Name:              "Americano",
		Description:       "A smooth, rich espresso-based coffee diluted with hot water, offering a bold flavor and aromatic experience.",
		Price:             3.50,
		Image:             "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?w=500",
		Category:          "Americano",
		Roasted:           "Medium Roasted",
		Ingredients:       "Milk",
		SpecialIngredient: "With Steamed Milk",
		AverageRating:     4.5,
		RatingsCount:      "6,879",
		DisplayIndex:      0,
	},
	{
		Type:              enums.ProductTypeCoffee,
		Name:              "Black Coffee",
		Description:       "Pure coffee brewed with hot water, featuring intense flavors and caffeine content.",
		Price:             2.50,
		Image:             "https://images.unsplash.com/photo-1494314671902-399b18174975?w=500",
		Category:          "Black Coffee",
		Roasted:           "Dark Roasted",
		Ingredients:       "Milk",
		SpecialIngredient: "With Steamed Milk",
		AverageRating:     4.2,
		RatingsCount:      "5,123",
		DisplayIndex:      1,
	},
	{
		Type:              enums.ProductTypeCoffee,
		Name:              "Cappuccino",
		Description:       "Classic Italian coffee with equal parts espresso, steamed milk, and milk foam.",
		Price:             4.00,
		Image:             "https://images.unsplash.com/photo-1572442388796-11668a67e53d?w=500",
		Category:          "Cappuccino",
		Roasted:           "Medium Roasted",
		Ingredients:       "Milk",
		SpecialIngredient: "With Foam",
		AverageRating:     4.7,
		RatingsCount:      "8,432",
		DisplayIndex:      2,
	},
	{
		Type:              enums.ProductTypeCoffee,
		Name:              "Espresso",
		Description:       "Concentrated coffee brewed by forcing hot water through finely-ground coffee beans.",
		Price:             2.00,
		Image:             "https://images.unsplash.com/photo-1510707577719-ae7c14805e3a?w=500",
		Category:          "Espresso",
		Roasted:           "Dark Roasted",
		Ingredients:       "Milk",
		SpecialIngredient: "With Steamed Milk",
		AverageRating:     4.3,
		RatingsCount:      "4,567",
		DisplayIndex:      3,
	},
	{
		Type:              enums.ProductTypeCoffee,
		Name:              "Latte",
		Description:       "Espresso coffee with steamed milk and a light layer of foam.",
		Price:             4.50,
		Image:             "https://images.unsplash.com/photo-1570968915860-54d5c301fa9f?w=500",
		Category:          "Latte",
		Roasted:           "Light Roasted",
		Ingredients:       "Milk",
		SpecialIngredient: "With Oat Milk",
		AverageRating:     4.6,
		RatingsCount:      "7,890",
		DisplayIndex:      4,
	},
	{
		Type:              enums.ProductTypeCoffee,
		Name:              "Macchiato",
		Description:       "Espresso with a small amount of foamed milk on top.",
		Price:             3.00,
		Image:             "https://images.unsplash.com/photo-1485808191679-5f86510681a2?w=500",
		Category:          "Macchiato",
		Roasted:           "Medium Roasted",
		Ingredients:       "Milk",
		SpecialIngredient: "With Steamed Milk",
		AverageRating:     4.4,
		RatingsCount:      "3,456",
		DisplayIndex:      5,
	},
	{
		Type:              enums.ProductTypeBean,
		Name:              "Robusta Beans",
		Description:       "Strong and bold coffee beans with high caffeine content, perfect for espresso.",
		Price:             12.00,
		Image:             "https://images.unsplash.com/photo-1559525839-d82dad4ea159?w=500",
		Roasted:           "Medium Roasted",
		Ingredients:       "Robusta",
		SpecialIngredient: "From Africa",
		AverageRating:     4.2,
		RatingsCount:      "2,345",
		DisplayIndex:      0,
	},
	{
		Type:              enums.ProductTypeBean,
		Name:              "Arabica Beans",
		Description:       "Smooth and aromatic coffee beans with sweet flavor notes.",
		Price:             15.00,
		Image:             "https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?w=500",
		Roasted:           "Light Roasted",
		Ingredients:       "Arabica",
		SpecialIngredient: "From Colombia",
		AverageRating:     4.8,
		RatingsCount:      "5,678",
		DisplayIndex:      1,
	},
	{
		Type:              enums.ProductTypeBean,
		Name:              "Liberica Beans",
		Description:       "Unique and rare coffee beans with bold, smoky flavor.",
		Price:             18.00,
		Image:             "https://images.unsplash.com/photo-1587734195503-904fca47e0e9?w=500",
		Roasted:           "Dark Roasted",
		Ingredients:       "Liberica",
		SpecialIngredient: "From Philippines",
		AverageRating:     4.1,
		RatingsCount:      "1,234",
		DisplayIndex:      2,
	},
	{
		Type:              enums.ProductTypeBean,
		Name:              "Excelsa Beans",
		Description:       "Tart and fruity coffee beans, often used in blends.",
		Price:             14.00,
		Image:             "https://images.unsplash.com/photo-1442550528053-c431ecb55509?w=500",
		Roasted:           "Medium Roasted",
		Ingredients:       "Excelsa",
		SpecialIngredient: "From Southeast Asia",
		AverageRating:     4.0,
		RatingsCount:      "987",
		DisplayIndex:      3,
	},
}

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)

	if cfg.App.IsProd() {
		logg.Warn(ctx, "seeding is disabled in production")
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		os.Exit(1)
	}

	repo := catalog.NewRepository(dbClient.DB())
	svc, err := catalog.NewService(repo)
	if err != nil {
		logg.Error(ctx, "failed to create catalog service", err)
		os.Exit(1)
	}

	// Re-running the seed against a populated catalog is a no-op.
	existing, err := repo.CountByType(ctx, enums.ProductTypeCoffee)
	if err != nil {
		logg.Error(ctx, "failed to inspect catalog", err)
		os.Exit(1)
	}
	if existing > 0 {
		logg.Info(logg.WithField(ctx, "existing_products", existing), "catalog already seeded")
		return
	}

	for _, input := range catalogSeed {
		product, err := svc.Create(ctx, input)
		if err != nil {
			logg.Error(logg.WithField(ctx, "product", input.Name), "failed to seed product", err)
			os.Exit(1)
		}
		logg.Info(logg.WithFields(ctx, map[string]any{
			"product_id": product.ID,
			"name":       product.Name,
			"type":       string(input.Type),
		}), "seeded product")
	}

	logg.Info(ctx, "catalog seed complete")
}
