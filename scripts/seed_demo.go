package main

import (
	"context"
	"log"
	"time"

	"github.com/safar/go-shop-admin/internal/api"
	"github.com/safar/go-shop-admin/internal/config"
	"github.com/safar/go-shop-admin/internal/forms"
	"github.com/safar/go-shop-admin/internal/store"
	"github.com/safar/go-shop-admin/internal/sync"
)

// Seeds a development backend with demo catalog data through the same
// client the CLI uses. Usage: go run scripts/seed_demo.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	client := api.NewClient(&cfg.API)
	notifier := sync.LogNotifier{}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	categories := store.NewCategories(client, notifier)
	for _, name := range []string{"Shoes", "Apparel", "Accessories"} {
		if _, err := categories.Create(ctx, &forms.CategoryForm{Name: name}); err != nil {
			log.Fatalf("Seed category %q: %v", name, err)
		}
	}

	brands := store.NewBrands(client, notifier)
	for _, name := range []string{"Nike", "Adidas", "Puma"} {
		if _, err := brands.Create(ctx, &forms.BrandForm{Name: name}); err != nil {
			log.Fatalf("Seed brand %q: %v", name, err)
		}
	}

	products := store.NewProducts(client, notifier)
	stock := 25
	for _, p := range []struct {
		name  string
		price float64
	}{
		{"Air Zoom", 120000},
		{"Court Classic", 85000},
		{"Daily Tee", 15000},
	} {
		form := &forms.ProductForm{}
		form.Reset(nil)
		form.Name = p.name
		form.Price = p.price
		form.Stock = &stock
		if _, err := products.Create(ctx, form); err != nil {
			log.Fatalf("Seed product %q: %v", p.name, err)
		}
	}

	log.Printf("Seeded %d categories, %d brands, %d products",
		len(categories.Items()), len(brands.Items()), len(products.Items()))
}
