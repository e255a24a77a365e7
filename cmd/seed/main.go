package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/digilinkbd/BestWareHub-sub002/config"
	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/digilinkbd/BestWareHub-sub002/utils"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the schema and loads demo marketplace data.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("BESTWAREHUB - Demo Data Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.Gorm.AutoMigrate(
		&models.Category{},
		&models.Brand{},
		&models.Seller{},
		&models.Product{},
		&models.Review{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	parents := seedCategories()
	brands := seedBrands()
	sellers := seedSellers()
	count := seedProducts(parents, brands, sellers)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Data Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Products: %d\n", count)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse GET /api/v1/store/catalog/smartphones")
	fmt.Println("3. Filter with ?brand=walton&minPrice=5000&sort=price-low-high")
	fmt.Println()
}

func seedCategories() map[string]models.Category {
	tree := map[string][]string{
		"Electronics":     {"Smartphones", "Laptops", "Televisions"},
		"Home Appliances": {"Refrigerators", "Washing Machines", "Air Conditioners"},
		"Kitchen":         {"Blenders", "Rice Cookers"},
	}

	subs := make(map[string]models.Category)
	for parentName, children := range tree {
		parent := models.Category{
			Name: parentName,
			Slug: utils.Slugify(parentName),
		}
		if err := config.Gorm.Where("slug = ?", parent.Slug).FirstOrCreate(&parent).Error; err != nil {
			log.Fatalf("Failed to seed category %s: %v", parentName, err)
		}

		for _, childName := range children {
			child := models.Category{
				Name:       childName,
				Slug:       utils.Slugify(childName),
				ParentID:   &parent.ID,
				ParentName: &parent.Name,
			}
			if err := config.Gorm.Where("slug = ?", child.Slug).FirstOrCreate(&child).Error; err != nil {
				log.Fatalf("Failed to seed category %s: %v", childName, err)
			}
			subs[child.Slug] = child
		}
	}

	log.Printf("✓ Seeded %d sub-categories", len(subs))
	return subs
}

func seedBrands() []models.Brand {
	names := []string{"Walton", "Symphony", "Samsung", "Xiaomi", "Singer", "Vision", "Minister"}

	brands := make([]models.Brand, 0, len(names))
	for _, name := range names {
		brand := models.Brand{
			Title: name,
			Slug:  utils.Slugify(name),
		}
		if err := config.Gorm.Where("slug = ?", brand.Slug).FirstOrCreate(&brand).Error; err != nil {
			log.Fatalf("Failed to seed brand %s: %v", name, err)
		}
		brands = append(brands, brand)
	}

	log.Printf("✓ Seeded %d brands", len(brands))
	return brands
}

func seedSellers() []models.Seller {
	stores := []struct {
		name  string
		email string
	}{
		{"TechHub BD", "techhub@example.com"},
		{"Dhaka Gadgets", "dhakagadgets@example.com"},
		{"Banani Electronics", "banani.electronics@example.com"},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seller password: %v", err)
	}

	sellers := make([]models.Seller, 0, len(stores))
	for _, s := range stores {
		seller := models.Seller{
			StoreName:    s.name,
			Slug:         utils.Slugify(s.name),
			Email:        s.email,
			PasswordHash: string(hash),
			Status:       "Active",
		}
		if err := config.Gorm.Where("slug = ?", seller.Slug).FirstOrCreate(&seller).Error; err != nil {
			log.Fatalf("Failed to seed seller %s: %v", s.name, err)
		}
		sellers = append(sellers, seller)
	}

	log.Printf("✓ Seeded %d sellers", len(sellers))
	return sellers
}

func seedProducts(subs map[string]models.Category, brands []models.Brand, sellers []models.Seller) int {
	rng := rand.New(rand.NewSource(42))

	dealPool := []string{"flash-sale", "free-shipping", "clearance"}
	deliveryPool := [][]string{
		{"standard"},
		{"standard", "express"},
		{"express"},
	}

	count := 0
	for slug, sub := range subs {
		for i := 1; i <= 20; i++ {
			brand := brands[rng.Intn(len(brands))]
			seller := sellers[rng.Intn(len(sellers))]
			price := float64(1000 + rng.Intn(60000))

			product := models.Product{
				Name:          fmt.Sprintf("%s %s %d", brand.Title, sub.Name, i),
				Slug:          fmt.Sprintf("%s-%s-%d", brand.Slug, slug, i),
				Description:   fmt.Sprintf("Demo %s from %s.", sub.Name, seller.StoreName),
				Price:         price,
				IsFeatured:    i <= 2,
				Rating:        float64(rng.Intn(21)+30) / 10, // 3.0 - 5.0
				BrandID:       &brand.ID,
				SellerID:      seller.ID,
				SubCategoryID: sub.ID,
				Status:        "Active",
				DealTags:      models.TagsList{},
				DeliveryModes: models.TagsList(deliveryPool[rng.Intn(len(deliveryPool))]),
				Media: models.ProductMedia{
					Primary: models.MediaURL{URL: fmt.Sprintf("https://placehold.co/600x600?text=%s+%d", slug, i)},
				},
				Stock:     10 + rng.Intn(90),
				CreatedAt: time.Now().AddDate(0, 0, -rng.Intn(90)),
			}

			// Every third product carries a discount
			if i%3 == 0 {
				sale := price * 0.8
				discount := 20
				product.SalePrice = &sale
				product.IsDiscount = true
				product.Discount = &discount
				product.DealTags = models.TagsList{dealPool[rng.Intn(len(dealPool))]}
			}

			if err := config.Gorm.Where("slug = ?", product.Slug).FirstOrCreate(&product).Error; err != nil {
				log.Fatalf("Failed to seed product %s: %v", product.Slug, err)
			}
			count++
		}
	}

	log.Printf("✓ Seeded %d products", count)
	return count
}
