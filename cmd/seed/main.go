package main

import (
	"log"

	"go-restaurant-orders/internal/model"
	"go-restaurant-orders/pkg/database"

	"github.com/joho/godotenv"
)

// Reseeds the sample menu and resets the admin account. Destructive: wipes
// products, orders, and order items first.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{}, &model.Product{}, &model.Order{}, &model.OrderItem{})

	// 3. Wipe order and catalog data
	if err := db.Exec("DELETE FROM order_items").Error; err != nil {
		log.Fatalf("❌ Failed to clear order items: %v", err)
	}
	if err := db.Exec("DELETE FROM orders").Error; err != nil {
		log.Fatalf("❌ Failed to clear orders: %v", err)
	}
	if err := db.Exec("DELETE FROM products").Error; err != nil {
		log.Fatalf("❌ Failed to clear products: %v", err)
	}

	// 4. Ensure admin exists
	var admin model.User
	if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		admin = model.User{
			Username: "admin",
			Email:    "admin@example.com",
			Role:     model.RoleAdmin,
		}
		if err := admin.SetPassword("admin123"); err != nil {
			log.Fatalf("❌ Failed to hash admin password: %v", err)
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("❌ Failed to create admin user: %v", err)
		}
		log.Println("✅ Admin user created: admin / admin123")
	}

	// 5. Sample menu
	products := []model.Product{
		{Name: "Gourmet Burger", Category: "Burger", SellingPrice: 12.99, CostPrice: 5.00, Stock: 50, Rating: 4.8},
		{Name: "Margherita Pizza", Category: "Pizza", SellingPrice: 15.50, CostPrice: 6.00, Stock: 30, Rating: 4.7},
		{Name: "Iced Coffee", Category: "Drink", SellingPrice: 4.50, CostPrice: 1.20, Stock: 100, Rating: 4.5},
		{Name: "Chocolate Lava Cake", Category: "Dessert", SellingPrice: 7.99, CostPrice: 3.00, Stock: 20, Rating: 4.9},
		{Name: "Caesar Salad", Category: "Salad", SellingPrice: 9.50, CostPrice: 3.50, Stock: 40, Rating: 4.4},
	}

	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatalf("❌ Failed to seed product %s: %v", products[i].Name, err)
		}
	}

	log.Println("✅ Database seeded successfully")
}
