package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"go-restaurant-orders/internal/handler"
	"go-restaurant-orders/internal/middleware"
	"go-restaurant-orders/internal/model"
	"go-restaurant-orders/internal/repository"
	"go-restaurant-orders/internal/service"
	"go-restaurant-orders/internal/ws"
	"go-restaurant-orders/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	db.AutoMigrate(&model.User{}, &model.Product{}, &model.Order{}, &model.OrderItem{})

	// 3. Seed default admin and sample menu
	seedAdminAndMenu(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	userRepo := repository.NewUserRepo(db)

	orderService := service.NewOrderService(productRepo, orderRepo, userRepo, db, wsHub, taxRateFromEnv())
	catalogService := service.NewCatalogService(productRepo, db, wsHub)
	authService := service.NewAuthService(userRepo)
	recommender := service.NewRecommendationService(orderRepo, productRepo)
	salesService := service.NewSalesService(orderRepo, productRepo)

	authHandler := handler.NewAuthHandler(authService)
	menuHandler := handler.NewMenuHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	dashHandler := handler.NewDashboardHandler(orderService, recommender)
	adminHandler := handler.NewAdminHandler(catalogService, salesService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Restaurant Orders v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Menu is browsable without login
	api.Get("/menu", menuHandler.ListProducts)
	api.Get("/menu/categories", menuHandler.Categories)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth())

	// Checkout and order history
	protected.Post("/orders", orderHandler.PlaceOrder)
	protected.Get("/orders", orderHandler.ListMyOrders)

	// User dashboard (history + recommendations)
	protected.Get("/dashboard", dashHandler.Overview)

	// Admin panel (role gated)
	admin := protected.Group("/admin", middleware.RequireAdmin())
	admin.Get("/summary", adminHandler.Summary)
	admin.Get("/orders", adminHandler.RecentOrders)
	admin.Post("/products", adminHandler.CreateProduct)
	admin.Put("/products/:id", adminHandler.UpdateProduct)
	admin.Delete("/products/:id", adminHandler.DeleteProduct)

	// WebSocket Route (live order feed for the admin dashboard)
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

func taxRateFromEnv() float64 {
	raw := os.Getenv("TAX_RATE")
	if raw == "" {
		return service.DefaultTaxRate
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate < 0 {
		log.Printf("Warning: invalid TAX_RATE %q, using default", raw)
		return service.DefaultTaxRate
	}
	return rate
}

// seedAdminAndMenu creates the default admin user and sample menu if missing
func seedAdminAndMenu(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	// 1. Default admin
	if _, err := userRepo.FindByUsername("admin"); err != nil {
		admin := &model.User{
			Username: "admin",
			Email:    "admin@example.com",
			Role:     model.RoleAdmin,
		}
		if err := admin.SetPassword("admin123"); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}
		if err := userRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Println("✅ Admin user created: admin / admin123")
		}
	}

	// 2. Sample menu, only when the catalog is empty
	var count int64
	db.Model(&model.Product{}).Count(&count)
	if count > 0 {
		return
	}

	products := []model.Product{
		{Name: "Gourmet Burger", Category: "Burger", SellingPrice: 12.99, CostPrice: 5.00, Stock: 50, Rating: 4.8},
		{Name: "Margherita Pizza", Category: "Pizza", SellingPrice: 15.50, CostPrice: 6.00, Stock: 30, Rating: 4.7},
		{Name: "Iced Coffee", Category: "Drink", SellingPrice: 4.50, CostPrice: 1.20, Stock: 100, Rating: 4.5},
		{Name: "Chocolate Lava Cake", Category: "Dessert", SellingPrice: 7.99, CostPrice: 3.00, Stock: 20, Rating: 4.9},
		{Name: "Caesar Salad", Category: "Salad", SellingPrice: 9.50, CostPrice: 3.50, Stock: 40, Rating: 4.4},
	}

	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Printf("Warning: Failed to seed product %s: %v", products[i].Name, err)
		}
	}
	log.Println("✅ Sample menu seeded")
}
