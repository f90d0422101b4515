package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/chigozie9/WareHouse/internal/handler"
	"github.com/chigozie9/WareHouse/internal/middleware"
	"github.com/chigozie9/WareHouse/internal/model"
	"github.com/chigozie9/WareHouse/internal/repository"
	"github.com/chigozie9/WareHouse/internal/service"
	"github.com/chigozie9/WareHouse/internal/ws"
	"github.com/chigozie9/WareHouse/pkg/database"

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
	db.AutoMigrate(&model.Warehouse{}, &model.InventoryItem{}, &model.TransferLog{}, &model.User{})

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	warehouseRepo := repository.NewWarehouseRepo(db)
	itemRepo := repository.NewItemRepo(db)
	transferLogRepo := repository.NewTransferLogRepo(db)
	userRepo := repository.NewUserRepo(db)
	txManager := repository.NewTxManager(db)

	warehouseService := service.NewWarehouseService(warehouseRepo, itemRepo, txManager)
	invService := service.NewInventoryService(warehouseRepo, itemRepo, txManager, wsHub)
	transferService := service.NewTransferService(warehouseRepo, itemRepo, transferLogRepo, txManager, wsHub)
	dashService := service.NewDashboardService(transferLogRepo)
	authService := service.NewAuthService(userRepo)

	warehouseHandler := handler.NewWarehouseHandler(warehouseService)
	invHandler := handler.NewInventoryHandler(invService)
	transferHandler := handler.NewTransferHandler(transferService)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Warehouse Manager v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// Auth Routes (no authentication required)
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Dashboard Routes
	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	protected.Get("/dashboard/stock-movement", dashHandler.GetStockMovement)

	// Warehouse Routes
	protected.Get("/warehouses", warehouseHandler.GetWarehouses)
	protected.Get("/warehouses/:id", warehouseHandler.GetWarehouse)
	protected.Post("/warehouses", warehouseHandler.CreateWarehouse)
	protected.Put("/warehouses/:id", warehouseHandler.UpdateWarehouse)
	protected.Delete("/warehouses/:id", warehouseHandler.DeleteWarehouse)

	// Inventory Item Routes (scoped to a warehouse)
	protected.Get("/warehouses/:id/items", invHandler.GetItems)
	protected.Post("/warehouses/:id/items", invHandler.AddItem)
	protected.Put("/warehouses/:id/items/:itemId", invHandler.UpdateItem)
	protected.Delete("/warehouses/:id/items/:itemId", invHandler.DeleteItem)

	// Transfer Routes
	protected.Post("/transfers", transferHandler.Transfer)
	protected.Get("/transfers", transferHandler.GetTransfers)

	// WebSocket Route
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	_, err := userRepo.FindByEmail("admin@example.com")
	if err == nil {
		return
	}

	admin := &model.User{
		Email:    "admin@example.com",
		FullName: "Warehouse Administrator",
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created: admin@example.com / admin123")
	}
}
