package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	recoverware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/darkcommerce/storefront-backend/internal/cart"
	"github.com/darkcommerce/storefront-backend/internal/config"
	"github.com/darkcommerce/storefront-backend/internal/order"
	"github.com/darkcommerce/storefront-backend/internal/payment"
	"github.com/darkcommerce/storefront-backend/internal/product"
	"github.com/darkcommerce/storefront-backend/internal/respond"
	"github.com/darkcommerce/storefront-backend/internal/user"
)

// main wires dependencies and starts the HTTP server. Every store is
// constructed once here and handed to its service by reference; nothing
// holds package-level state.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		AppName:      "darkcommerce",
		ErrorHandler: respond.ErrorHandler,
	})
	app.Use(recoverware.New())
	app.Use(requestLog)
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	productRepo := product.NewInMemoryRepository(product.SampleCatalog())
	productHandler := product.NewHandler(product.NewService(productRepo))
	productHandler.RegisterRoutes(app)

	cartHandler := cart.NewHandler(cart.NewService(cart.NewInMemoryRepository()))
	cartHandler.RegisterRoutes(app)

	orderHandler := order.NewHandler(order.NewService(order.NewInMemoryRepository()))
	orderHandler.RegisterRoutes(app)

	paymentHandler := payment.NewHandler(payment.NewService(cfg.PaymentDelay))
	paymentHandler.RegisterRoutes(app)

	userHandler := user.NewHandler(user.NewService(user.NewInMemoryRepository()))
	userHandler.RegisterRoutes(app)

	// client renderer and images
	app.Static("/", cfg.StaticDir)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Printf("%s %s -> %d (%s)", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}
