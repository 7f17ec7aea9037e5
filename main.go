package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rmucenieks/store-poc/cart"
	"github.com/rmucenieks/store-poc/clients"
	"github.com/rmucenieks/store-poc/config"
	"github.com/rmucenieks/store-poc/handlers"
	"github.com/rmucenieks/store-poc/i18n"
	"github.com/rmucenieks/store-poc/settings"
	"github.com/rmucenieks/store-poc/store"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := config.LoadConfig()

	log.Printf("Starting Storefront Service on port %s", cfg.Port)

	// Set Gin mode based on environment
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Preference store: Redis when configured, in-memory otherwise
	var prefStore settings.Store
	if cfg.RedisAddr != "" {
		redisStore, err := settings.NewRedisStore(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		prefStore = redisStore
		log.Printf("Persisting preferences to Redis at %s", cfg.RedisAddr)
	} else {
		prefStore = settings.NewMemoryStore()
	}

	// Localization
	langManager := i18n.NewManager(context.Background(), prefStore, i18n.Language(cfg.DefaultLanguage))
	log.Printf("Active language: %s", langManager.CurrentLanguageKey())

	// Upstream clients
	storeClient := clients.NewStoreClient(cfg.StoreBaseURL, cfg.HTTPTimeout)
	detailsClient := clients.NewProductDetailsClient(cfg.StoreBaseURL, cfg.HTTPTimeout)
	imageResolver := clients.NewStoreImageResolver(cfg.StoreBaseURL)

	// Coordinators
	storeCoordinator := store.NewCoordinator(storeClient, langManager)
	cartCoordinator := cart.NewCoordinator()

	// A language switch reloads the localized catalog and banner
	langManager.OnLanguageChange(func(lang i18n.Language) {
		storeCoordinator.HandleLanguageChange(context.Background())
	})

	// Handlers
	storeHandler := handlers.NewStoreHandler(storeCoordinator)
	cartHandler := handlers.NewCartHandler(cartCoordinator)
	detailHandler := handlers.NewDetailHandler(storeCoordinator, cartCoordinator, detailsClient, imageResolver, langManager.CurrentLanguageKey)
	languageHandler := handlers.NewLanguageHandler(langManager)

	// Setup router
	router := gin.Default()

	// Store routes
	router.GET("/store/categories", storeHandler.GetCategories)
	router.POST("/store/categories/:categoryId/select", storeHandler.SelectCategory)
	router.GET("/store/products", storeHandler.GetProducts)
	router.GET("/store/banner", storeHandler.GetBanner)

	// Product detail routes
	router.GET("/products/:productId/details", detailHandler.GetDetails)
	router.POST("/products/:productId/quantity/:direction", detailHandler.StepQuantity)
	router.POST("/products/:productId/add-to-cart", detailHandler.AddToCart)

	// Cart routes
	router.GET("/cart", cartHandler.GetCart)
	router.POST("/cart/items", cartHandler.AddItem)
	router.PATCH("/cart/items/:itemId", cartHandler.UpdateItem)
	router.DELETE("/cart/items/:itemId", cartHandler.RemoveItem)
	router.DELETE("/cart", cartHandler.ClearCart)
	router.POST("/cart/purchase", cartHandler.Purchase)

	// Language routes
	router.GET("/languages", languageHandler.GetLanguages)
	router.PUT("/language", languageHandler.SetLanguage)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	log.Fatal(router.Run(":" + cfg.Port))
}
