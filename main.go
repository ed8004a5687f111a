package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/config"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/db"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/handler"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/middleware"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/mongo"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/repository"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	exec, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer exec.Close()

	reviewRepo := repository.NewReviewRepository(exec)
	orderRepo := repository.NewOrderRepository(exec)
	catalogRepo := repository.NewCatalogRepository(exec)
	contactRepo := repository.NewContactRepository(exec)

	reviewSvc := service.NewReviewService(reviewRepo)
	orderSvc := service.NewOrderService(orderRepo)
	contactSvc := service.NewContactService(contactRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	api := r.Group("/api")

	handler.NewReviewHandler(reviewSvc).RegisterRoutes(api)
	handler.NewOrderHandler(orderSvc, orderRepo).RegisterRoutes(api)
	handler.NewContactHandler(contactSvc).RegisterRoutes(api)
	handler.NewCatalogHandler(catalogRepo).RegisterRoutes(api)
	(&handler.HealthHandler{Exec: exec}).RegisterRoutes(api)

	// Category photos live in GridFS; skip the routes when Mongo is not
	// configured.
	if cfg.Mongo.URI != "" {
		client, err := mongo.NewClient(cfg.Mongo.URI)
		if err != nil {
			log.Fatalf("mongo error: %v", err)
		}
		photoRepo := repository.NewPhotoRepository(client, cfg.Mongo.Database)
		(&handler.PhotoHandler{Photos: photoRepo, Catalog: catalogRepo}).RegisterRoutes(api)
	} else {
		log.Println("MONGO_URI not set, category photo routes disabled")
	}

	log.Printf("Cake Cravings backend running on :%s …", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
