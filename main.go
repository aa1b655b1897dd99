package main

import (
	"log"
	"os"

	"github.com/colecionador/colecao-backend/src/db"
	"github.com/colecionador/colecao-backend/src/middleware"
	"github.com/colecionador/colecao-backend/src/models"
	"github.com/colecionador/colecao-backend/src/repository"
	"github.com/colecionador/colecao-backend/src/routes"
	"github.com/colecionador/colecao-backend/src/seed"
	"github.com/colecionador/colecao-backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(&models.ColecaoModel{}); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Optional seeding
	if os.Getenv("SEED_DB") == "true" {
		seed.Seed(db)
	}

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	colecaoRepository := repository.NewGormColecaoRepository(db)
	colecaoService := services.NewColecaoService(colecaoRepository)

	// Routes setup
	routes.SetupColecaoRoutes(router, colecaoService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Colecao backend up!")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
