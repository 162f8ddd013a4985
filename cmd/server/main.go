package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/db"
	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/httpapi"
)

func main() {
	log.Println("Starting aura server...")

	if err := db.InitDB(); err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	r := gin.Default()
	api := r.Group("/api")
	httpapi.SetupRoutes(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
