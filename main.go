package main

import (
	"fmt"
	"log"

	"github.com/akhilgolj/plantopiawebsite-final/configs"
	"github.com/akhilgolj/plantopiawebsite-final/middlewares"
	"github.com/akhilgolj/plantopiawebsite-final/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))

	routes.RegisterRoutes(r, db)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
