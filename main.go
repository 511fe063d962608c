package main

import (
	"log"
	"net/http"

	"discussion-board/config"
	"discussion-board/middleware"
	"discussion-board/routes"
	"discussion-board/views"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.LoadJWT()
	cfg := config.LoadAppConfig()
	gin.SetMode(cfg.GinMode)

	db := config.InitDB()

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}

	router := routes.NewRouter(db, renderer, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, middleware.MethodOverride(router)))
}
