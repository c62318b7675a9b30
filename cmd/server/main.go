package main

import (
	"log"
	"os"
	"strings"

	"herhub/internal/db"
	"herhub/internal/handlers"
	"herhub/internal/middleware"
	"herhub/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func allowedOrigins() []string {
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{
		"http://localhost:3000",
		"http://localhost:8080",
		"http://10.0.2.2:3000", // Android emulator
		"https://herhub.app",
		"https://api.herhub.app",
	}
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Start the counter reconciliation worker
	services.GetRecountService()

	// Initialize Gin
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins(),
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	// Uploaded post images
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	r.Static("/uploads", uploadDir)

	// Handlers
	feedHandler := handlers.NewFeedHandler()
	postHandler := handlers.NewPostHandler()
	filtersHandler := handlers.NewFiltersHandler()
	userHandler := handlers.NewUserHandler()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	api := r.Group("/api")

	// Signup flow, no credential yet
	user := api.Group("/user")
	{
		user.GET("/check-username/:username", userHandler.CheckUsername)
		user.POST("/send-email", userHandler.SendEmailCode)
		user.POST("/verify-email", userHandler.VerifyEmailCode)
		user.POST("/send-phone", userHandler.SendPhoneCode)
		user.POST("/verify-phone", userHandler.VerifyPhoneCode)
		user.POST("/complete-signup", userHandler.CompleteSignup)
	}

	// Everything below requires a bearer token
	authed := api.Group("/")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/feed", feedHandler.List)
		authed.GET("/feed/refresh", feedHandler.Refresh)
		authed.GET("/filters", filtersHandler.List)

		authed.POST("/posts/photo", postHandler.CreatePhoto)
		authed.POST("/posts/tip", postHandler.CreateTip)
		authed.POST("/posts/help", postHandler.CreateHelp)
		authed.POST("/posts/poll", postHandler.CreatePoll)

		authed.GET("/posts/:id", postHandler.Detail)
		authed.POST("/posts/:id/like", postHandler.Like)
		authed.POST("/posts/:id/save", postHandler.Save)
		authed.POST("/posts/:id/vote", postHandler.Vote)
		authed.POST("/posts/:id/comments", postHandler.CreateComment)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("HerHub server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
