package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"tournament-hub/database"
	"tournament-hub/handlers"
	"tournament-hub/services"
	"tournament-hub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, enough for image uploads
	})

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOrigins := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(allowedOrigins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
	}))

	db, err := database.Connect()
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to migrate database:", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatal("failed to seed database:", err)
	}

	if os.Getenv("S3_BUCKET_NAME") != "" {
		if err := utils.InitMediaStore(); err != nil {
			log.Fatal("failed to initialize media store:", err)
		}
		log.Println("✅ Media store configured")
	} else {
		log.Println("⚠️  S3_BUCKET_NAME not set, image uploads disabled")
	}

	userService := services.NewUserService(db)
	tournamentService := services.NewTournamentService(db)
	teamService := services.NewTeamService(db)
	newsService := services.NewNewsService(db)

	tournamentService.StartStatusScheduler()

	handlers.SetupUserRoutes(app, userService)
	handlers.SetupTournamentRoutes(app, tournamentService)
	handlers.SetupTeamRoutes(app, teamService)
	handlers.SetupNewsRoutes(app, newsService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Tournament status scheduler running")

	<-ctx.Done()
	log.Println("Shutting down server...")
	_ = app.Shutdown()
	_ = database.Close(db)
}
