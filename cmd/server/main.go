package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"careerhub/config"
	"careerhub/controllers"
	"careerhub/db"
	"careerhub/internal/cache"
	"careerhub/middlewares"
	"careerhub/routes"
	"careerhub/services"
	"careerhub/utils"
	"careerhub/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// .env is optional; real deployments set the variables directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "./config/config.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWT.Secret)

	database, err := db.Connect(cfg.Database.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Disconnect(database)
	log.Println("Connected to MongoDB")

	// The cache is optional; search endpoints fall through to providers
	// without it.
	searchCache, err := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Printf("Redis unavailable, search caching disabled: %v", err)
		searchCache = nil
	} else {
		defer searchCache.Close()
	}

	ctx := context.Background()

	aiClient, err := services.NewAIClient(ctx, cfg.Gemini.ApiKey, cfg.Gemini.Model)
	if err != nil {
		log.Printf("Gemini unavailable, AI features degraded: %v", err)
	} else {
		defer aiClient.Close()
	}

	youtubeClient, err := services.NewYouTubeClient(ctx, cfg.YouTube.ApiKey)
	if err != nil {
		log.Printf("YouTube unavailable, tutorial lookups disabled: %v", err)
	}

	hub := websocket.NewHub()

	gamificationService := services.NewGamificationService(database, hub)
	streakService := services.NewStreakService(database)
	resumeService := services.NewResumeService(database, aiClient, gamificationService)
	roadmapService := services.NewRoadmapService(database, aiClient, youtubeClient, gamificationService)
	quizService := services.NewQuizService(database, aiClient, gamificationService)
	coverLetterService := services.NewCoverLetterService(database, aiClient, gamificationService)
	jobsService := services.NewJobsService(cfg.RapidApi.Key, cfg.RapidApi.Host, searchCache)
	internshipsService := services.NewInternshipsService(cfg.Adzuna.AppId, cfg.Adzuna.AppKey, cfg.Adzuna.Country, searchCache)
	coursesService := services.NewCoursesService(youtubeClient, searchCache)

	router := setupRouter(cfg, database, hub,
		gamificationService, streakService, resumeService, roadmapService,
		quizService, coverLetterService, jobsService, internshipsService, coursesService)

	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(
	cfg *config.Config,
	database *mongo.Database,
	hub *websocket.Hub,
	gamificationService *services.GamificationService,
	streakService *services.StreakService,
	resumeService *services.ResumeService,
	roadmapService *services.RoadmapService,
	quizService *services.QuizService,
	coverLetterService *services.CoverLetterService,
	jobsService *services.JobsService,
	internshipsService *services.InternshipsService,
	coursesService *services.CoursesService,
) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	routes.SetupAuthRoutes(router, controllers.NewAuthController(cfg, database))

	streakController := controllers.NewStreakController(streakService)

	// Read-only streak endpoints degrade gracefully for anonymous users.
	public := router.Group("/")
	public.Use(middlewares.OptionalAuth())

	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		routes.SetupProfileRoutes(auth, controllers.NewProfileController(database))
		routes.SetupGamificationRoutes(auth, controllers.NewGamificationController(gamificationService))
		routes.SetupStreakRoutes(auth, public, streakController)
		routes.SetupResumeRoutes(auth, controllers.NewResumeController(resumeService))
		routes.SetupRoadmapRoutes(auth, controllers.NewRoadmapController(roadmapService))
		routes.SetupQuizRoutes(auth, controllers.NewQuizController(quizService))
		routes.SetupCoverLetterRoutes(auth, controllers.NewCoverLetterController(coverLetterService))
		routes.SetupListingRoutes(auth,
			controllers.NewJobsController(jobsService),
			controllers.NewInternshipsController(internshipsService),
			controllers.NewCoursesController(coursesService))
	}

	// Token is validated inside the handler so browsers can connect with
	// a query parameter.
	router.GET("/ws/gamification", hub.Handler)

	return router
}
