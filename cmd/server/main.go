package main

import (
	"context"
	"log"
	"os"

	"showoffs-backend/auth"
	"showoffs-backend/handlers"
	"showoffs-backend/repository"
	"showoffs-backend/service"
	"showoffs-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	// A missing DATABASE_URL puts the server in demo mode: admin routes
	// report 503, public reads report 503, booking submissions succeed
	// with synthetic ids.
	db, err := initPostgres()
	if err != nil {
		log.Fatal("Failed to initialize Postgres:", err)
	}
	if db != nil {
		defer db.Close()
	}

	// Initialize storage
	fileStorage, err := storage.NewStorageFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.Println("Storage initialized")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Println("Warning: JWT_SECRET not set; only demo tokens will be accepted")
	}
	demoEmail := envDefault("ADMIN_DEMO_EMAIL", "admin@showoffsmedia.com")
	demoPassword := envDefault("ADMIN_DEMO_PASSWORD", "admin123")

	// Initialize repositories (nil in demo mode)
	var (
		sectionRepo  *repository.SectionRepository
		workRepo     *repository.WorkRepository
		reviewRepo   *repository.ReviewRepository
		teamRepo     *repository.TeamRepository
		meetingRepo  *repository.MeetingRepository
		settingsRepo *repository.SettingsRepository
		adminRepo    *repository.AdminUserRepository
	)
	if db != nil {
		sectionRepo = repository.NewSectionRepository(db)
		workRepo = repository.NewWorkRepository(db)
		reviewRepo = repository.NewReviewRepository(db)
		teamRepo = repository.NewTeamRepository(db)
		meetingRepo = repository.NewMeetingRepository(db)
		settingsRepo = repository.NewSettingsRepository(db)
		adminRepo = repository.NewAdminUserRepository(db)
	}

	// Initialize services
	var submissionOpts []service.SubmissionServiceOption
	if reviewRepo != nil {
		submissionOpts = append(submissionOpts, service.WithReviewStore(reviewRepo))
	}
	if meetingRepo != nil {
		submissionOpts = append(submissionOpts, service.WithMeetingStore(meetingRepo))
	}
	submissionService := service.NewSubmissionService(submissionOpts...)

	var settingsOpts []service.SettingsServiceOption
	if settingsRepo != nil {
		settingsOpts = append(settingsOpts, service.WithSettingsRepository(settingsRepo))
	}
	settingsService := service.NewSettingsService(settingsOpts...)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(adminRepo, jwtSecret, demoEmail, demoPassword)
	workHandler := handlers.NewWorkHandler(workRepo)
	reviewHandler := handlers.NewReviewHandler(reviewRepo, submissionService)
	teamHandler := handlers.NewTeamHandler(teamRepo)
	meetingHandler := handlers.NewMeetingHandler(meetingRepo, submissionService)
	sectionHandler := handlers.NewSectionHandler(sectionRepo)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	uploadHandler := handlers.NewUploadHandler(fileStorage)

	// Setup Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Local storage serves uploaded files directly
	if local, ok := fileStorage.(*storage.LocalStorage); ok {
		r.Static("/uploads", local.BasePath())
	}

	// Public API
	api := r.Group("/api")
	{
		api.GET("/works", workHandler.PublicList)
		api.GET("/works/:slug", workHandler.PublicGet)
		api.GET("/reviews", reviewHandler.PublicList)
		api.POST("/reviews", reviewHandler.Submit)
		api.GET("/team", teamHandler.PublicList)
		api.GET("/sections", sectionHandler.PublicList)
		api.GET("/settings", settingsHandler.PublicGet)
		api.POST("/meetings", meetingHandler.Submit)
	}

	// Admin API
	r.POST("/api/admin/login", authHandler.Login)

	admin := r.Group("/api/admin")
	admin.Use(auth.RequireAdmin(db, jwtSecret))
	{
		admin.POST("/change-password", authHandler.ChangePassword)

		admin.GET("/works", workHandler.List)
		admin.POST("/works", workHandler.Create)
		admin.PATCH("/works", workHandler.Patch)
		admin.DELETE("/works", workHandler.Delete)

		admin.GET("/reviews", reviewHandler.List)
		admin.POST("/reviews", reviewHandler.Create)
		admin.PATCH("/reviews", reviewHandler.SetApproved)
		admin.DELETE("/reviews", reviewHandler.Delete)

		admin.GET("/team", teamHandler.List)
		admin.POST("/team", teamHandler.Create)
		admin.PATCH("/team", teamHandler.Patch)
		admin.DELETE("/team", teamHandler.Delete)

		admin.GET("/meetings", meetingHandler.List)
		admin.PATCH("/meetings", meetingHandler.UpdateStatus)

		admin.GET("/sections", sectionHandler.List)
		admin.POST("/sections", sectionHandler.Create)
		admin.PUT("/sections", sectionHandler.Reorder)

		admin.GET("/settings", settingsHandler.AdminGet)
		admin.PUT("/settings", settingsHandler.AdminPut)

		admin.POST("/upload", uploadHandler.Upload)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// initPostgres connects to DATABASE_URL, or returns nil when it is unset.
func initPostgres() (*pgxpool.Pool, error) {
	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		log.Println("Warning: DATABASE_URL not set; running in demo mode without persistence")
		return nil, nil
	}

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Postgres connection established")
	return pool, nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
