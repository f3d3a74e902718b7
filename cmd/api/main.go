package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/careerport/job-service/internal/config"
	"github.com/careerport/job-service/internal/database"
	"github.com/careerport/job-service/internal/handlers"
	"github.com/careerport/job-service/internal/services"
	"github.com/careerport/job-service/internal/uploads"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment")
	}
	cfg := config.Load()

	db := database.Connect(cfg)

	store, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}

	jobService := services.NewJobService(db)
	jobHandler := handlers.NewJobHandler(jobService, store)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/", handlers.HealthCheck)
	r.GET("/health", handlers.Health)
	r.Static("/uploads", store.Root())

	jobs := r.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.GET("/:id/similar", jobHandler.SimilarJobs)
		jobs.POST("", jobHandler.CreateJob)
		jobs.POST("/with-logo", jobHandler.CreateJobWithLogo)
		jobs.PUT("/:id", jobHandler.UpdateJob)
		jobs.DELETE("/:id", jobHandler.DeleteJob)
	}

	log.Infof("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
