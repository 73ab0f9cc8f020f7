package main

import (
	"time"

	"edulytics/analytics"
	"edulytics/config"
	controllers "edulytics/controllers/analytics"
	"edulytics/database"
	"edulytics/repository"
	analyticsRoutes "edulytics/routers/analyticsRoutes"
	"edulytics/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	store := repository.NewGormStore(database.Database.Db)

	opts := analytics.ServiceOptions{
		Segmentation: analytics.DefaultSegmentationConfig(),
		Estimator:    analytics.DefaultEstimatorConfig(),
		Recommender:  analytics.DefaultRecommenderConfig(),
		CacheTTL:     time.Duration(config.AppConfig.AnalysisCacheTTL) * time.Second,
		Sink:         store,
	}
	opts.Segmentation.DangerThreshold = config.AppConfig.DangerThreshold
	opts.Recommender.PopularEnrollMin = config.AppConfig.PopularEnrollMin

	service := analytics.NewService(store, opts)
	controllers.Init(service)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST",                   // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the dashboard assets from the public folder
	app.Static("/", "./public")

	analyticsRoutes.SetupAnalyticsRoutes(app)

	// Background re-analysis keeps persisted segment rows fresh and
	// fires webhook alerts on critical danger zones
	scheduler := utils.InitializeAnalysisScheduler(service)
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
