package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"trade-journal/config"
	"trade-journal/controllers"
	"trade-journal/db"
	"trade-journal/logging"
	"trade-journal/models"
	"trade-journal/routes"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	db.ConnectDB(cfg.MongoURI, cfg.DBName)
	database := db.GetDB()

	hub := models.NewHub()
	go hub.Run()

	controllers.InitAI(cfg.GeminiAPIKey)
	controllers.SetTradeCollection(database)
	controllers.SetScreenshotCollection(database)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := models.RegisterValidators(v); err != nil {
			log.Fatal().Err(err).Msg("failed to register validators")
		}
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-User-ID"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	routes.WebSocketRoutes(r, hub)
	r.GET("/files/:fileID", controllers.ServeFileHandler)

	api := r.Group("/api")
	api.Use(controllers.RequireUser())
	{
		routes.TradeRoutes(api, hub)
		routes.ScreenshotRoutes(api)
		routes.AnalyticsRoutes(api)
	}

	log.Info().Str("port", cfg.Port).Msg("server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
