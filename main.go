// @title Modeva Storefront API
// @version 1.0
// @description Collection pages, product pages, OTP sign-in, cart and wishlist of the Modeva storefront
// @host localhost:8081
// @BasePath /
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	_ "github.com/Modeva-Ecommerce/modeva-storefront/docs"
	"github.com/Modeva-Ecommerce/modeva-storefront/metrics"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/routes/ecommerce_routes"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	config.LoadApp()

	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis backs sessions and rate limits
	if config.App.SessionBackend != "memory" {
		config.ConnectRedis()
	}
	services.InitSessionStore(config.App.SessionBackend, config.RedisClient)

	// Initialize Cloudinary delivery
	media, err := services.NewMediaService(config.App.CloudinaryName, config.App.CloudinaryKey, config.App.CloudinarySecret)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	var mailer services.Mailer
	if os.Getenv("RESEND_API_KEY") == "" && !config.App.IsProduction {
		log.Println("⚠️ RESEND_API_KEY not set, OTP emails go to the log")
		mailer = services.LogMailer{}
	} else {
		mailer = services.NewResendClient(config.App.SiteName)
	}

	services.InitStorefrontServices(config.StoreGorm, media, mailer)

	corsCfg := cors.Config{
		AllowOrigins:     config.App.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", config.App.CSRFHeader, "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if config.App.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(cors.New(corsCfg))
	router.Use(middleware.Metrics(metrics.Get()))

	ecommerce_routes.SetupRoutes(router)
	log.Println("✅ Storefront routes registered")

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Printf("🚀 Storefront is running on http://localhost:%s\n", config.App.Port)
	if err := router.Run(":" + config.App.Port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
