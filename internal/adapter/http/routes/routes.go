package routes

import (
	"context"
	"log"
	"os"
	"time"

	_ "bp_analytics/docs" // swag-generated swagger docs
	"bp_analytics/internal/adapter/http/handlers"
	"bp_analytics/internal/adapter/persistence/repository"
	"bp_analytics/internal/infrastructure/auth"
	"bp_analytics/internal/infrastructure/database"
	"bp_analytics/internal/infrastructure/excel"
	"bp_analytics/internal/usecase"
	"bp_analytics/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	parser := excel.NewWorkbookParser()
	datasetRepo := repository.NewDatasetMemoryRepository()

	datasetUseCase := usecase.NewDatasetUseCase(datasetRepo, parser)
	reportUseCase := usecase.NewReportUseCase(datasetUseCase)
	authUseCase := usecase.NewAuthUseCase(credentialProvider(), sessionTTL())

	authHandler := handlers.NewAuthHandler(authUseCase)
	datasetHandler := handlers.NewDatasetHandler(datasetUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)
	addAnalyticsRoutes(v1, authHandler, datasetHandler, reportHandler)
}

// credentialProvider wires the DynamoDB users table when configured and
// falls back to the env-configured static provider otherwise. There is
// no inline credential table anywhere.
func credentialProvider() interfaces.ICredentialProvider {
	if table := auth.UsersTableFromEnv(); table != "" {
		ddb, err := database.NewDynamoDBClient(context.Background())
		if err != nil {
			log.Printf("DynamoDB credential provider not configured: %v", err)
		} else {
			log.Printf("[auth] using DynamoDB users table %q", table)
			return auth.NewDynamoProvider(ddb, table)
		}
	}

	provider, err := auth.NewStaticProviderFromEnv()
	if err != nil {
		log.Fatalf("no credential provider available: %v", err)
	}
	return provider
}

func sessionTTL() time.Duration {
	if v := os.Getenv("AUTH_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Printf("ignoring invalid AUTH_SESSION_TTL=%q", v)
	}
	return usecase.DefaultSessionTTL
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
