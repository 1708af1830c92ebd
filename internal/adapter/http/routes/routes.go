package routes

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "oficina_os/docs" // swagger docs, auto-generated
	"oficina_os/internal/adapter/http/handlers"
	repository2 "oficina_os/internal/adapter/persistence/repository"
	"oficina_os/internal/infrastructure/database"
	"oficina_os/internal/infrastructure/logging"
	"oficina_os/internal/infrastructure/notification"
	"oficina_os/internal/usecase"
)

var router = gin.Default()

const defaultPort = "8080"

// Run wires the service together and starts the HTTP server.
func Run() {
	log := logging.New()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	db, err := database.Connect(log)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := repository2.AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	orderRepo := repository2.NewWorkOrderGormRepository(db)
	partCatalog := repository2.NewPartCatalogGormRepository(db)
	faultTypeCatalog := repository2.NewFaultTypeCatalogGormRepository(db)
	clients := repository2.NewClientGormRepository(db)
	payments := repository2.NewPaymentRecordGormRepository(db)
	notifier := notification.NewWebhookDispatcher(log)

	workOrderUseCase := usecase.NewWorkOrderUseCase(orderRepo, partCatalog, faultTypeCatalog, clients, notifier, payments, log)

	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase)
	catalogHandler := handlers.NewCatalogHandler(partCatalog, faultTypeCatalog)

	v1 := router.Group("/v1")
	v1.Use(establishmentMiddleware())
	addPingRoutes(v1)
	addWorkOrderRoutes(v1, workOrderHandler, catalogHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatus(500)
	}))
}

// establishmentMiddleware resolves the tenant from X-Establishment-Id,
// falling back to the single-shop default.
func establishmentMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		establishment := strings.TrimSpace(c.GetHeader("X-Establishment-Id"))
		if establishment == "" {
			establishment = "default"
		}
		c.Set(handlers.EstablishmentKey, establishment)
		c.Next()
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
