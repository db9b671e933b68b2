package app

import (
	"github.com/AndreFCTeles/ElectrexAPI/internal/auth"
	"github.com/AndreFCTeles/ElectrexAPI/internal/catalog"
	"github.com/AndreFCTeles/ElectrexAPI/internal/repair"
	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/jsonstore"
	"github.com/AndreFCTeles/ElectrexAPI/internal/system"
	"github.com/AndreFCTeles/ElectrexAPI/internal/workforce"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type moduleDeps struct {
	store     *jsonstore.Store
	mongoDB   *mongo.Database
	publisher workforce.EventPublisher
	jwtSecret string
}

func registerModules(router *gin.Engine, deps moduleDeps) {
	// --- Repositories ---
	workforceRepo := workforce.NewRepository(deps.store)
	catalogRepo := catalog.NewRepository(deps.mongoDB)

	// --- Services ---
	workforceService := workforce.NewService(workforceRepo, deps.publisher)
	catalogService := catalog.NewService(catalogRepo)
	repairService := repair.NewService(deps.store)
	authService := auth.NewService(deps.store, deps.jwtSecret)

	// --- Handlers ---
	workforceHandler := workforce.NewHandler(workforceService)
	catalogHandler := catalog.NewHandler(catalogService)
	repairHandler := repair.NewHandler(repairService)
	authHandler := auth.NewHandler(authService)
	systemHandler := system.NewHandler()

	// --- Routes ---
	api := router.Group("/api")
	{
		workforce.RegisterRoutes(api, workforceHandler)
		catalog.RegisterRoutes(api, catalogHandler)
		repair.RegisterRoutes(api, repairHandler)
		auth.RegisterRoutes(api, authHandler)
		system.RegisterRoutes(api, systemHandler)
	}

	router.GET("/healthz", systemHandler.Health)
}
