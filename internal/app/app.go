package app

import (
	"net/http"
	"os"
	"strings"

	"github.com/AndreFCTeles/ElectrexAPI/internal/middleware"
	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/connection"
	"github.com/AndreFCTeles/ElectrexAPI/internal/shared/jsonstore"
	"github.com/AndreFCTeles/ElectrexAPI/internal/workforce"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BuildApp connects the infrastructure and registers every module on
// the router.
func BuildApp(router *gin.Engine) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(50, 100))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
	}))

	dataDir := envOr("DATA_DIR", "files")
	store := jsonstore.New(dataDir)

	mongoClient, err := connection.ConnectMongoWithRetry(
		envOr("MONGO_URI", "mongodb://localhost:27017"),
		5,
	)
	if err != nil {
		return err
	}
	mongoDB := mongoClient.Database(envOr("MONGO_DB", "electrex"))

	publisher := workforce.NewNoopEventPublisher()
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		publisher = workforce.NewKafkaEventPublisher(writer)
		zap.L().Info("kafka event publishing enabled", zap.String("brokers", brokers))
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "electrex-dev-secret"
		zap.L().Warn("JWT_SECRET not set, using development secret")
	}

	registerModules(router, moduleDeps{
		store:     store,
		mongoDB:   mongoDB,
		publisher: publisher,
		jwtSecret: jwtSecret,
	})

	// collection files are also served raw for the frontend
	router.Static("/files", dataDir)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Endpoint not found"})
	})

	return nil
}
