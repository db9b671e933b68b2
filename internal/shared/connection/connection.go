package connection

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectMongoWithRetry dials MongoDB and pings it until it answers or
// the retry budget runs out. Startup blocks on this: the search
// endpoints are useless without the document store.
func ConnectMongoWithRetry(uri string, maxRetries int) (*mongo.Client, error) {
	log := zap.L().Named("connection.mongo")

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err == nil {
			err = client.Ping(ctx, nil)
			if err == nil {
				cancel()
				log.Info("connected to MongoDB")
				return client, nil
			}
			_ = client.Disconnect(context.Background())
		}
		cancel()

		lastErr = err
		log.Warn("mongo connect failed",
			zap.Int("attempt", i),
			zap.Int("max_retries", maxRetries),
			zap.Error(err),
		)
		time.Sleep(5 * time.Second)
	}

	return nil, fmt.Errorf("mongo connection failed after %d retries: %w", maxRetries, lastErr)
}
