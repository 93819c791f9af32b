package config

import (
	"context"
	"fmt"
	"time"

	"github.com/dcode-github/nestora/backend/utils"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var UserCollection *mongo.Collection

func ConnectDB(uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("MONGOURI not set in environment")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	utils.Logger.Info("Connected to MongoDB")
	return client, nil
}

func InitCollections(client *mongo.Client, dbName string) {
	UserCollection = client.Database(dbName).Collection("users")
}

func CloseDBConnection(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		utils.Logger.WithError(err).Error("Error closing MongoDB connection")
		return
	}
	utils.Logger.Info("MongoDB connection closed")
}
