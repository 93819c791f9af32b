package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dcode-github/nestora/backend/catalogue"
	"github.com/dcode-github/nestora/backend/config"
	"github.com/dcode-github/nestora/backend/controllers"
	"github.com/dcode-github/nestora/backend/identity"
	"github.com/dcode-github/nestora/backend/routes"
	"github.com/dcode-github/nestora/backend/search"
	"github.com/dcode-github/nestora/backend/utils"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/mongo"
)

func setupRouter(env *controllers.Env) *mux.Router {
	router := mux.NewRouter()
	routes.Routes(router, env)
	return router
}

// identityRepository uses mongo when configured and falls back to a
// process-local table otherwise.
func identityRepository(cfg *config.Config) (identity.Repository, *mongo.Client) {
	if cfg.MongoURI == "" {
		utils.Logger.Info("MONGOURI not set, identities are kept in memory")
		return identity.NewMemoryRepository(), nil
	}

	client, err := config.ConnectDB(cfg.MongoURI)
	if err != nil {
		utils.Logger.Fatalf("Failed to connect to the database: %v", err)
	}
	config.InitCollections(client, cfg.DBName)

	repo := identity.NewMongoRepository(config.UserCollection)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.EnsureIndexes(ctx); err != nil {
		utils.Logger.Fatalf("Failed to prepare users collection: %v", err)
	}
	return repo, client
}

func redisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		utils.Logger.Info("REDIS_ADD not set, search cache is local only")
		return nil
	}
	client, err := config.InitRedis(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		if cfg.StorageBackend == config.StorageRedis {
			utils.Logger.Fatalf("Redis is required for STORAGE_BACKEND=redis: %v", err)
		}
		utils.Logger.WithError(err).Warn("Redis unavailable, search cache is local only")
		return nil
	}
	return client
}

func main() {
	config.LoadEnv()
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.AppName)
	utils.SetJWTKey(cfg.JWTKey)

	repo, mongoClient := identityRepository(cfg)
	if mongoClient != nil {
		defer config.CloseDBConnection(mongoClient)
	}

	rdb := redisClient(cfg)
	if rdb != nil {
		defer rdb.Close()
	}

	// Results cached by a previous deployment may describe another catalogue.
	cache := search.NewResultCache(rdb, cfg.CacheTTL)
	cache.Purge(context.Background())

	env := &controllers.Env{
		Engine:     search.NewEngine(catalogue.Default(), cache),
		Provider:   identity.NewMockProvider(repo, cfg.AuthDelay),
		SessionTTL: cfg.SessionTTL,
	}
	if cfg.StorageBackend == config.StorageRedis {
		env.SlotRedis = rdb
	}

	router := setupRouter(env)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		utils.Logger.Infof("Server running on port %s (slots in %s)", cfg.Port, cfg.StorageBackend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	utils.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		utils.Logger.Errorf("Error during server shutdown: %v", err)
		return
	}
	utils.Logger.Info("Server gracefully stopped")
}
