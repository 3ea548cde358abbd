package config

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/comunidadevida/acampamento-api/internal/logging"
	"github.com/comunidadevida/acampamento-api/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

var (
	// MongoDB client
	MongoDB *mongo.Database
	// Redis client
	Redis *redisclient.Client
)

// InitMongoDB initializes the MongoDB connection
func InitMongoDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(100).
		SetMinPoolSize(10).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatal(err)
	}

	MongoDB = client.Database(AppConfig.MongoDatabase)

	if err := ensureIndexes(); err != nil {
		logging.Logger.Error("failed to ensure indexes on startup", zap.Error(err))
	}

	logging.Logger.Info("Connected to MongoDB",
		zap.String("uri", maskMongoURI(AppConfig.MongoURI)),
		zap.String("database", AppConfig.MongoDatabase),
	)
}

// InitRedis initializes the Redis connection
func InitRedis() {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         AppConfig.RedisURI,
		Password:     AppConfig.RedisPassword,
		DB:           AppConfig.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	// Wrap with traced client
	Redis = redisclient.NewClient(redisClient)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		logging.Logger.Error("failed to connect to Redis",
			zap.String("uri", AppConfig.RedisURI),
			zap.Error(err))
		return
	}

	logging.Logger.Info("connected to Redis",
		zap.String("uri", AppConfig.RedisURI))
}

// maskMongoURI masks sensitive information in MongoDB URI
func maskMongoURI(uri string) string {
	if !strings.Contains(uri, "@") {
		return uri
	}
	return "mongodb://****:****@" + uri[strings.LastIndex(uri, "@")+1:]
}

// ensureIndexes creates required indexes if they don't exist. The unique
// indexes on users and inscricoes back the uniqueness guard: a lost race on
// the pre-write check still cannot produce duplicate rows.
func ensureIndexes() error {
	logger := zap.L().Named("database")
	logger.Info("ensuring required indexes exist")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := ensureUserIndexes(ctx, logger); err != nil {
		return err
	}

	if err := ensureInscricaoIndexes(ctx, logger); err != nil {
		return err
	}

	if err := ensureStatusAuditIndexes(ctx, logger); err != nil {
		return err
	}

	return nil
}

func ensureUserIndexes(ctx context.Context, logger *zap.Logger) error {
	collection := MongoDB.Collection(AppConfig.UserCollection)

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		},
		{
			Keys:    bson.D{{Key: "cpf", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("cpf_unique"),
		},
	})
	if err != nil {
		logger.Error("failed to create user indexes", zap.Error(err))
		return err
	}

	logger.Info("user indexes ensured")
	return nil
}

func ensureInscricaoIndexes(ctx context.Context, logger *zap.Logger) error {
	collection := MongoDB.Collection(AppConfig.InscricaoCollection)

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "evento_id", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("user_evento_unique"),
		},
		{
			// Waitlist ordering is creation time within an event
			Keys: bson.D{
				{Key: "evento_id", Value: 1},
				{Key: "created_at", Value: 1},
			},
			Options: options.Index().SetName("evento_created_at"),
		},
		{
			Keys: bson.D{
				{Key: "evento_id", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index().SetName("evento_status"),
		},
	})
	if err != nil {
		logger.Error("failed to create inscricao indexes", zap.Error(err))
		return err
	}

	logger.Info("inscricao indexes ensured")
	return nil
}

func ensureStatusAuditIndexes(ctx context.Context, logger *zap.Logger) error {
	collection := MongoDB.Collection(AppConfig.StatusAuditCollection)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "inscricao_id", Value: 1},
			{Key: "timestamp", Value: -1},
		},
		Options: options.Index().SetName("inscricao_timestamp"),
	})
	if err != nil {
		logger.Error("failed to create status audit indexes", zap.Error(err))
		return err
	}

	logger.Info("status audit indexes ensured")
	return nil
}
