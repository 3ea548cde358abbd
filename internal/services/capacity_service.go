package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/comunidadevida/acampamento-api/internal/config"
	"github.com/comunidadevida/acampamento-api/internal/models"
	"github.com/comunidadevida/acampamento-api/internal/observability"
	"github.com/comunidadevida/acampamento-api/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CapacityService is the capacity gate: it decides whether an event still
// has room. The decision is advisory for the display layer; in strict mode
// the registration pipeline additionally reserves a slot atomically.
type CapacityService struct {
	logger *zap.Logger
}

// NewCapacityService creates a new capacity service
func NewCapacityService(logger *zap.Logger) *CapacityService {
	return &CapacityService{logger: logger}
}

// GetEvent loads an event by its hex id
func (s *CapacityService) GetEvent(ctx context.Context, eventoID string) (*models.Event, error) {
	objectID, err := primitive.ObjectIDFromHex(eventoID)
	if err != nil {
		return nil, models.ErrInvalidEventID
	}

	ctx, span := utils.TraceDatabaseFind(ctx, config.AppConfig.EventCollection, "_id")
	defer span.End()

	var evento models.Event
	err = config.MongoDB.Collection(config.AppConfig.EventCollection).
		FindOne(ctx, bson.M{"_id": objectID}).Decode(&evento)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrEventoNaoEncontrado
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &evento, nil
}

// CheckCapacity computes the open/full decision for an event. The count
// covers ALL enrollments regardless of status: pending ones hold a seat
// while their payment proof awaits review, and nothing is hard-deleted.
func (s *CapacityService) CheckCapacity(ctx context.Context, evento *models.Event) (*models.CapacityStatus, error) {
	total, err := s.countEnrollments(ctx, evento.ID)
	if err != nil {
		return nil, err
	}

	status := &models.CapacityStatus{
		Success:         true,
		TotalInscricoes: total,
		Limite:          evento.MaxParticipantes,
		IsLotado:        evento.HasLimit() && total >= evento.MaxParticipantes,
	}

	decision := "open"
	if status.IsLotado {
		decision = "full"
	}
	observability.CapacityChecks.WithLabelValues(decision).Inc()

	return status, nil
}

// countEnrollments returns the enrollment count for an event, served from a
// short-lived Redis cache when possible. The gate is advisory, so a count a
// few seconds stale is acceptable.
func (s *CapacityService) countEnrollments(ctx context.Context, eventoID primitive.ObjectID) (int, error) {
	cacheKey := "capacity:count:" + eventoID.Hex()

	if config.Redis != nil {
		if cached, err := config.Redis.Get(ctx, cacheKey).Result(); err == nil {
			if total, err := strconv.Atoi(cached); err == nil {
				observability.CacheHits.WithLabelValues("capacity_count").Inc()
				return total, nil
			}
		}
	}

	ctx, span := utils.TraceDatabaseCount(ctx, config.AppConfig.InscricaoCollection, "evento_id")
	defer span.End()

	total, err := config.MongoDB.Collection(config.AppConfig.InscricaoCollection).
		CountDocuments(ctx, bson.M{"evento_id": eventoID})
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("count", "error").Inc()
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("count", "success").Inc()

	if config.Redis != nil {
		if err := config.Redis.Set(ctx, cacheKey, int(total), config.AppConfig.CapacityCacheTTL).Err(); err != nil {
			s.logger.Debug("failed to cache capacity count", zap.Error(err))
		}
	}

	return int(total), nil
}

// InvalidateCount drops the cached enrollment count after a new enrollment
func (s *CapacityService) InvalidateCount(ctx context.Context, eventoID primitive.ObjectID) {
	if config.Redis == nil {
		return
	}
	if err := config.Redis.Del(ctx, "capacity:count:"+eventoID.Hex()).Err(); err != nil {
		s.logger.Debug("failed to invalidate capacity cache", zap.Error(err))
	}
}

// ReserveSlot atomically claims one seat for the event via a conditional
// increment on its counter document. Returns false when the event is full.
// Only used in strict capacity mode; the relaxed mode keeps the original
// advisory-only behavior and its documented last-slot race.
func (s *CapacityService) ReserveSlot(ctx context.Context, eventoID primitive.ObjectID, limit int) (bool, error) {
	collection := config.MongoDB.Collection(config.AppConfig.CapacityCollection)

	// Counter document is created lazily at zero
	_, err := collection.UpdateOne(ctx,
		bson.M{"_id": eventoID},
		bson.M{"$setOnInsert": bson.M{"seats": 0}},
		options.Update().SetUpsert(true),
	)
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return false, fmt.Errorf("failed to init capacity counter: %w", err)
	}

	res := collection.FindOneAndUpdate(ctx,
		bson.M{"_id": eventoID, "seats": bson.M{"$lt": limit}},
		bson.M{"$inc": bson.M{"seats": 1}},
	)
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to reserve slot: %w", err)
	}

	return true, nil
}

// ReleaseSlot undoes a reservation after a failed pipeline step
func (s *CapacityService) ReleaseSlot(ctx context.Context, eventoID primitive.ObjectID) {
	collection := config.MongoDB.Collection(config.AppConfig.CapacityCollection)

	_, err := collection.UpdateOne(ctx,
		bson.M{"_id": eventoID, "seats": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"seats": -1}},
	)
	if err != nil {
		s.logger.Error("failed to release reserved slot",
			zap.String("evento_id", eventoID.Hex()),
			zap.Error(err))
	}
}
