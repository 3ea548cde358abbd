package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

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

// EnrollmentService governs the enrollment lifecycle after creation: the
// staff-initiated status transitions and the staff listing used for manual
// moderation and waitlist promotion.
type EnrollmentService struct {
	logger *zap.Logger
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(logger *zap.Logger) *EnrollmentService {
	return &EnrollmentService{logger: logger}
}

// UpdateStatus applies one staff transition. Every status is reachable from
// every other; re-applying the current status is a no-op success. The write
// sets `status`, `updated_at`, `data_confirmacao` on transitions into
// confirmada, and `observacoes` when the request carries coordinator notes.
func (s *EnrollmentService) UpdateStatus(ctx context.Context, req models.UpdateStatusRequest, responsavel string, roles []string) (*models.Inscricao, error) {
	if !models.ValidStatusInscricao(req.Status) {
		return nil, models.ErrStatusInvalido
	}

	objectID, err := primitive.ObjectIDFromHex(req.InscricaoID)
	if err != nil {
		return nil, models.ErrInvalidInscricaoID
	}

	collection := config.MongoDB.Collection(config.AppConfig.InscricaoCollection)

	findCtx, findSpan := utils.TraceDatabaseFind(ctx, config.AppConfig.InscricaoCollection, "_id")
	var inscricao models.Inscricao
	err = collection.FindOne(findCtx, bson.M{"_id": objectID}).Decode(&inscricao)
	findSpan.End()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrInscricaoNaoEncontrada
		}
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	// Idempotent transition: same status is a success without a write
	if inscricao.Status == req.Status {
		return &inscricao, nil
	}

	now := time.Now()
	set := bson.M{
		"status":     req.Status,
		"updated_at": now,
	}
	if req.Status == models.StatusConfirmada {
		set["data_confirmacao"] = now
	}
	if req.Observacoes != "" {
		set["observacoes"] = req.Observacoes
	}

	var updated models.Inscricao
	err = collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("update", "error").Inc()
		return nil, fmt.Errorf("failed to update enrollment status: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("update", "success").Inc()
	observability.StatusTransitions.WithLabelValues(string(req.Status)).Inc()

	s.logger.Info("enrollment status updated",
		zap.String("inscricao_id", req.InscricaoID),
		zap.String("from", string(inscricao.Status)),
		zap.String("to", string(req.Status)),
		zap.String("responsavel", responsavel))

	s.recordAudit(ctx, &models.StatusAuditLog{
		InscricaoID:    objectID,
		StatusAnterior: inscricao.Status,
		StatusNovo:     req.Status,
		Responsavel:    responsavel,
		Roles:          roles,
		Timestamp:      now,
	})

	return &updated, nil
}

// recordAudit appends the transition to the audit trail; failures are
// logged, the transition itself already committed.
func (s *EnrollmentService) recordAudit(ctx context.Context, entry *models.StatusAuditLog) {
	_, err := config.MongoDB.Collection(config.AppConfig.StatusAuditCollection).InsertOne(ctx, entry)
	if err != nil {
		s.logger.Error("failed to record status audit entry",
			zap.String("inscricao_id", entry.InscricaoID.Hex()),
			zap.Error(err))
	}
}

// ListFilter narrows the staff enrollment listing
type ListFilter struct {
	Status        models.StatusInscricao
	IsListaEspera *bool
}

// ListByEvent returns the paginated enrollments of an event, ordered by
// creation time so the waitlist keeps its fairness ordering for manual
// promotion.
func (s *EnrollmentService) ListByEvent(ctx context.Context, eventoID string, filter ListFilter, page, perPage int) (*models.PaginatedInscricoes, error) {
	objectID, err := primitive.ObjectIDFromHex(eventoID)
	if err != nil {
		return nil, models.ErrInvalidEventID
	}

	query := bson.M{"evento_id": objectID}
	if filter.Status != "" {
		if !models.ValidStatusInscricao(filter.Status) {
			return nil, models.ErrStatusInvalido
		}
		query["status"] = filter.Status
	}
	if filter.IsListaEspera != nil {
		query["is_lista_espera"] = *filter.IsListaEspera
	}

	collection := config.MongoDB.Collection(config.AppConfig.InscricaoCollection)

	total, err := collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * perPage)).
		SetLimit(int64(perPage)).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	defer cursor.Close(ctx)

	inscricoes := []models.Inscricao{}
	if err := cursor.All(ctx, &inscricoes); err != nil {
		return nil, fmt.Errorf("failed to decode enrollments: %w", err)
	}

	result := &models.PaginatedInscricoes{Data: inscricoes}
	result.Pagination.Page = page
	result.Pagination.PerPage = perPage
	result.Pagination.Total = int(total)
	result.Pagination.TotalPages = int(math.Ceil(float64(total) / float64(perPage)))

	return result, nil
}

// ValidatePaginationParams parses and bounds page/per_page query values
func ValidatePaginationParams(pageStr, perPageStr string) (int, int, error) {
	page := 1
	perPage := 10

	if pageStr != "" {
		if _, err := fmt.Sscanf(pageStr, "%d", &page); err != nil || page < 1 {
			return 0, 0, fmt.Errorf("invalid page parameter")
		}
	}
	if perPageStr != "" {
		if _, err := fmt.Sscanf(perPageStr, "%d", &perPage); err != nil || perPage < 1 || perPage > 100 {
			return 0, 0, fmt.Errorf("invalid per_page parameter")
		}
	}

	return page, perPage, nil
}
