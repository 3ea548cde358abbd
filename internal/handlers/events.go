package handlers

import (
	"errors"
	"net/http"

	"github.com/comunidadevida/acampamento-api/internal/models"
	"github.com/comunidadevida/acampamento-api/internal/observability"
	"github.com/comunidadevida/acampamento-api/internal/services"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// GetEvent godoc
// @Summary Obter evento
// @Description Recupera os metadados de um evento para o assistente de inscrição.
// @Tags evento
// @Produce json
// @Param id path string true "ID do evento"
// @Success 200 {object} models.Event
// @Failure 400 {object} ErrorResponse "ID de evento inválido"
// @Failure 404 {object} ErrorResponse "Evento não encontrado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /eventos/{id} [get]
func GetEvent(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetEvent")
	defer span.End()

	eventoID := c.Param("id")
	span.SetAttributes(attribute.String("evento_id", eventoID))

	if services.CapacityServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Serviço de eventos indisponível"})
		return
	}

	evento, err := services.CapacityServiceInstance.GetEvent(ctx, eventoID)
	if err != nil {
		respondEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, evento)
}

// GetEventCapacity godoc
// @Summary Consultar vagas do evento
// @Description Calcula a decisão de lotação do evento. Inscrições pendentes contam para a lotação, pois o comprovante ainda está em análise. A decisão é consultiva: o assistente de inscrição usa isLotado para direcionar o candidato à lista de espera.
// @Tags evento
// @Produce json
// @Param id path string true "ID do evento"
// @Success 200 {object} models.CapacityStatus
// @Failure 400 {object} ErrorResponse "ID de evento inválido"
// @Failure 404 {object} ErrorResponse "Evento não encontrado"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /eventos/{id}/vagas [get]
func GetEventCapacity(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetEventCapacity")
	defer span.End()

	eventoID := c.Param("id")
	logger := observability.Logger().With(zap.String("evento_id", eventoID))
	span.SetAttributes(attribute.String("evento_id", eventoID))

	if services.CapacityServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Serviço de eventos indisponível"})
		return
	}

	evento, err := services.CapacityServiceInstance.GetEvent(ctx, eventoID)
	if err != nil {
		respondEventError(c, err)
		return
	}

	status, err := services.CapacityServiceInstance.CheckCapacity(ctx, evento)
	if err != nil {
		logger.Error("failed to check capacity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "erro ao consultar vagas"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// ListEventInscricoes godoc
// @Summary Listar inscrições do evento
// @Description Lista paginada das inscrições de um evento para moderação, ordenada por data de criação (a ordem da lista de espera). Filtros opcionais por status e lista de espera.
// @Tags inscricao
// @Produce json
// @Param id path string true "ID do evento"
// @Param status query string false "Filtrar por status (pendente, confirmada, cancelada, inativo)"
// @Param lista_espera query bool false "Filtrar por lista de espera"
// @Param page query int false "Número da página (padrão: 1)" minimum(1)
// @Param per_page query int false "Itens por página (padrão: 10, máximo: 100)" minimum(1) maximum(100)
// @Security BearerAuth
// @Success 200 {object} models.PaginatedInscricoes
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 403 {object} ErrorResponse "Acesso restrito à equipe"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /eventos/{id}/inscricoes [get]
func ListEventInscricoes(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListEventInscricoes")
	defer span.End()

	eventoID := c.Param("id")
	logger := observability.Logger().With(zap.String("evento_id", eventoID))

	page, perPage, err := services.ValidatePaginationParams(c.Query("page"), c.Query("per_page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	filter := services.ListFilter{
		Status: models.StatusInscricao(c.Query("status")),
	}
	if raw, ok := c.GetQuery("lista_espera"); ok {
		listaEspera := raw == "true"
		filter.IsListaEspera = &listaEspera
	}

	if services.EnrollmentServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Serviço de inscrições indisponível"})
		return
	}

	result, err := services.EnrollmentServiceInstance.ListByEvent(ctx, eventoID, filter, page, perPage)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidEventID), errors.Is(err, models.ErrStatusInvalido):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("failed to list enrollments", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "erro ao listar inscrições"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func respondEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidEventID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrEventoNaoEncontrado):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		observability.Logger().Error("failed to get event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "erro ao consultar evento"})
	}
}
