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

// UpdateInscricaoStatus godoc
// @Summary Atualizar status de inscrição
// @Description Transição de status executada pela equipe (COORD, CONCELHO ou ADMIN). Qualquer status alcança qualquer outro; reaplicar o status atual é um no-op de sucesso. A promoção da lista de espera é uma ação manual usando esta mesma operação.
// @Tags inscricao
// @Accept json
// @Produce json
// @Param body body models.UpdateStatusRequest true "Inscrição e novo status"
// @Security BearerAuth
// @Success 200 {object} SuccessResponse "Status atualizado"
// @Failure 400 {object} ErrorResponse "Status ou ID inválido"
// @Failure 401 {object} ErrorResponse "Token de autenticação não fornecido ou inválido"
// @Failure 403 {object} ErrorResponse "Acesso restrito à equipe"
// @Failure 404 {object} ErrorResponse "Inscrição não encontrada"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /inscricoes/status [patch]
func UpdateInscricaoStatus(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdateInscricaoStatus")
	defer span.End()

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "payload inválido: inscricaoId e status são obrigatórios"})
		return
	}

	span.SetAttributes(
		attribute.String("inscricao_id", req.InscricaoID),
		attribute.String("status", string(req.Status)),
	)

	responsavel := ""
	var roles []string
	if claims, exists := c.Get("claims"); exists {
		if jwtClaims, ok := claims.(*models.JWTClaims); ok {
			responsavel = jwtClaims.PreferredUsername
			roles = jwtClaims.RealmAccess.Roles
		}
	}

	logger := observability.Logger().With(
		zap.String("inscricao_id", req.InscricaoID),
		zap.String("responsavel", responsavel),
	)

	if services.EnrollmentServiceInstance == nil {
		logger.Error("enrollment service not initialized")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Serviço de inscrições indisponível"})
		return
	}

	inscricao, err := services.EnrollmentServiceInstance.UpdateStatus(ctx, req, responsavel, roles)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrStatusInvalido), errors.Is(err, models.ErrInvalidInscricaoID):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, models.ErrInscricaoNaoEncontrada):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("failed to update enrollment status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "erro ao atualizar status"})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "status atualizado com sucesso",
		Data:    inscricao,
	})
}
