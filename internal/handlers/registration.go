package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/comunidadevida/acampamento-api/internal/models"
	"github.com/comunidadevida/acampamento-api/internal/observability"
	"github.com/comunidadevida/acampamento-api/internal/services"
	"github.com/comunidadevida/acampamento-api/internal/utils"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// SubmitRegistration godoc
// @Summary Enviar inscrição para acampamento
// @Description Recebe a inscrição do formulário (parte "dados" em JSON) com comprovante de pagamento opcional (parte "comprovante"). Inscrições de lista de espera (is_lista_espera) dispensam o comprovante.
// @Tags inscricao
// @Accept multipart/form-data
// @Produce json
// @Param dados formData string true "Payload JSON da inscrição"
// @Param comprovante formData file false "Comprovante de pagamento (imagem ou PDF, máx. 10MB)"
// @Success 200 {object} SuccessResponse "Inscrição criada com sucesso"
// @Failure 400 {object} ErrorResponse "Dados inválidos ou comprovante fora das regras"
// @Failure 404 {object} ErrorResponse "Evento não encontrado"
// @Failure 409 {object} ErrorResponse "Email, CPF ou inscrição já cadastrados, ou evento lotado"
// @Failure 429 {object} ErrorResponse "Muitas requisições"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /inscricoes [post]
func SubmitRegistration(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SubmitRegistration")
	defer span.End()

	logger := observability.Logger().With(zap.String("handler", "SubmitRegistration"))

	if services.RateLimiterInstance != nil && !services.RateLimiterInstance.Allow(ctx, c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "Muitas requisições, tente novamente em instantes"})
		return
	}

	dados := c.PostForm("dados")
	if dados == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "campo dados é obrigatório"})
		return
	}

	var input models.RegistrationInput
	if err := json.Unmarshal([]byte(dados), &input); err != nil {
		logger.Debug("invalid registration payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "payload de inscrição inválido"})
		return
	}

	span.SetAttributes(
		attribute.String("evento_id", input.EventoID),
		attribute.Bool("lista_espera", input.IsListaEspera),
	)

	proof, err := readProofUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "falha ao ler comprovante"})
		return
	}

	if services.RegistrationServiceInstance == nil {
		logger.Error("registration service not initialized")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Serviço de inscrição indisponível"})
		return
	}

	inscricao, err := services.RegistrationServiceInstance.Submit(ctx, input, proof)
	if err != nil {
		respondSubmitError(c, logger, err)
		return
	}

	message := "Inscrição realizada com sucesso! Você receberá um email de confirmação."
	if inscricao.IsListaEspera {
		message = "Inscrição registrada na lista de espera! Você receberá um email de confirmação."
	}

	logger.Info("registration submitted",
		zap.String("inscricao_id", inscricao.ID.Hex()),
		zap.Bool("lista_espera", inscricao.IsListaEspera),
		zap.Duration("total_duration", time.Since(startTime)))

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: message})
}

// readProofUpload extracts the optional comprovante file part. Size and
// format rules are enforced by the pipeline, not here.
func readProofUpload(c *gin.Context) (*models.ProofUpload, error) {
	file, header, err := c.Request.FormFile("comprovante")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, utils.MaxComprovanteBytes+1))
	if err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}

	return &models.ProofUpload{
		NomeOriginal: header.Filename,
		TipoConteudo: contentType,
		TamanhoBytes: header.Size,
		Conteudo:     content,
	}, nil
}

// respondSubmitError maps pipeline errors to the HTTP error taxonomy:
// validation 400, conflict 409, not-found 404, everything else 500.
func respondSubmitError(c *gin.Context, logger *zap.Logger, err error) {
	var validation *services.ValidationFailed
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "dados de inscrição inválidos",
			Fields: validation.Result.Errors,
		})
		return
	}

	switch {
	case errors.Is(err, models.ErrComprovanteObrigatorio),
		errors.Is(err, models.ErrComprovanteFormato),
		errors.Is(err, models.ErrComprovanteTamanho),
		errors.Is(err, models.ErrInvalidEventID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrEmailJaCadastrado),
		errors.Is(err, models.ErrCPFJaCadastrado),
		errors.Is(err, models.ErrInscricaoJaExiste):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrEventoLotado):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "evento lotado, utilize a lista de espera"})
	case errors.Is(err, models.ErrEventoNaoEncontrado):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("registration pipeline failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "erro interno ao processar inscrição"})
	}
}
