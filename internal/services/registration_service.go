package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/comunidadevida/acampamento-api/internal/config"
	"github.com/comunidadevida/acampamento-api/internal/models"
	"github.com/comunidadevida/acampamento-api/internal/observability"
	"github.com/comunidadevida/acampamento-api/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ValidationFailed carries the field-level errors of a rejected submission
type ValidationFailed struct {
	Result *utils.ValidationResult
}

func (e *ValidationFailed) Error() string {
	return "dados de inscrição inválidos"
}

// RegistrationService orchestrates one registration submission as a single
// fail-fast unit: validation, uniqueness, event lookup, optional slot
// reservation, proof upload, user + enrollment creation and notification
// dispatch. Everything up to the enrollment insert aborts the whole attempt
// on failure; only the notification is fire-and-forget.
type RegistrationService struct {
	logger   *zap.Logger
	storage  BlobStorage
	mailer   Mailer
	capacity *CapacityService
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(logger *zap.Logger, storage BlobStorage, mailer Mailer, capacity *CapacityService) *RegistrationService {
	return &RegistrationService{
		logger:   logger,
		storage:  storage,
		mailer:   mailer,
		capacity: capacity,
	}
}

// CheckIdentityAvailable rejects the attempt when the email or the CPF is
// already registered. It runs before any write; the unique indexes on the
// users collection catch the remaining race at insert time.
func (s *RegistrationService) CheckIdentityAvailable(ctx context.Context, email, cpf string) error {
	collection := config.MongoDB.Collection(config.AppConfig.UserCollection)

	ctx, span := utils.TraceDatabaseFind(ctx, config.AppConfig.UserCollection, "email|cpf")
	defer span.End()

	err := collection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return models.ErrEmailJaCadastrado
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	err = collection.FindOne(ctx, bson.M{"cpf": cpf}).Err()
	if err == nil {
		return models.ErrCPFJaCadastrado
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to check CPF uniqueness: %w", err)
	}

	return nil
}

// Submit runs the registration pipeline and returns the created enrollment.
// A waitlist submission (input.IsListaEspera) skips the proof-of-payment
// requirement and the capacity reservation.
func (s *RegistrationService) Submit(ctx context.Context, input models.RegistrationInput, proof *models.ProofUpload) (*models.Inscricao, error) {
	logger := s.logger.With(
		zap.String("cpf", observability.MaskCPF(utils.NormalizeCPF(input.CPF))),
		zap.Bool("lista_espera", input.IsListaEspera),
	)

	// Step 1: field validation
	if vr := utils.ValidateRegistration(input); !vr.IsValid {
		observability.Registrations.WithLabelValues("validation_error", listaEsperaLabel(input.IsListaEspera)).Inc()
		return nil, &ValidationFailed{Result: vr}
	}

	// Step 2: proof-of-payment rules
	if err := utils.ValidateComprovante(proof, input.IsListaEspera); err != nil {
		observability.Registrations.WithLabelValues("validation_error", listaEsperaLabel(input.IsListaEspera)).Inc()
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	cpf := utils.NormalizeCPF(input.CPF)
	telefone, _ := utils.NormalizePhoneNumber(input.Telefone)
	telefoneEmergencia, _ := utils.NormalizePhoneNumber(input.ContatoEmergenciaTelefone)

	// Step 3: identity uniqueness
	if err := s.CheckIdentityAvailable(ctx, email, cpf); err != nil {
		if errors.Is(err, models.ErrEmailJaCadastrado) || errors.Is(err, models.ErrCPFJaCadastrado) {
			observability.Registrations.WithLabelValues("conflict", listaEsperaLabel(input.IsListaEspera)).Inc()
		}
		return nil, err
	}

	// Step 4: event existence
	evento, err := s.capacity.GetEvent(ctx, input.EventoID)
	if err != nil {
		return nil, err
	}

	// Step 5: atomic slot reservation (strict mode only, never for waitlist)
	reserved := false
	if config.AppConfig.CapacityStrictMode && !input.IsListaEspera && evento.HasLimit() {
		ok, err := s.capacity.ReserveSlot(ctx, evento.ID, evento.MaxParticipantes)
		if err != nil {
			return nil, err
		}
		if !ok {
			observability.Registrations.WithLabelValues("lotado", listaEsperaLabel(input.IsListaEspera)).Inc()
			return nil, models.ErrEventoLotado
		}
		reserved = true
	}
	defer func() {
		if reserved {
			s.capacity.ReleaseSlot(ctx, evento.ID)
		}
	}()

	now := time.Now()

	// Step 6: proof upload. A storage failure aborts the pipeline before
	// any record is written.
	var comprovante *models.Comprovante
	if proof != nil && len(proof.Conteudo) > 0 {
		key := utils.BuildComprovanteKey(evento.Titulo, input.Nome, proof.NomeOriginal, now)
		url, err := s.storage.Put(ctx, key, proof.Conteudo, proof.TipoConteudo)
		if err != nil {
			logger.Error("proof upload failed, aborting registration", zap.Error(err))
			observability.Registrations.WithLabelValues("storage_error", listaEsperaLabel(input.IsListaEspera)).Inc()
			return nil, fmt.Errorf("failed to store comprovante: %w", err)
		}
		comprovante = &models.Comprovante{
			URL:          url,
			NomeOriginal: proof.NomeOriginal,
			TipoConteudo: proof.TipoConteudo,
			TamanhoBytes: proof.TamanhoBytes,
		}
	}

	// Step 7: password hashing. The plaintext never leaves this scope.
	senhaHash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:                     email,
		CPF:                       cpf,
		SenhaHash:                 string(senhaHash),
		Nome:                      strings.TrimSpace(input.Nome),
		DataNascimento:            input.DataNascimento,
		EstadoCivil:               input.EstadoCivil,
		TamanhoCamisa:             input.TamanhoCamisa,
		Profissao:                 input.Profissao,
		Telefone:                  telefone,
		ContatoEmergenciaNome:     input.ContatoEmergenciaNome,
		ContatoEmergenciaTelefone: telefoneEmergencia,
		Cidade:                    input.Cidade,
		Saude:                     input.Saude,
		Consentimentos:            input.Consentimentos,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}

	// Step 8: create user
	userCtx, userSpan := utils.TraceDatabaseInsert(ctx, config.AppConfig.UserCollection)
	userResult, err := config.MongoDB.Collection(config.AppConfig.UserCollection).InsertOne(userCtx, user)
	userSpan.End()
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("insert", "error").Inc()
		if mongo.IsDuplicateKeyError(err) {
			observability.Registrations.WithLabelValues("conflict", listaEsperaLabel(input.IsListaEspera)).Inc()
			return nil, duplicateUserError(err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = userResult.InsertedID.(primitive.ObjectID)

	tipoEvento := models.TipoEventoAcampamento
	if input.IsListaEspera {
		tipoEvento = models.TipoEventoAcampamentoListaEspera
	}

	inscricao := &models.Inscricao{
		UserID:         user.ID,
		EventoID:       evento.ID,
		Status:         models.StatusPendente,
		Frente:         models.NormalizeFrente(input.Frente),
		Comprovante:    comprovante,
		ValorPagamento: input.ValorPagamento,
		FormaPagamento: input.FormaPagamento,
		IsListaEspera:  input.IsListaEspera,
		DadosAdicionais: models.DadosAdicionais{
			EnviadoEm:     now,
			TipoEvento:    tipoEvento,
			IsListaEspera: input.IsListaEspera,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Step 9: create enrollment
	insCtx, insSpan := utils.TraceDatabaseInsert(ctx, config.AppConfig.InscricaoCollection)
	insResult, err := config.MongoDB.Collection(config.AppConfig.InscricaoCollection).InsertOne(insCtx, inscricao)
	insSpan.End()
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("insert", "error").Inc()
		if mongo.IsDuplicateKeyError(err) {
			observability.Registrations.WithLabelValues("conflict", listaEsperaLabel(input.IsListaEspera)).Inc()
			return nil, models.ErrInscricaoJaExiste
		}
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}
	inscricao.ID = insResult.InsertedID.(primitive.ObjectID)
	observability.DatabaseOperations.WithLabelValues("insert", "success").Inc()

	// Pipeline succeeded; the reservation is consumed by the enrollment row
	reserved = false

	s.capacity.InvalidateCount(ctx, evento.ID)

	observability.Registrations.WithLabelValues("success", listaEsperaLabel(input.IsListaEspera)).Inc()
	logger.Info("registration created",
		zap.String("inscricao_id", inscricao.ID.Hex()),
		zap.String("evento_id", evento.ID.Hex()),
		zap.String("frente", string(inscricao.Frente)))

	// Step 10: fire-and-forget confirmation email. The response to the
	// applicant never waits on (or reflects) the delivery outcome.
	go s.notify(user, evento, inscricao)

	return inscricao, nil
}

// notify sends the confirmation email on its own context; failures are
// logged and counted, never surfaced.
func (s *RegistrationService) notify(user *models.User, evento *models.Event, inscricao *models.Inscricao) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	data := ConfirmationData{
		Nome:          user.Nome,
		EventoTitulo:  evento.Titulo,
		Frente:        string(inscricao.Frente),
		IsListaEspera: inscricao.IsListaEspera,
		EnviadoEm:     inscricao.DadosAdicionais.EnviadoEm.Format("02/01/2006 15:04"),
	}

	if err := s.mailer.SendConfirmation(ctx, user.Email, data); err != nil {
		observability.EmailNotifications.WithLabelValues("error").Inc()
		s.logger.Error("failed to send confirmation email",
			zap.String("email", observability.MaskEmail(user.Email)),
			zap.String("inscricao_id", inscricao.ID.Hex()),
			zap.Error(err))
		return
	}

	observability.EmailNotifications.WithLabelValues("success").Inc()
}

// duplicateUserError maps a duplicate-key insert error to the conflicting
// field using the index name
func duplicateUserError(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "cpf_unique") {
		return models.ErrCPFJaCadastrado
	}
	return models.ErrEmailJaCadastrado
}

func listaEsperaLabel(isListaEspera bool) string {
	if isListaEspera {
		return "true"
	}
	return "false"
}
