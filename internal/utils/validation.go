package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/comunidadevida/acampamento-api/internal/models"
)

// MaxComprovanteBytes is the upload size limit for proof-of-payment files
const MaxComprovanteBytes = 10 << 20 // 10 MB

// MinSenhaLength is the minimum accepted password length
const MinSenhaLength = 6

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// ValidateRegistration validates the applicant payload of a registration
// submission. Every failure carries the offending field so the wizard can
// highlight it.
func ValidateRegistration(input models.RegistrationInput) *ValidationResult {
	result := NewValidationResult()

	if strings.TrimSpace(input.EventoID) == "" {
		result.AddError("evento_id", "evento_id é obrigatório")
	}
	if strings.TrimSpace(input.Nome) == "" {
		result.AddError("nome", "nome é obrigatório")
	}
	if strings.TrimSpace(input.Cidade) == "" {
		result.AddError("cidade", "cidade é obrigatória")
	}
	if strings.TrimSpace(input.ContatoEmergenciaNome) == "" {
		result.AddError("contato_emergencia_nome", "contato de emergência é obrigatório")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		result.AddError("email", "email é obrigatório")
	} else if !emailRegex.MatchString(email) {
		result.AddError("email", "email inválido")
	}

	// CPF is compared as stored; the submission path does not enforce
	// check-digit validity, only presence.
	if NormalizeCPF(input.CPF) == "" {
		result.AddError("cpf", "CPF é obrigatório")
	}

	if len(input.Senha) < MinSenhaLength {
		result.AddError("senha", "senha deve ter no mínimo 6 caracteres")
	} else if input.Senha != input.ConfirmarSenha {
		result.AddError("confirmar_senha", "senhas não conferem")
	}

	if input.DataNascimento == "" {
		result.AddError("data_nascimento", "data de nascimento é obrigatória")
	} else if _, err := time.Parse("2006-01-02", input.DataNascimento); err != nil {
		result.AddError("data_nascimento", "data de nascimento deve estar no formato AAAA-MM-DD")
	}

	if !models.ValidEstadoCivil(input.EstadoCivil) {
		result.AddError("estado_civil", "estado civil inválido")
	}
	if !models.ValidTamanhoCamisa(input.TamanhoCamisa) {
		result.AddError("tamanho_camisa", "tamanho de camisa inválido")
	}

	if _, err := NormalizePhoneNumber(input.Telefone); err != nil {
		result.AddError("telefone", "telefone inválido")
	}
	if _, err := NormalizePhoneNumber(input.ContatoEmergenciaTelefone); err != nil {
		result.AddError("contato_emergencia_telefone", "telefone de emergência inválido")
	}

	if input.Saude.PossuiDoencaCronica && strings.TrimSpace(input.Saude.DoencaCronica) == "" {
		result.AddError("saude.doenca_cronica", "descreva a condição crônica declarada")
	}

	if !input.Consentimentos.Todos() {
		result.AddError("consentimentos", "todos os termos devem ser aceitos")
	}

	return result
}

// ValidateComprovante enforces the proof-of-payment rules. Waitlist
// submissions skip the requirement and the format/size checks entirely.
func ValidateComprovante(file *models.ProofUpload, isListaEspera bool) error {
	if isListaEspera {
		return nil
	}
	if file == nil || len(file.Conteudo) == 0 {
		return models.ErrComprovanteObrigatorio
	}
	if !strings.HasPrefix(file.TipoConteudo, "image/") && file.TipoConteudo != "application/pdf" {
		return models.ErrComprovanteFormato
	}
	if file.TamanhoBytes > MaxComprovanteBytes {
		return models.ErrComprovanteTamanho
	}
	return nil
}
