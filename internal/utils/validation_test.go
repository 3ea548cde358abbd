package utils

import (
	"strings"
	"testing"

	"github.com/comunidadevida/acampamento-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func validInput() models.RegistrationInput {
	return models.RegistrationInput{
		EventoID:                  "64f0c2a5b3e4d5a6f7b8c9d0",
		Email:                     "joao.silva@example.com",
		CPF:                       "529.982.247-25",
		Senha:                     "segredo123",
		ConfirmarSenha:            "segredo123",
		Nome:                      "João da Silva",
		DataNascimento:            "1995-05-20",
		EstadoCivil:               models.EstadoCivilSolteiro,
		TamanhoCamisa:             models.CamisaM,
		Telefone:                  "+5521987654321",
		ContatoEmergenciaNome:     "Maria da Silva",
		ContatoEmergenciaTelefone: "21987654321",
		Cidade:                    "Rio de Janeiro",
		Consentimentos: models.Consentimentos{
			TermoAptidaoFisica:    true,
			TermoConduta:          true,
			AutorizacaoImagemNome: true,
		},
	}
}

func fieldsWithErrors(result *ValidationResult) []string {
	fields := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidateRegistration_Valid(t *testing.T) {
	result := ValidateRegistration(validInput())
	assert.True(t, result.IsValid, "expected valid input, got errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
}

func TestValidateRegistration_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.RegistrationInput)
		wantField string
	}{
		{
			name:      "missing evento_id",
			mutate:    func(in *models.RegistrationInput) { in.EventoID = "  " },
			wantField: "evento_id",
		},
		{
			name:      "missing nome",
			mutate:    func(in *models.RegistrationInput) { in.Nome = "" },
			wantField: "nome",
		},
		{
			name:      "missing cidade",
			mutate:    func(in *models.RegistrationInput) { in.Cidade = "" },
			wantField: "cidade",
		},
		{
			name:      "missing emergency contact name",
			mutate:    func(in *models.RegistrationInput) { in.ContatoEmergenciaNome = "" },
			wantField: "contato_emergencia_nome",
		},
		{
			name:      "missing email",
			mutate:    func(in *models.RegistrationInput) { in.Email = "" },
			wantField: "email",
		},
		{
			name:      "malformed email",
			mutate:    func(in *models.RegistrationInput) { in.Email = "joao.silva" },
			wantField: "email",
		},
		{
			name:      "missing cpf",
			mutate:    func(in *models.RegistrationInput) { in.CPF = "" },
			wantField: "cpf",
		},
		{
			name:      "cpf with no digits",
			mutate:    func(in *models.RegistrationInput) { in.CPF = "..-" },
			wantField: "cpf",
		},
		{
			name:      "short password",
			mutate:    func(in *models.RegistrationInput) { in.Senha = "abc"; in.ConfirmarSenha = "abc" },
			wantField: "senha",
		},
		{
			name:      "password mismatch",
			mutate:    func(in *models.RegistrationInput) { in.ConfirmarSenha = "diferente" },
			wantField: "confirmar_senha",
		},
		{
			name:      "missing birth date",
			mutate:    func(in *models.RegistrationInput) { in.DataNascimento = "" },
			wantField: "data_nascimento",
		},
		{
			name:      "malformed birth date",
			mutate:    func(in *models.RegistrationInput) { in.DataNascimento = "20/05/1995" },
			wantField: "data_nascimento",
		},
		{
			name:      "invalid estado civil",
			mutate:    func(in *models.RegistrationInput) { in.EstadoCivil = "namorando" },
			wantField: "estado_civil",
		},
		{
			name:      "invalid shirt size",
			mutate:    func(in *models.RegistrationInput) { in.TamanhoCamisa = "XXG" },
			wantField: "tamanho_camisa",
		},
		{
			name:      "invalid phone",
			mutate:    func(in *models.RegistrationInput) { in.Telefone = "123" },
			wantField: "telefone",
		},
		{
			name:      "invalid emergency phone",
			mutate:    func(in *models.RegistrationInput) { in.ContatoEmergenciaTelefone = "" },
			wantField: "contato_emergencia_telefone",
		},
		{
			name: "chronic illness declared without description",
			mutate: func(in *models.RegistrationInput) {
				in.Saude.PossuiDoencaCronica = true
				in.Saude.DoencaCronica = "  "
			},
			wantField: "saude.doenca_cronica",
		},
		{
			name: "consent missing",
			mutate: func(in *models.RegistrationInput) {
				in.Consentimentos.TermoConduta = false
			},
			wantField: "consentimentos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			result := ValidateRegistration(input)
			assert.False(t, result.IsValid)
			assert.Contains(t, fieldsWithErrors(result), tt.wantField)
		})
	}
}

func TestValidateRegistration_CPFAcceptedAsGiven(t *testing.T) {
	// CPF is stored and compared as given; check digits are not enforced
	// on submission.
	cpfs := []string{"111", "12345678900", "000", "529.982.247-25"}

	for _, cpf := range cpfs {
		t.Run(cpf, func(t *testing.T) {
			input := validInput()
			input.CPF = cpf

			result := ValidateRegistration(input)
			assert.True(t, result.IsValid, "CPF %q should pass validation, got errors: %v", cpf, result.Errors)
		})
	}
}

func TestValidateRegistration_AccumulatesErrors(t *testing.T) {
	result := ValidateRegistration(models.RegistrationInput{})
	assert.False(t, result.IsValid)
	assert.GreaterOrEqual(t, len(result.Errors), 5, "empty input should fail several fields")
}

func TestValidateComprovante(t *testing.T) {
	pdf := &models.ProofUpload{
		NomeOriginal: "comprovante.pdf",
		TipoConteudo: "application/pdf",
		TamanhoBytes: 1024,
		Conteudo:     []byte("%PDF-1.4"),
	}

	t.Run("valid pdf", func(t *testing.T) {
		assert.NoError(t, ValidateComprovante(pdf, false))
	})

	t.Run("valid image", func(t *testing.T) {
		img := &models.ProofUpload{
			NomeOriginal: "comprovante.jpg",
			TipoConteudo: "image/jpeg",
			TamanhoBytes: 2048,
			Conteudo:     []byte{0xFF, 0xD8},
		}
		assert.NoError(t, ValidateComprovante(img, false))
	})

	t.Run("waitlist skips all checks", func(t *testing.T) {
		assert.NoError(t, ValidateComprovante(nil, true))

		oversized := &models.ProofUpload{
			TipoConteudo: "text/plain",
			TamanhoBytes: MaxComprovanteBytes + 1,
			Conteudo:     []byte("x"),
		}
		assert.NoError(t, ValidateComprovante(oversized, true))
	})

	t.Run("missing file", func(t *testing.T) {
		err := ValidateComprovante(nil, false)
		assert.ErrorIs(t, err, models.ErrComprovanteObrigatorio)
	})

	t.Run("empty content", func(t *testing.T) {
		empty := &models.ProofUpload{TipoConteudo: "application/pdf"}
		err := ValidateComprovante(empty, false)
		assert.ErrorIs(t, err, models.ErrComprovanteObrigatorio)
	})

	t.Run("unsupported format", func(t *testing.T) {
		doc := &models.ProofUpload{
			NomeOriginal: "comprovante.docx",
			TipoConteudo: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			TamanhoBytes: 1024,
			Conteudo:     []byte("PK"),
		}
		err := ValidateComprovante(doc, false)
		assert.ErrorIs(t, err, models.ErrComprovanteFormato)
	})

	t.Run("oversized file", func(t *testing.T) {
		big := &models.ProofUpload{
			NomeOriginal: "comprovante.pdf",
			TipoConteudo: "application/pdf",
			TamanhoBytes: MaxComprovanteBytes + 1,
			Conteudo:     []byte(strings.Repeat("x", 8)),
		}
		err := ValidateComprovante(big, false)
		assert.ErrorIs(t, err, models.ErrComprovanteTamanho)
	})
}
