package models

import "errors"

// Error constants for registration and enrollment operations
var (
	ErrEmailJaCadastrado      = errors.New("email já cadastrado")
	ErrCPFJaCadastrado        = errors.New("CPF já cadastrado")
	ErrInscricaoJaExiste      = errors.New("inscrição já existe para este evento")
	ErrEventoNaoEncontrado    = errors.New("evento não encontrado")
	ErrEventoLotado           = errors.New("evento lotado")
	ErrInscricaoNaoEncontrada = errors.New("inscrição não encontrada")
	ErrStatusInvalido         = errors.New("status de inscrição inválido")
	ErrComprovanteObrigatorio = errors.New("comprovante de pagamento obrigatório")
	ErrComprovanteFormato     = errors.New("comprovante deve ser imagem ou PDF")
	ErrComprovanteTamanho     = errors.New("comprovante excede o tamanho máximo de 10MB")
	ErrInvalidEventID         = errors.New("ID de evento inválido")
	ErrInvalidInscricaoID     = errors.New("ID de inscrição inválido")
)
