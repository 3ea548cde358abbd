package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusInscricao is the enrollment lifecycle status
type StatusInscricao string

// Enrollment statuses. Every status is reachable from every other by staff
// action; there is no forward-only constraint. Inativo represents soft
// removal — enrollments are never hard-deleted.
const (
	StatusPendente   StatusInscricao = "pendente"
	StatusConfirmada StatusInscricao = "confirmada"
	StatusCancelada  StatusInscricao = "cancelada"
	StatusInativo    StatusInscricao = "inativo"
)

// ValidStatusInscricao reports whether the value belongs to the status enum
func ValidStatusInscricao(s StatusInscricao) bool {
	switch s {
	case StatusPendente, StatusConfirmada, StatusCancelada, StatusInativo:
		return true
	}
	return false
}

// Event-type tags recorded in dados_adicionais
const (
	TipoEventoAcampamento            = "acampamento"
	TipoEventoAcampamentoListaEspera = "acampamento_lista_espera"
)

// Comprovante holds the stored proof-of-payment blob metadata
type Comprovante struct {
	URL          string `bson:"url" json:"url"`
	NomeOriginal string `bson:"nome_original" json:"nome_original"`
	TipoConteudo string `bson:"tipo_conteudo" json:"tipo_conteudo"`
	TamanhoBytes int64  `bson:"tamanho_bytes" json:"tamanho_bytes"`
}

// ProofUpload is an in-memory proof-of-payment file received from the
// registration wizard, before it is stored
type ProofUpload struct {
	NomeOriginal string
	TipoConteudo string
	TamanhoBytes int64
	Conteudo     []byte
}

// DadosAdicionais captures submission context on the enrollment record
type DadosAdicionais struct {
	EnviadoEm     time.Time `bson:"enviado_em" json:"enviado_em"`
	TipoEvento    string    `bson:"tipo_evento" json:"tipo_evento"`
	IsListaEspera bool      `bson:"is_lista_espera" json:"is_lista_espera"`
}

// Inscricao links one applicant to one event. At most one per (user, event)
// pair, enforced by a unique compound index. Status and the waitlist flag are
// independent: a waitlist enrollment can be confirmed once a slot frees up.
type Inscricao struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"user_id" json:"user_id"`
	EventoID        primitive.ObjectID `bson:"evento_id" json:"evento_id"`
	Status          StatusInscricao    `bson:"status" json:"status"`
	Frente          Frente             `bson:"frente" json:"frente"`
	Comprovante     *Comprovante       `bson:"comprovante,omitempty" json:"comprovante,omitempty"`
	Observacoes     string             `bson:"observacoes,omitempty" json:"observacoes,omitempty"`
	ValorPagamento  *float64           `bson:"valor_pagamento,omitempty" json:"valor_pagamento,omitempty"`
	FormaPagamento  string             `bson:"forma_pagamento,omitempty" json:"forma_pagamento,omitempty"`
	IsListaEspera   bool               `bson:"is_lista_espera" json:"is_lista_espera"`
	DadosAdicionais DadosAdicionais    `bson:"dados_adicionais" json:"dados_adicionais"`
	DataConfirmacao *time.Time         `bson:"data_confirmacao,omitempty" json:"data_confirmacao,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

// UpdateStatusRequest is the staff transition payload
type UpdateStatusRequest struct {
	InscricaoID string          `json:"inscricaoId" binding:"required"`
	Status      StatusInscricao `json:"status" binding:"required"`
	Observacoes string          `json:"observacoes,omitempty"`
}

// PaginatedInscricoes is a paginated staff listing of enrollments
type PaginatedInscricoes struct {
	Data       []Inscricao `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		PerPage    int `json:"per_page"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
}
