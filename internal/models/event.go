package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event status values
const (
	EventoAtivo   = "ativo"
	EventoInativo = "inativo"
)

// Event is a capacity-limited multi-day event. Read-only input for this
// service; creation and editing of event metadata happen elsewhere.
type Event struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Titulo           string             `bson:"titulo" json:"titulo"`
	Status           string             `bson:"status" json:"status"`
	MaxParticipantes int                `bson:"max_participants,omitempty" json:"max_participants,omitempty"`
	Local            string             `bson:"local,omitempty" json:"local,omitempty"`
	DataInicio       *time.Time         `bson:"data_inicio,omitempty" json:"data_inicio,omitempty"`
	DataFim          *time.Time         `bson:"data_fim,omitempty" json:"data_fim,omitempty"`
}

// HasLimit reports whether the event has a configured capacity limit.
// Events without a positive max_participants are never full.
func (e *Event) HasLimit() bool {
	return e.MaxParticipantes > 0
}

// CapacityStatus is the CapacityGate decision exposed to the display layer
type CapacityStatus struct {
	Success         bool `json:"success"`
	TotalInscricoes int  `json:"totalInscricoes"`
	IsLotado        bool `json:"isLotado"`
	Limite          int  `json:"limite"`
}
