package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusAuditLog records one staff-initiated status transition
type StatusAuditLog struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	InscricaoID    primitive.ObjectID `bson:"inscricao_id" json:"inscricao_id"`
	StatusAnterior StatusInscricao    `bson:"status_anterior" json:"status_anterior"`
	StatusNovo     StatusInscricao    `bson:"status_novo" json:"status_novo"`
	Responsavel    string             `bson:"responsavel" json:"responsavel"`
	Roles          []string           `bson:"roles,omitempty" json:"roles,omitempty"`
	Timestamp      time.Time          `bson:"timestamp" json:"timestamp"`
}
