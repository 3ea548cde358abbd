package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EstadoCivil is the marital status enum
type EstadoCivil string

const (
	EstadoCivilSolteiro     EstadoCivil = "solteiro"
	EstadoCivilCasado       EstadoCivil = "casado"
	EstadoCivilDivorciado   EstadoCivil = "divorciado"
	EstadoCivilViuvo        EstadoCivil = "viuvo"
	EstadoCivilUniaoEstavel EstadoCivil = "uniao_estavel"
)

// ValidEstadoCivil reports whether the value belongs to the marital status enum
func ValidEstadoCivil(e EstadoCivil) bool {
	switch e {
	case EstadoCivilSolteiro, EstadoCivilCasado, EstadoCivilDivorciado,
		EstadoCivilViuvo, EstadoCivilUniaoEstavel:
		return true
	}
	return false
}

// TamanhoCamisa is the shirt size enum
type TamanhoCamisa string

const (
	CamisaPP  TamanhoCamisa = "PP"
	CamisaP   TamanhoCamisa = "P"
	CamisaM   TamanhoCamisa = "M"
	CamisaG   TamanhoCamisa = "G"
	CamisaGG  TamanhoCamisa = "GG"
	CamisaXGG TamanhoCamisa = "XGG"
)

// ValidTamanhoCamisa reports whether the value belongs to the shirt size enum
func ValidTamanhoCamisa(t TamanhoCamisa) bool {
	switch t {
	case CamisaPP, CamisaP, CamisaM, CamisaG, CamisaGG, CamisaXGG:
		return true
	}
	return false
}

// DadosSaude holds the health declaration of an applicant
type DadosSaude struct {
	PossuiDoencaCronica bool   `bson:"possui_doenca_cronica" json:"possui_doenca_cronica"`
	DoencaCronica       string `bson:"doenca_cronica,omitempty" json:"doenca_cronica,omitempty"`
	Alergias            string `bson:"alergias,omitempty" json:"alergias,omitempty"`
	MedicacaoContinua   string `bson:"medicacao_continua,omitempty" json:"medicacao_continua,omitempty"`
	RestricaoAlimentar  string `bson:"restricao_alimentar,omitempty" json:"restricao_alimentar,omitempty"`
	PlanoSaude          string `bson:"plano_saude,omitempty" json:"plano_saude,omitempty"`
	NumeroApolice       string `bson:"numero_apolice,omitempty" json:"numero_apolice,omitempty"`
}

// Consentimentos holds the three independent consent flags. All three must
// be true before an enrollment can be created.
type Consentimentos struct {
	TermoAptidaoFisica    bool `bson:"termo_aptidao_fisica" json:"termo_aptidao_fisica"`
	TermoConduta          bool `bson:"termo_conduta" json:"termo_conduta"`
	AutorizacaoImagemNome bool `bson:"autorizacao_imagem_nome" json:"autorizacao_imagem_nome"`
}

// Todos reports whether every consent flag was accepted
func (c Consentimentos) Todos() bool {
	return c.TermoAptidaoFisica && c.TermoConduta && c.AutorizacaoImagemNome
}

// User is the persisted applicant record. Created exactly once per unique
// (email, cpf) pair and never deleted by this service. Email is stored
// lowercased and CPF digits-only.
type User struct {
	ID                        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email                     string             `bson:"email" json:"email"`
	CPF                       string             `bson:"cpf" json:"cpf"`
	SenhaHash                 string             `bson:"senha_hash" json:"-"`
	Nome                      string             `bson:"nome" json:"nome"`
	DataNascimento            string             `bson:"data_nascimento" json:"data_nascimento"`
	EstadoCivil               EstadoCivil        `bson:"estado_civil" json:"estado_civil"`
	TamanhoCamisa             TamanhoCamisa      `bson:"tamanho_camisa" json:"tamanho_camisa"`
	Profissao                 string             `bson:"profissao,omitempty" json:"profissao,omitempty"`
	Telefone                  string             `bson:"telefone" json:"telefone"`
	ContatoEmergenciaNome     string             `bson:"contato_emergencia_nome" json:"contato_emergencia_nome"`
	ContatoEmergenciaTelefone string             `bson:"contato_emergencia_telefone" json:"contato_emergencia_telefone"`
	Cidade                    string             `bson:"cidade" json:"cidade"`
	Saude                     DadosSaude         `bson:"saude" json:"saude"`
	Consentimentos            Consentimentos     `bson:"consentimentos" json:"consentimentos"`
	CreatedAt                 time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt                 time.Time          `bson:"updated_at" json:"updated_at"`
}

// RegistrationInput is the applicant payload of the registration wizard,
// carried as the "dados" JSON part of the multipart submission.
type RegistrationInput struct {
	EventoID                  string         `json:"evento_id"`
	Email                     string         `json:"email"`
	CPF                       string         `json:"cpf"`
	Senha                     string         `json:"senha"`
	ConfirmarSenha            string         `json:"confirmar_senha"`
	Nome                      string         `json:"nome"`
	DataNascimento            string         `json:"data_nascimento"`
	EstadoCivil               EstadoCivil    `json:"estado_civil"`
	TamanhoCamisa             TamanhoCamisa  `json:"tamanho_camisa"`
	Profissao                 string         `json:"profissao"`
	Telefone                  string         `json:"telefone"`
	ContatoEmergenciaNome     string         `json:"contato_emergencia_nome"`
	ContatoEmergenciaTelefone string         `json:"contato_emergencia_telefone"`
	Cidade                    string         `json:"cidade"`
	Saude                     DadosSaude     `json:"saude"`
	Consentimentos            Consentimentos `json:"consentimentos"`
	Frente                    string         `json:"frente"`
	ValorPagamento            *float64       `json:"valor_pagamento,omitempty"`
	FormaPagamento            string         `json:"forma_pagamento,omitempty"`
	IsListaEspera             bool           `json:"is_lista_espera"`
}
