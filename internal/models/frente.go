package models

import "strings"

// Frente is the canonical work-assignment tag of an enrollment
type Frente string

// Canonical frente tags. Campista is the generic attendee role and the
// fallback for any input that does not match the synonym table.
const (
	FrenteCampista          Frente = "campista"
	FrenteAnjoNoturno       Frente = "anjonoturno"
	FrenteAnimacao          Frente = "animacao"
	FrenteAssessores        Frente = "assessores"
	FrenteCoordenacao       Frente = "coordenacao"
	FrenteCozinha           Frente = "cozinha"
	FrenteEstrutura         Frente = "estrutura"
	FrenteExterna           Frente = "externa"
	FrenteIntercessao       Frente = "intercessao"
	FrenteMusicaEAnimacao   Frente = "musicaEanimacao"
	FrentePrimeirosSocorros Frente = "primeiros_socorros"
)

// frenteSynonyms maps normalized (lowercased, whitespace-stripped) input to
// canonical tags. Canonical tags map to themselves so the lookup is total
// over known values.
var frenteSynonyms = map[string]Frente{
	"campista":           FrenteCampista,
	"anjonoturno":        FrenteAnjoNoturno,
	"anjosnoturnos":      FrenteAnjoNoturno,
	"animacao":           FrenteAnimacao,
	"animação":           FrenteAnimacao,
	"assessores":         FrenteAssessores,
	"assessor":           FrenteAssessores,
	"assessoria":         FrenteAssessores,
	"coordenacao":        FrenteCoordenacao,
	"coordenação":        FrenteCoordenacao,
	"coordenador":        FrenteCoordenacao,
	"cozinha":            FrenteCozinha,
	"cozinheiro":         FrenteCozinha,
	"cozinheira":         FrenteCozinha,
	"estrutura":          FrenteEstrutura,
	"externa":            FrenteExterna,
	"equipeexterna":      FrenteExterna,
	"intercessao":        FrenteIntercessao,
	"intercessão":        FrenteIntercessao,
	"intercessor":        FrenteIntercessao,
	"musicaeanimacao":    FrenteMusicaEAnimacao,
	"músicaeanimação":    FrenteMusicaEAnimacao,
	"musicaeanimação":    FrenteMusicaEAnimacao,
	"musica":             FrenteMusicaEAnimacao,
	"música":             FrenteMusicaEAnimacao,
	"primeiros_socorros": FrentePrimeirosSocorros,
	"primeirossocorros":  FrentePrimeirosSocorros,
	"enfermagem":         FrentePrimeirosSocorros,
	"saude":              FrentePrimeirosSocorros,
	"saúde":              FrentePrimeirosSocorros,
}

// NormalizeFrente maps free-form role text to a canonical frente tag.
// Unmatched input falls back to campista; the field is optional context,
// not a hard commitment, so there is no error path.
func NormalizeFrente(raw string) Frente {
	key := strings.ToLower(raw)
	key = strings.Join(strings.Fields(key), "")
	if frente, ok := frenteSynonyms[key]; ok {
		return frente
	}
	return FrenteCampista
}
