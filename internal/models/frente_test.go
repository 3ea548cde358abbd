package models

import "testing"

func TestNormalizeFrente_CanonicalTags(t *testing.T) {
	canonical := []Frente{
		FrenteCampista,
		FrenteAnjoNoturno,
		FrenteAnimacao,
		FrenteAssessores,
		FrenteCoordenacao,
		FrenteCozinha,
		FrenteEstrutura,
		FrenteExterna,
		FrenteIntercessao,
		FrenteMusicaEAnimacao,
		FrentePrimeirosSocorros,
	}

	for _, frente := range canonical {
		t.Run(string(frente), func(t *testing.T) {
			if got := NormalizeFrente(string(frente)); got != frente {
				t.Errorf("NormalizeFrente(%q) = %q, want %q", frente, got, frente)
			}
		})
	}
}

func TestNormalizeFrente_Synonyms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Frente
	}{
		{"accented animacao", "Animação", FrenteAnimacao},
		{"accented coordenacao", "Coordenação", FrenteCoordenacao},
		{"coordenador variant", "coordenador", FrenteCoordenacao},
		{"cozinheiro variant", "Cozinheiro", FrenteCozinha},
		{"cozinheira variant", "cozinheira", FrenteCozinha},
		{"assessor singular", "assessor", FrenteAssessores},
		{"assessoria variant", "assessoria", FrenteAssessores},
		{"anjo noturno with space", "Anjo Noturno", FrenteAnjoNoturno},
		{"anjos noturnos plural", "Anjos Noturnos", FrenteAnjoNoturno},
		{"intercessor variant", "intercessor", FrenteIntercessao},
		{"accented intercessao", "Intercessão", FrenteIntercessao},
		{"musica e animacao with spaces", "Música e Animação", FrenteMusicaEAnimacao},
		{"musica alone", "música", FrenteMusicaEAnimacao},
		{"primeiros socorros with space", "Primeiros Socorros", FrentePrimeirosSocorros},
		{"primeiros socorros underscore", "primeiros_socorros", FrentePrimeirosSocorros},
		{"enfermagem variant", "enfermagem", FrentePrimeirosSocorros},
		{"saude variant", "Saúde", FrentePrimeirosSocorros},
		{"equipe externa", "Equipe Externa", FrenteExterna},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeFrente(tt.raw); got != tt.want {
				t.Errorf("NormalizeFrente(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeFrente_CaseAndWhitespace(t *testing.T) {
	tests := []string{
		"CAMPISTA",
		"Campista",
		"  campista  ",
		"cam pista",
		"COZINHA",
		" cozinha\t",
	}

	for _, raw := range tests {
		got := NormalizeFrente(raw)
		if got != FrenteCampista && got != FrenteCozinha {
			t.Errorf("NormalizeFrente(%q) = %q, expected canonical tag", raw, got)
		}
	}
}

func TestNormalizeFrente_FallbackToCampista(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"motorista",
		"convidado",
		"frente inexistente",
		"123",
	}

	for _, raw := range tests {
		if got := NormalizeFrente(raw); got != FrenteCampista {
			t.Errorf("NormalizeFrente(%q) = %q, want fallback %q", raw, got, FrenteCampista)
		}
	}
}
