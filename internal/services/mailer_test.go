package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/comunidadevida/acampamento-api/internal/config"
	"github.com/comunidadevida/acampamento-api/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logging.InitLogger()
	if config.AppConfig == nil {
		config.AppConfig = &config.Config{}
	}
}

func TestHTTPMailer_SendConfirmation(t *testing.T) {
	var received emailRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		authHeader = r.Header.Get("Authorization")

		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	config.AppConfig.EmailEnabled = true
	config.AppConfig.EmailBaseURL = server.URL
	config.AppConfig.EmailAPIKey = "test-key"
	config.AppConfig.EmailFrom = "inscricoes@comunidadevida.org.br"

	mailer := NewHTTPMailer(logging.Logger)
	err := mailer.SendConfirmation(context.Background(), "joao@example.com", ConfirmationData{
		Nome:         "João",
		EventoTitulo: "Acampamento Jovens",
		Frente:       "cozinha",
		EnviadoEm:    "2026-01-15 15:30",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", authHeader)
	assert.Equal(t, "inscricoes@comunidadevida.org.br", received.From)
	assert.Equal(t, "joao@example.com", received.To)
	assert.Equal(t, "Inscrição recebida — Acampamento Jovens", received.Subject)
	assert.Contains(t, received.HTML, "João")
	assert.Contains(t, received.HTML, "Acampamento Jovens")
	assert.Contains(t, received.HTML, "cozinha")
	assert.Contains(t, received.HTML, "em análise")
}

func TestHTTPMailer_SendConfirmation_Waitlist(t *testing.T) {
	var received emailRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	config.AppConfig.EmailEnabled = true
	config.AppConfig.EmailBaseURL = server.URL

	mailer := NewHTTPMailer(logging.Logger)
	err := mailer.SendConfirmation(context.Background(), "maria@example.com", ConfirmationData{
		Nome:          "Maria",
		EventoTitulo:  "Retiro de Carnaval",
		Frente:        "campista",
		IsListaEspera: true,
		EnviadoEm:     "2026-02-10 09:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "Lista de espera — Retiro de Carnaval", received.Subject)
	assert.Contains(t, received.HTML, "lista de espera")
	assert.NotContains(t, received.HTML, "em análise")
}

func TestHTTPMailer_SendConfirmation_Disabled(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	config.AppConfig.EmailEnabled = false
	config.AppConfig.EmailBaseURL = server.URL

	mailer := NewHTTPMailer(logging.Logger)
	err := mailer.SendConfirmation(context.Background(), "joao@example.com", ConfirmationData{
		Nome:         "João",
		EventoTitulo: "Acampamento",
	})
	require.NoError(t, err)
	assert.False(t, requested, "disabled mailer should not call the email API")
}

func TestHTTPMailer_SendConfirmation_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	config.AppConfig.EmailEnabled = true
	config.AppConfig.EmailBaseURL = server.URL

	mailer := NewHTTPMailer(logging.Logger)
	err := mailer.SendConfirmation(context.Background(), "joao@example.com", ConfirmationData{
		Nome:         "João",
		EventoTitulo: "Acampamento",
	})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "502"), "error should carry the upstream status: %v", err)
}
