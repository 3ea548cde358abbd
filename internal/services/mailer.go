package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/comunidadevida/acampamento-api/internal/config"
	"github.com/comunidadevida/acampamento-api/internal/observability"
	"github.com/comunidadevida/acampamento-api/internal/utils"
	"github.com/comunidadevida/acampamento-api/internal/utils/httpclient"
	"go.uber.org/zap"
)

// ConfirmationData is the template payload of the registration
// confirmation email
type ConfirmationData struct {
	Nome          string
	EventoTitulo  string
	Frente        string
	IsListaEspera bool
	EnviadoEm     string
}

// Mailer is the consumed templated-email capability
type Mailer interface {
	SendConfirmation(ctx context.Context, to string, data ConfirmationData) error
}

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`
<h2>Olá, {{.Nome}}!</h2>
{{if .IsListaEspera}}
<p>Recebemos sua inscrição para a <strong>lista de espera</strong> do evento
<strong>{{.EventoTitulo}}</strong>. Caso uma vaga seja liberada, a coordenação
entrará em contato.</p>
{{else}}
<p>Recebemos sua inscrição para o evento <strong>{{.EventoTitulo}}</strong>.
Seu comprovante de pagamento está em análise pela coordenação.</p>
{{end}}
<ul>
  <li>Frente de trabalho: {{.Frente}}</li>
  <li>Enviado em: {{.EnviadoEm}}</li>
</ul>
<p>Com carinho,<br>Equipe de Acampamentos</p>
`))

// HTTPMailer delivers email through the transactional email HTTP API
// configured in EMAIL_BASE_URL
type HTTPMailer struct {
	pool   *httpclient.Pool
	logger *zap.Logger
}

// NewHTTPMailer creates a mailer backed by a pooled HTTP client
func NewHTTPMailer(logger *zap.Logger) *HTTPMailer {
	return &HTTPMailer{
		pool:   httpclient.NewPool(2),
		logger: logger,
	}
}

type emailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// SendConfirmation renders the confirmation template and posts it to the
// email API. Callers treat failures as log-and-continue; a lost email never
// fails a registration that already succeeded.
func (m *HTTPMailer) SendConfirmation(ctx context.Context, to string, data ConfirmationData) error {
	ctx, span := utils.TraceExternalService(ctx, "email", "send_confirmation")
	defer span.End()

	if !config.AppConfig.EmailEnabled || config.AppConfig.EmailBaseURL == "" {
		m.logger.Debug("email delivery disabled, skipping confirmation",
			zap.String("to", observability.MaskEmail(to)))
		return nil
	}

	var body bytes.Buffer
	if err := confirmationTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render confirmation template: %w", err)
	}

	subject := "Inscrição recebida — " + data.EventoTitulo
	if data.IsListaEspera {
		subject = "Lista de espera — " + data.EventoTitulo
	}

	payload, err := json.Marshal(emailRequest{
		From:    config.AppConfig.EmailFrom,
		To:      to,
		Subject: subject,
		HTML:    body.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	sendURL := strings.TrimRight(config.AppConfig.EmailBaseURL, "/") + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if config.AppConfig.EmailAPIKey != "" {
		req.Header.Set("Authorization", "Bearer "+config.AppConfig.EmailAPIKey)
	}

	client := m.pool.Get()
	defer m.pool.Put(client)

	resp, err := client.Do(req)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{
			"email.to": observability.MaskEmail(to),
		})
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := fmt.Errorf("email API returned status %d: %s", resp.StatusCode, string(respBody))
		utils.RecordErrorInSpan(span, err, map[string]interface{}{
			"email.to": observability.MaskEmail(to),
		})
		return err
	}

	return nil
}
