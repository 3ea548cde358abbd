package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/comunidadevida/acampamento-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func patchStatusRouter() *gin.Engine {
	router := gin.New()
	router.PATCH("/v1/inscricoes/status", UpdateInscricaoStatus)
	return router
}

func TestUpdateInscricaoStatus_InvalidPayload(t *testing.T) {
	services.EnrollmentServiceInstance = nil

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"not json", "not json"},
		{"missing inscricaoId", `{"status":"confirmada"}`},
		{"missing status", `{"inscricaoId":"64f0c2a5b3e4d5a6f7b8c9d0"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest("PATCH", "/v1/inscricoes/status", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			patchStatusRouter().ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateInscricaoStatus_ServiceUnavailable(t *testing.T) {
	services.EnrollmentServiceInstance = nil

	body := `{"inscricaoId":"64f0c2a5b3e4d5a6f7b8c9d0","status":"confirmada"}`
	req, _ := http.NewRequest("PATCH", "/v1/inscricoes/status", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	patchStatusRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
