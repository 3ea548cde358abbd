package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/comunidadevida/acampamento-api/internal/config"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthResponse reports service and dependency health
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck godoc
// @Summary Verificação de saúde
// @Description Verifica a disponibilidade do serviço e de suas dependências (MongoDB e Redis).
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{
		"mongodb": "ok",
		"redis":   "ok",
	}
	healthy := true

	if config.MongoDB == nil {
		checks["mongodb"] = "not initialized"
		healthy = false
	} else if err := config.MongoDB.Client().Ping(ctx, readpref.Primary()); err != nil {
		checks["mongodb"] = err.Error()
		healthy = false
	}

	if config.Redis == nil {
		checks["redis"] = "not initialized"
		healthy = false
	} else if err := config.Redis.Ping(ctx).Err(); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	}

	status := http.StatusOK
	response := HealthResponse{Status: "ok", Checks: checks}
	if !healthy {
		status = http.StatusServiceUnavailable
		response.Status = "degraded"
	}

	c.JSON(status, response)
}
