package services

import (
	"github.com/comunidadevida/acampamento-api/internal/config"
	"go.uber.org/zap"
)

// Package-level service instances wired by InitServices after the database
// connections are up
var (
	CapacityServiceInstance     *CapacityService
	RegistrationServiceInstance *RegistrationService
	EnrollmentServiceInstance   *EnrollmentService
	RateLimiterInstance         *RateLimiter
)

// InitServices builds the service singletons used by the handlers
func InitServices(logger *zap.Logger) {
	CapacityServiceInstance = NewCapacityService(logger)
	EnrollmentServiceInstance = NewEnrollmentService(logger)
	RegistrationServiceInstance = NewRegistrationService(
		logger,
		NewHTTPBlobStorage(logger),
		NewHTTPMailer(logger),
		CapacityServiceInstance,
	)
	RateLimiterInstance = NewRateLimiter(
		config.AppConfig.RegistrationRateLimit,
		config.AppConfig.RegistrationRateWindow,
		logger,
	)
}
