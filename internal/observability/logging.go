package observability

import (
	"github.com/comunidadevida/acampamento-api/internal/logging"
	"go.uber.org/zap"
)

// Logger returns the global logger instance
func Logger() *zap.Logger {
	return logging.Logger
}

// MaskCPF masks a CPF number for logging
func MaskCPF(cpf string) string {
	if len(cpf) != 11 {
		return "***.***.***-**"
	}
	return cpf[:3] + ".***" + "." + cpf[6:9] + "-**"
}

// MaskEmail masks the local part of an email address for logging
func MaskEmail(email string) string {
	for i, r := range email {
		if r == '@' {
			if i <= 2 {
				return "**" + email[i:]
			}
			return email[:2] + "****" + email[i:]
		}
	}
	return "****"
}
