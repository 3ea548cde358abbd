package handlers

import "github.com/comunidadevida/acampamento-api/internal/utils"

// ErrorResponse is the error envelope of every failed request
type ErrorResponse struct {
	Error  string                  `json:"error"`
	Fields []utils.ValidationError `json:"fields,omitempty"`
}

// SuccessResponse is the envelope of a successful mutation
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
