package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want string
	}{
		{"already normalized", "52998224725", "52998224725"},
		{"formatted", "529.982.247-25", "52998224725"},
		{"with spaces", " 529 982 247 25 ", "52998224725"},
		{"empty", "", ""},
		{"letters stripped", "529a982b247c25", "52998224725"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCPF(tt.cpf))
		})
	}
}

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		// Valid CPFs
		{
			name:  "Valid CPF without formatting",
			cpf:   "12345678909",
			valid: true,
		},
		{
			name:  "Valid CPF with formatting",
			cpf:   "123.456.789-09",
			valid: true,
		},
		{
			name:  "Valid CPF - real example 1",
			cpf:   "11144477735",
			valid: true,
		},
		{
			name:  "Valid CPF - real example 2",
			cpf:   "52998224725",
			valid: true,
		},

		// Invalid CPFs
		{
			name:  "Invalid CPF - wrong check digit",
			cpf:   "12345678900",
			valid: false,
		},
		{
			name:  "Invalid CPF - all zeros",
			cpf:   "00000000000",
			valid: false,
		},
		{
			name:  "Invalid CPF - all ones",
			cpf:   "11111111111",
			valid: false,
		},
		{
			name:  "Invalid CPF - sequential digits",
			cpf:   "12345678910",
			valid: false,
		},
		{
			name:  "Invalid CPF - too short",
			cpf:   "123456789",
			valid: false,
		},
		{
			name:  "Invalid CPF - too long",
			cpf:   "123456789012",
			valid: false,
		},
		{
			name:  "Invalid CPF - empty string",
			cpf:   "",
			valid: false,
		},
		{
			name:  "Invalid CPF - only letters",
			cpf:   "abcdefghijk",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateCPF(tt.cpf)
			assert.Equal(t, tt.valid, result, "ValidateCPF(%q) should be %v", tt.cpf, tt.valid)
		})
	}
}

func TestValidateCPF_AllSameDigits(t *testing.T) {
	invalidCPFs := []string{
		"22222222222",
		"33333333333",
		"44444444444",
		"55555555555",
		"66666666666",
		"77777777777",
		"88888888888",
		"99999999999",
	}

	for _, cpf := range invalidCPFs {
		t.Run("All same digits: "+cpf, func(t *testing.T) {
			assert.False(t, ValidateCPF(cpf), "CPF %s should be invalid (all same digits)", cpf)
		})
	}
}
