package utils

import (
	"regexp"
	"strconv"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// NormalizeCPF strips any formatting and returns the CPF digits only
func NormalizeCPF(cpf string) string {
	return nonDigitRegex.ReplaceAllString(cpf, "")
}

// ValidateCPF validates a CPF number
// It checks if the CPF has 11 digits and validates the check digits
func ValidateCPF(cpf string) bool {
	cpf = NormalizeCPF(cpf)

	if len(cpf) != 11 {
		return false
	}

	// All-same-digit CPFs pass the checksum but are not valid
	allSame := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	// Validate first check digit
	sum := 0
	for i := 0; i < 9; i++ {
		digit, _ := strconv.Atoi(string(cpf[i]))
		sum += digit * (10 - i)
	}
	remainder := sum % 11
	if remainder < 2 {
		if cpf[9] != '0' {
			return false
		}
	} else {
		expected := strconv.Itoa(11 - remainder)
		if string(cpf[9]) != expected {
			return false
		}
	}

	// Validate second check digit
	sum = 0
	for i := 0; i < 10; i++ {
		digit, _ := strconv.Atoi(string(cpf[i]))
		sum += digit * (11 - i)
	}
	remainder = sum % 11
	if remainder < 2 {
		if cpf[10] != '0' {
			return false
		}
	} else {
		expected := strconv.Itoa(11 - remainder)
		if string(cpf[10]) != expected {
			return false
		}
	}

	return true
}
