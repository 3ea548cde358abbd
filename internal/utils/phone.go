package utils

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhoneNumber parses a phone number and returns it in E.164 form.
// Numbers without a country prefix are assumed to be Brazilian.
func NormalizePhoneNumber(phone string) (string, error) {
	cleanPhone := strings.TrimSpace(phone)
	if cleanPhone == "" {
		return "", fmt.Errorf("empty phone number")
	}

	if !strings.HasPrefix(cleanPhone, "+") {
		if strings.HasPrefix(cleanPhone, "55") && len(cleanPhone) > 11 {
			cleanPhone = "+" + cleanPhone
		}
	}

	num, err := phonenumbers.Parse(cleanPhone, "BR")
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number: %s", phone)
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}
