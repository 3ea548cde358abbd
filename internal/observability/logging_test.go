package observability

import "testing"

func TestMaskCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want string
	}{
		{"valid length", "52998224725", "529.***.247-**"},
		{"too short", "12345", "***.***.***-**"},
		{"too long", "529982247250", "***.***.***-**"},
		{"empty", "", "***.***.***-**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskCPF(tt.cpf); got != tt.want {
				t.Errorf("MaskCPF(%q) = %q, want %q", tt.cpf, got, tt.want)
			}
		})
	}
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"regular email", "joao.silva@example.com", "jo****@example.com"},
		{"short local part", "jo@example.com", "**@example.com"},
		{"single char local part", "j@example.com", "**@example.com"},
		{"no at sign", "not-an-email", "****"},
		{"empty", "", "****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskEmail(tt.email); got != tt.want {
				t.Errorf("MaskEmail(%q) = %q, want %q", tt.email, got, tt.want)
			}
		})
	}
}
