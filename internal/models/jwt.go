package models

// Staff roles allowed to transition enrollment status
const (
	RoleCoord    = "COORD"
	RoleConcelho = "CONCELHO"
	RoleAdmin    = "ADMIN"
)

// StaffRoles is the closed set of roles permitted to run staff operations
var StaffRoles = []string{RoleCoord, RoleConcelho, RoleAdmin}

// JWTClaims represents the structure of the JWT token claims
type JWTClaims struct {
	JTI         string   `json:"jti"`
	Exp         int64    `json:"exp"`
	IAT         int64    `json:"iat"`
	ISS         string   `json:"iss"`
	AUD         []string `json:"aud"`
	SUB         string   `json:"sub"`
	RealmAccess struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
	Scope             string `json:"scope"`
	EmailVerified     bool   `json:"email_verified"`
	Name              string `json:"name"`
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email"`
}

// IsStaff reports whether the claims carry one of the staff roles
func (c *JWTClaims) IsStaff() bool {
	for _, role := range c.RealmAccess.Roles {
		for _, staff := range StaffRoles {
			if role == staff {
				return true
			}
		}
	}
	return false
}
