package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims claims de identidad del proveedor federado (estilo OIDC).
type IdentityClaims struct {
	jwt.RegisteredClaims
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// DecodeUnverified decodifica los claims de un token de identidad SIN validar
// la firma. Es el modo degradado del login federado: cuando el backend de auth
// no responde, el cliente adopta los claims locales con el rol de menor
// privilegio. Nunca debe usarse para conceder autorización elevada.
func DecodeUnverified(tokenString string) (*IdentityClaims, error) {
	claims := &IdentityClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("jwt: decodificar claims: %w", err)
	}
	if claims.Email == "" && claims.Name == "" {
		return nil, fmt.Errorf("jwt: el token no contiene claims de identidad")
	}
	return claims, nil
}
