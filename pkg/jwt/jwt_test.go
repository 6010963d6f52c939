package jwt_test

import (
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/nexus-pos/pkg/jwt"
)

// tokenConClaims genera un token firmado con una clave arbitraria; la firma
// no se valida en el decode degradado, solo importa el payload.
func tokenConClaims(t *testing.T, name, email, picture string) string {
	t.Helper()
	claims := gojwt.MapClaims{"name": name, "email": email}
	if picture != "" {
		claims["picture"] = picture
	}
	tok := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("clave-cualquiera"))
	require.NoError(t, err)
	return s
}

func TestDecodeUnverified_ExtraeClaims(t *testing.T) {
	s := tokenConClaims(t, "Mbuso", "mbuso@nexus.retail", "https://img/avatar.png")

	claims, err := pkgjwt.DecodeUnverified(s)

	require.NoError(t, err)
	assert.Equal(t, "Mbuso", claims.Name)
	assert.Equal(t, "mbuso@nexus.retail", claims.Email)
	assert.Equal(t, "https://img/avatar.png", claims.Picture)
}

func TestDecodeUnverified_TokenMalformado(t *testing.T) {
	_, err := pkgjwt.DecodeUnverified("esto-no-es-un-jwt")
	assert.Error(t, err)
}

func TestDecodeUnverified_SinClaimsDeIdentidad(t *testing.T) {
	tok := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{"sub": "123"})
	s, err := tok.SignedString([]byte("clave"))
	require.NoError(t, err)

	_, err = pkgjwt.DecodeUnverified(s)
	assert.Error(t, err, "un token sin name ni email no identifica a nadie")
}
