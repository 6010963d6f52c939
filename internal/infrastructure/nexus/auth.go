package nexus

import (
	"context"
	"net/http"

	"github.com/jhoicas/nexus-pos/internal/application/dto"
	"github.com/jhoicas/nexus-pos/internal/domain/entity"
)

// FederatedLogin intercambia la credencial federada por un perfil (POST /auth/login).
func (c *Client) FederatedLogin(ctx context.Context, credential string) (entity.UserProfile, error) {
	var resp dto.FederatedLoginResponse
	in := dto.FederatedLoginRequest{Credential: credential}
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &resp); err != nil {
		return entity.UserProfile{}, err
	}
	return resp.User.ToProfile(), nil
}

// AdminLogin autentica con usuario y contraseña (POST /auth/admin-login).
// Cualquier no-2xx es un rechazo; no existe fallback para esta vía.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (entity.UserProfile, error) {
	var user dto.AuthUserDTO
	in := dto.AdminLoginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/admin-login", in, &user); err != nil {
		return entity.UserProfile{}, err
	}
	return user.ToProfile(), nil
}
