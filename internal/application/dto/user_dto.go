package dto

import "github.com/jhoicas/nexus-pos/internal/domain/entity"

// FederatedLoginRequest cuerpo de POST /auth/login.
type FederatedLoginRequest struct {
	Credential string `json:"credential"`
}

// AdminLoginRequest cuerpo de POST /auth/admin-login.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthUserDTO usuario tal como lo devuelve el backend de auth.
type AuthUserDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
	Role    string `json:"role"`
}

// FederatedLoginResponse respuesta de POST /auth/login.
type FederatedLoginResponse struct {
	Status string      `json:"status"`
	User   AuthUserDTO `json:"user"`
}

// ToProfile convierte el usuario del backend a perfil de sesión.
// El rol se normaliza al conjunto cerrado {Manager, Viewer}.
func (d AuthUserDTO) ToProfile() entity.UserProfile {
	return entity.UserProfile{
		Name:    d.Name,
		Email:   d.Email,
		Picture: d.Picture,
		Role:    entity.ParseRole(d.Role),
	}
}
