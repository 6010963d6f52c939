package entity

// Role rol de un usuario dentro del cliente POS.
// Es un tipo cerrado: solo existen Manager y Viewer. Un string abierto permitiría
// que un typo silencioso concediera o negara acceso incorrectamente.
type Role string

const (
	RoleManager Role = "Manager"
	RoleViewer  Role = "Viewer"
)

// IsValid indica si el rol pertenece al conjunto cerrado.
func (r Role) IsValid() bool {
	return r == RoleManager || r == RoleViewer
}

// Satisfies indica si el rol cumple el requisito de acceso.
// Manager satisface cualquier requisito; Viewer solo vistas sin restricción.
func (r Role) Satisfies(required Role) bool {
	if r == RoleManager {
		return true
	}
	return r == required
}

// ParseRole normaliza un rol recibido del backend. Cualquier valor desconocido
// degrada a Viewer en lugar de fallar: nunca se concede acceso por accidente.
func ParseRole(s string) Role {
	switch s {
	case string(RoleManager), "manager", "admin":
		return RoleManager
	default:
		return RoleViewer
	}
}

// UserProfile perfil del usuario autenticado durante la sesión.
// El rol se fija una sola vez en el login y es inmutable hasta el sign-out.
type UserProfile struct {
	Name    string
	Email   string
	Picture string // opcional
	Role    Role
	// Degraded marca una sesión adoptada por el fallback local de claims
	// (backend inalcanzable durante el login federado).
	Degraded bool
}
