// Package session resuelve a un visitante en una sesión autenticada y custodia
// el invariante de identidad: en todo momento hay exactamente una de
// {sin sesión, sesión activa}, y una sesión activa siempre porta un rol válido.
package session

import (
	"context"
	"sync"

	"github.com/jhoicas/nexus-pos/internal/application/navigation"
	"github.com/jhoicas/nexus-pos/internal/domain"
	"github.com/jhoicas/nexus-pos/internal/domain/entity"
	"github.com/jhoicas/nexus-pos/pkg/jwt"
	"github.com/jhoicas/nexus-pos/pkg/logger"
)

// AuthAPI puerto hacia los endpoints de autenticación del backend.
type AuthAPI interface {
	FederatedLogin(ctx context.Context, credential string) (entity.UserProfile, error)
	AdminLogin(ctx context.Context, username, password string) (entity.UserProfile, error)
}

// ProfileStore puerto hacia el almacén persistente de sesión.
type ProfileStore interface {
	LoadProfile() (*entity.UserProfile, error)
	SaveProfile(entity.UserProfile) error
	ClearProfile() error
	OnboardingComplete() (bool, error)
}

// UseCase casos de uso de identidad y acceso.
type UseCase struct {
	api   AuthAPI
	store ProfileStore
	nav   *navigation.Controller
	log   *logger.Logger

	mu      sync.Mutex
	current *entity.UserProfile
}

// NewUseCase construye el caso de uso.
func NewUseCase(api AuthAPI, store ProfileStore, nav *navigation.Controller, log *logger.Logger) *UseCase {
	return &UseCase{api: api, store: store, nav: nav, log: log}
}

// Restore lee el perfil persistido al arranque, sin validación de red.
// Devuelve el perfil restaurado (nil si no hay) y si el onboarding queda
// re-armado (hay sesión pero no hay marca de completado).
func (uc *UseCase) Restore() (*entity.UserProfile, bool, error) {
	profile, err := uc.store.LoadProfile()
	if err != nil {
		return nil, false, err
	}
	if profile == nil {
		return nil, false, nil
	}
	uc.setCurrent(*profile)

	done, err := uc.store.OnboardingComplete()
	if err != nil {
		return nil, false, err
	}
	uc.log.Info().Str("user", profile.Name).Bool("onboarding_armed", !done).Msg("sesión restaurada")
	return profile, !done, nil
}

// LoginFederated intercambia la credencial con el backend. Si el backend
// responde, el perfil (y su rol) adoptado es el del servidor. Si el backend
// falla (red caída o rechazo) se decodifican los claims del token localmente
// y se adopta un perfil degradado con rol Viewer: la terminal debe seguir
// siendo usable sin backend, al costo de autorización más débil. El modo
// degradado nunca concede Manager.
func (uc *UseCase) LoginFederated(ctx context.Context, credential string) (entity.UserProfile, error) {
	profile, err := uc.api.FederatedLogin(ctx, credential)
	if err != nil {
		uc.log.Warn().Err(err).Msg("auth federado inalcanzable; degradando a claims locales")
		claims, decErr := jwt.DecodeUnverified(credential)
		if decErr != nil {
			return entity.UserProfile{}, domain.ErrUnauthorized
		}
		profile = entity.UserProfile{
			Name:     claims.Name,
			Email:    claims.Email,
			Picture:  claims.Picture,
			Role:     entity.RoleViewer,
			Degraded: true,
		}
	}
	if err := uc.adopt(profile); err != nil {
		return entity.UserProfile{}, err
	}
	return profile, nil
}

// LoginAdmin autentica con credenciales de administrador. Cualquier fallo
// (incluida la red) es un login rechazado sin sesión ni perfil persistido;
// esta vía no tiene fallback.
func (uc *UseCase) LoginAdmin(ctx context.Context, username, password string) (entity.UserProfile, error) {
	profile, err := uc.api.AdminLogin(ctx, username, password)
	if err != nil {
		uc.log.Warn().Err(err).Str("username", username).Msg("login de administrador rechazado")
		return entity.UserProfile{}, err
	}
	if err := uc.adopt(profile); err != nil {
		return entity.UserProfile{}, err
	}
	return profile, nil
}

// LoginGuest sintetiza un perfil Viewer fijo sin tocar la red. Nunca falla
// por autenticación; el perfil se persiste para sobrevivir reinicios.
func (uc *UseCase) LoginGuest() (entity.UserProfile, error) {
	profile := entity.UserProfile{
		Name:  "Guest",
		Email: "guest@nexus.local",
		Role:  entity.RoleViewer,
	}
	if err := uc.adopt(profile); err != nil {
		return entity.UserProfile{}, err
	}
	return profile, nil
}

// SignOut limpia la sesión en memoria y en el almacén persistente y devuelve
// la navegación a la vista por defecto.
func (uc *UseCase) SignOut() error {
	uc.mu.Lock()
	uc.current = nil
	uc.mu.Unlock()
	uc.nav.Reset()
	return uc.store.ClearProfile()
}

// Current devuelve una copia del perfil activo, o nil si no hay sesión.
func (uc *UseCase) Current() *entity.UserProfile {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return nil
	}
	copia := *uc.current
	return &copia
}

// Authorize decide si la sesión actual puede montar una vista que exige el
// rol dado. No es un camino de error: el denegado se renderiza como
// placeholder, nunca se lanza.
func (uc *UseCase) Authorize(required entity.Role) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.current != nil && uc.current.Role.Satisfies(required)
}

// adopt fija el perfil como sesión activa y lo persiste. El rol queda
// inmutable hasta el sign-out.
func (uc *UseCase) adopt(p entity.UserProfile) error {
	if !p.Role.IsValid() {
		p.Role = entity.RoleViewer
	}
	if err := uc.store.SaveProfile(p); err != nil {
		return err
	}
	uc.setCurrent(p)
	uc.log.Info().Str("user", p.Name).Str("role", string(p.Role)).Bool("degraded", p.Degraded).Msg("sesión iniciada")
	return nil
}

func (uc *UseCase) setCurrent(p entity.UserProfile) {
	uc.mu.Lock()
	uc.current = &p
	uc.mu.Unlock()
}
