// Package sessionstore persiste el estado local del cliente entre reinicios:
// el perfil de la sesión activa, el nombre de la tienda y la marca de
// configuración inicial completada. Tres claves, un archivo JSON.
package sessionstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/nexus-pos/internal/domain/entity"
)

const fileName = "session.json"

// storedProfile forma persistida del perfil (espejo de entity.UserProfile).
type storedProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Picture  string `json:"picture,omitempty"`
	Role     string `json:"role"`
	Degraded bool   `json:"degraded,omitempty"`
}

// state contenido completo del archivo.
type state struct {
	User               *storedProfile `json:"nexus_user,omitempty"`
	StoreName          string         `json:"nexus_store_name,omitempty"`
	OnboardingComplete bool           `json:"nexus_onboarding_complete,omitempty"`
}

// Store almacén clave-valor respaldado por archivo. Las escrituras son
// atómicas (archivo temporal + rename) para que un corte a mitad de escritura
// no corrompa la sesión.
type Store struct {
	mu   sync.Mutex
	path string
}

// New construye el store dentro de dataDir, creando el directorio si falta.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("sessionstore: crear directorio de datos: %w", err)
	}
	return &Store{path: filepath.Join(dataDir, fileName)}, nil
}

// LoadProfile devuelve el perfil persistido, o nil si no hay sesión guardada.
func (s *Store) LoadProfile() (*entity.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.read()
	if err != nil {
		return nil, err
	}
	if st.User == nil {
		return nil, nil
	}
	role := entity.Role(st.User.Role)
	if !role.IsValid() {
		// Un rol corrupto o desconocido nunca debe restaurar privilegios.
		role = entity.RoleViewer
	}
	return &entity.UserProfile{
		Name:     st.User.Name,
		Email:    st.User.Email,
		Picture:  st.User.Picture,
		Role:     role,
		Degraded: st.User.Degraded,
	}, nil
}

// SaveProfile persiste el perfil de la sesión activa.
func (s *Store) SaveProfile(p entity.UserProfile) error {
	return s.update(func(st *state) {
		st.User = &storedProfile{
			Name:     p.Name,
			Email:    p.Email,
			Picture:  p.Picture,
			Role:     string(p.Role),
			Degraded: p.Degraded,
		}
	})
}

// ClearProfile borra el perfil persistido (sign-out). El nombre de tienda y la
// marca de onboarding se conservan: pertenecen a la instalación, no a la sesión.
func (s *Store) ClearProfile() error {
	return s.update(func(st *state) { st.User = nil })
}

// StoreName devuelve el nombre de tienda configurado ("" si no hay).
func (s *Store) StoreName() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.read()
	if err != nil {
		return "", err
	}
	return st.StoreName, nil
}

// SetStoreName persiste el nombre de la tienda de inmediato (paso 1 del onboarding).
func (s *Store) SetStoreName(name string) error {
	return s.update(func(st *state) { st.StoreName = name })
}

// OnboardingComplete indica si la configuración inicial ya fue completada.
func (s *Store) OnboardingComplete() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.read()
	if err != nil {
		return false, err
	}
	return st.OnboardingComplete, nil
}

// MarkOnboardingComplete persiste la marca de completado. Es monotónica:
// no existe operación que la revierta.
func (s *Store) MarkOnboardingComplete() error {
	return s.update(func(st *state) { st.OnboardingComplete = true })
}

// Reset borra todo el estado local (comando `pos reset`).
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("sessionstore: borrar estado local: %w", err)
	}
	return nil
}

// read carga el estado actual. Archivo ausente ⇒ estado vacío, nunca error.
func (s *Store) read() (*state, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &state{}, nil
		}
		return nil, fmt.Errorf("sessionstore: leer %s: %w", s.path, err)
	}
	var st state
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("sessionstore: estado local corrupto: %w", err)
	}
	return &st, nil
}

// update aplica una mutación bajo lock y escribe de forma atómica.
func (s *Store) update(mutate func(*state)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.read()
	if err != nil {
		return err
	}
	mutate(st)

	raw, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("sessionstore: serializar estado: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("sessionstore: escribir estado temporal: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("sessionstore: reemplazar estado: %w", err)
	}
	return nil
}
