// Package onboarding implementa la secuencia de configuración inicial:
// una máquina lineal de cuatro estados que corre una sola vez por identidad.
// Es modal: mientras está activa bloquea el resto de la aplicación.
package onboarding

import (
	"context"
	"sync"

	"github.com/jhoicas/nexus-pos/internal/domain"
	"github.com/jhoicas/nexus-pos/pkg/logger"
)

// Step estado de la máquina. Solo avanza, nunca retrocede ni salta.
type Step int

const (
	StepStoreSetup    Step = 1
	StepImportStock   Step = 2
	StepConnectLegacy Step = 3
	StepDone          Step = 4
)

// SetupStore puerto de persistencia: nombre de tienda y marca de completado.
type SetupStore interface {
	SetStoreName(name string) error
	MarkOnboardingComplete() error
}

// SideEffects puerto hacia los efectos externos de los pasos 2 y 3.
type SideEffects interface {
	ImportStock(ctx context.Context) error
	SyncLegacy(ctx context.Context) error
}

// CatalogRefresher puerto para el refresh de catálogo al completar.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// Flow instancia única de la secuencia de configuración.
type Flow struct {
	store   SetupStore
	effects SideEffects
	catalog CatalogRefresher
	log     *logger.Logger

	mu        sync.Mutex
	step      Step
	completed bool
}

// NewFlow arranca en el paso de configuración de tienda.
func NewFlow(store SetupStore, effects SideEffects, catalog CatalogRefresher, log *logger.Logger) *Flow {
	return &Flow{store: store, effects: effects, catalog: catalog, log: log, step: StepStoreSetup}
}

// Step devuelve el paso actual.
func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Completed indica si la marca de completado ya fue persistida.
func (f *Flow) Completed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.completed
}

// SubmitStoreConfig persiste el nombre de la tienda de inmediato (no se
// difiere al completado) y avanza 1→2.
func (f *Flow) SubmitStoreConfig(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepStoreSetup {
		return domain.ErrInvalidStep
	}
	if name == "" {
		return domain.ErrInvalidInput
	}
	if err := f.store.SetStoreName(name); err != nil {
		return err
	}
	f.step = StepImportStock
	return nil
}

// RunImport ejecuta la importación masiva y avanza 2→3. El fallo del efecto
// se registra y se traga: la configuración inicial debe poder completarse
// aunque la importación falle.
func (f *Flow) RunImport(ctx context.Context) error {
	f.mu.Lock()
	if f.step != StepImportStock {
		f.mu.Unlock()
		return domain.ErrInvalidStep
	}
	f.mu.Unlock()

	if err := f.effects.ImportStock(ctx); err != nil {
		f.log.Warn().Err(err).Msg("importación de stock falló; la configuración continúa")
	}

	f.mu.Lock()
	f.step = StepConnectLegacy
	f.mu.Unlock()
	return nil
}

// RunLegacySync sincroniza con el sistema legado y avanza 3→4, con la misma
// política de avance incondicional que la importación.
func (f *Flow) RunLegacySync(ctx context.Context) error {
	f.mu.Lock()
	if f.step != StepConnectLegacy {
		f.mu.Unlock()
		return domain.ErrInvalidStep
	}
	f.mu.Unlock()

	if err := f.effects.SyncLegacy(ctx); err != nil {
		f.log.Warn().Err(err).Msg("sincronización legacy falló; la configuración continúa")
	}

	f.mu.Lock()
	f.step = StepDone
	f.mu.Unlock()
	return nil
}

// Complete persiste la marca de completado (ningún restore futuro re-arma el
// flujo) y dispara un refresh de catálogo. El fallo del refresh es silencioso:
// un catálogo frío es un estado degradado seguro.
func (f *Flow) Complete(ctx context.Context) error {
	f.mu.Lock()
	if f.step != StepDone || f.completed {
		f.mu.Unlock()
		return domain.ErrInvalidStep
	}
	f.mu.Unlock()

	if err := f.store.MarkOnboardingComplete(); err != nil {
		return err
	}

	f.mu.Lock()
	f.completed = true
	f.mu.Unlock()

	if err := f.catalog.Refresh(ctx); err != nil {
		f.log.Warn().Err(err).Msg("refresh de catálogo tras onboarding falló")
	}
	f.log.Info().Msg("configuración inicial completada")
	return nil
}
