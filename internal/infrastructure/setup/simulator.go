// Package setup implementa los efectos externos de la configuración inicial.
// La importación de stock y la sincronización con el sistema legado no tienen
// todavía un endpoint real; se simulan con una espera acotada que respeta la
// cancelación del contexto, igual que lo hará la integración definitiva.
package setup

import (
	"context"
	"time"

	"github.com/jhoicas/nexus-pos/pkg/logger"
)

const (
	importDuration = 1500 * time.Millisecond
	syncDuration   = 2 * time.Second
)

// Simulator efectos simulados de los pasos de importación y sincronización.
type Simulator struct {
	log *logger.Logger

	// escala de tiempo, reducible en tests
	scale time.Duration
}

// NewSimulator construye el simulador a escala real.
func NewSimulator(log *logger.Logger) *Simulator {
	return &Simulator{log: log, scale: time.Millisecond}
}

// NewFastSimulator construye un simulador sin esperas perceptibles.
func NewFastSimulator(log *logger.Logger) *Simulator {
	return &Simulator{log: log, scale: time.Nanosecond}
}

// ImportStock simula la carga del inventario inicial.
func (s *Simulator) ImportStock(ctx context.Context) error {
	s.log.Info().Msg("importando stock inicial")
	return s.wait(ctx, importDuration)
}

// SyncLegacy simula la sincronización con el sistema de facturación legado.
func (s *Simulator) SyncLegacy(ctx context.Context) error {
	s.log.Info().Msg("sincronizando con el sistema legado")
	return s.wait(ctx, syncDuration)
}

func (s *Simulator) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d / time.Millisecond * s.scale)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
