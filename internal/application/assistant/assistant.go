// Package assistant gestiona el chat con el asistente Nexus AI y aplica los
// comandos de navegación remota que llegan adjuntos a sus respuestas.
package assistant

import (
	"context"
	"strings"

	"github.com/jhoicas/nexus-pos/internal/application/dto"
	"github.com/jhoicas/nexus-pos/internal/application/navigation"
	"github.com/jhoicas/nexus-pos/internal/domain"
	"github.com/jhoicas/nexus-pos/internal/domain/entity"
	"github.com/jhoicas/nexus-pos/pkg/logger"
)

// Remitentes del transcript.
const (
	SenderUser  = "user"
	SenderNexus = "nexus"
)

// offlineNotice mensaje insertado en el transcript cuando el asistente no
// responde. El chat nunca propaga el error como fallo de la vista.
const offlineNotice = "El asistente no está disponible en este momento. Verifica la conexión con el servidor e inténtalo de nuevo."

// ChatAPI puerto hacia el endpoint del asistente.
type ChatAPI interface {
	Chat(ctx context.Context, text string) (dto.ChatResponse, error)
}

// Assistant conversación con el asistente. El transcript vive solo en
// memoria: se pierde al cerrar la terminal, igual que la vista de chat.
type Assistant struct {
	api ChatAPI
	nav *navigation.Controller
	log *logger.Logger

	transcript []entity.ChatMessage
}

// New construye el asistente con un transcript vacío.
func New(api ChatAPI, nav *navigation.Controller, log *logger.Logger) *Assistant {
	return &Assistant{api: api, nav: nav, log: log}
}

// Transcript devuelve una copia del historial en orden de llegada.
func (a *Assistant) Transcript() []entity.ChatMessage {
	out := make([]entity.ChatMessage, len(a.transcript))
	copy(out, a.transcript)
	return out
}

// Send envía el texto del usuario y anexa la respuesta al transcript.
//
// El mensaje del usuario se registra antes de llamar a la red, de modo que
// quede en el historial aunque el backend no responda. Si la respuesta trae
// un comando NAVIGATE_* reconocido, se aplica la transición de vista; los
// comandos desconocidos se ignoran sin romper la conversación. Devuelve la
// vista a la que se navegó (vacía si no hubo transición).
func (a *Assistant) Send(ctx context.Context, text string) (navigation.View, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.ErrInvalidInput
	}

	a.transcript = append(a.transcript, entity.ChatMessage{Sender: SenderUser, Text: text})

	resp, err := a.api.Chat(ctx, text)
	if err != nil {
		a.log.Warn().Err(err).Msg("asistente sin respuesta")
		a.transcript = append(a.transcript, entity.ChatMessage{Sender: SenderNexus, Text: offlineNotice})
		return "", nil
	}

	a.transcript = append(a.transcript, entity.ChatMessage{Sender: SenderNexus, Text: resp.Text})

	if resp.Action == "" {
		return "", nil
	}
	view, ok := navigation.ViewForAction(resp.Action)
	if !ok {
		a.log.Warn().Str("action", resp.Action).Msg("comando de navegación desconocido, ignorado")
		return "", nil
	}
	a.nav.Navigate(view)
	a.log.Info().Str("view", string(view)).Msg("navegación remota del asistente")
	return view, nil
}
