package assistant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-pos/internal/application/assistant"
	"github.com/jhoicas/nexus-pos/internal/application/dto"
	"github.com/jhoicas/nexus-pos/internal/application/navigation"
	"github.com/jhoicas/nexus-pos/internal/domain"
	"github.com/jhoicas/nexus-pos/pkg/logger"
)

type fakeChatAPI struct {
	resp  dto.ChatResponse
	err   error
	calls int
	last  string
}

func (f *fakeChatAPI) Chat(_ context.Context, text string) (dto.ChatResponse, error) {
	f.calls++
	f.last = text
	if f.err != nil {
		return dto.ChatResponse{}, f.err
	}
	return f.resp, nil
}

func TestAssistant_RespuestaSimpleAlTranscript(t *testing.T) {
	api := &fakeChatAPI{resp: dto.ChatResponse{Text: "Hoy vendiste 12 unidades."}}
	nav := navigation.NewController()
	a := assistant.New(api, nav, logger.NewNop())

	view, err := a.Send(context.Background(), "¿cómo van las ventas?")

	require.NoError(t, err)
	assert.Empty(t, view)
	tr := a.Transcript()
	require.Len(t, tr, 2)
	assert.Equal(t, assistant.SenderUser, tr[0].Sender)
	assert.Equal(t, "¿cómo van las ventas?", tr[0].Text)
	assert.Equal(t, assistant.SenderNexus, tr[1].Sender)
	assert.Equal(t, "Hoy vendiste 12 unidades.", tr[1].Text)
	assert.Equal(t, navigation.DefaultView, nav.Active(), "sin action no hay navegación")
}

// Un action reconocido mueve la vista activa además de responder.
func TestAssistant_ComandoDeNavegacionRemota(t *testing.T) {
	api := &fakeChatAPI{resp: dto.ChatResponse{Text: "Abriendo el inventario.", Action: "NAVIGATE_INVENTORY"}}
	nav := navigation.NewController()
	a := assistant.New(api, nav, logger.NewNop())

	view, err := a.Send(context.Background(), "llévame al inventario")

	require.NoError(t, err)
	assert.Equal(t, navigation.ViewInventory, view)
	assert.Equal(t, navigation.ViewInventory, nav.Active())
	require.Len(t, a.Transcript(), 2, "la respuesta también se registra")
}

// Un action desconocido se ignora sin romper la conversación.
func TestAssistant_ComandoDesconocidoSeIgnora(t *testing.T) {
	api := &fakeChatAPI{resp: dto.ChatResponse{Text: "ok", Action: "NAVIGATE_WAREHOUSE"}}
	nav := navigation.NewController()
	a := assistant.New(api, nav, logger.NewNop())

	view, err := a.Send(context.Background(), "abre la bodega")

	require.NoError(t, err)
	assert.Empty(t, view)
	assert.Equal(t, navigation.DefaultView, nav.Active())
	assert.Len(t, a.Transcript(), 2)
}

// El fallo de red se convierte en un aviso dentro del transcript, nunca en
// un error de la vista. El mensaje del usuario queda registrado igualmente.
func TestAssistant_SinConexionInsertaAviso(t *testing.T) {
	api := &fakeChatAPI{err: errors.New("connection refused")}
	nav := navigation.NewController()
	a := assistant.New(api, nav, logger.NewNop())

	view, err := a.Send(context.Background(), "hola")

	require.NoError(t, err)
	assert.Empty(t, view)
	tr := a.Transcript()
	require.Len(t, tr, 2)
	assert.Equal(t, "hola", tr[0].Text)
	assert.Equal(t, assistant.SenderNexus, tr[1].Sender)
	assert.Contains(t, tr[1].Text, "no está disponible")
	assert.Equal(t, navigation.DefaultView, nav.Active())
}

func TestAssistant_MensajeVacioNoSeEnvia(t *testing.T) {
	api := &fakeChatAPI{}
	a := assistant.New(api, navigation.NewController(), logger.NewNop())

	_, err := a.Send(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, api.calls)
	assert.Empty(t, a.Transcript())
}

func TestAssistant_TranscriptEnOrdenDeLlegada(t *testing.T) {
	api := &fakeChatAPI{resp: dto.ChatResponse{Text: "r1"}}
	a := assistant.New(api, navigation.NewController(), logger.NewNop())

	_, err := a.Send(context.Background(), "m1")
	require.NoError(t, err)
	api.resp.Text = "r2"
	_, err = a.Send(context.Background(), "m2")
	require.NoError(t, err)

	tr := a.Transcript()
	require.Len(t, tr, 4)
	assert.Equal(t, []string{"m1", "r1", "m2", "r2"}, []string{tr[0].Text, tr[1].Text, tr[2].Text, tr[3].Text})
}
