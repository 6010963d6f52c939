package nexus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/nexus-pos/internal/application/dto"
	"github.com/jhoicas/nexus-pos/internal/domain/entity"
)

// Predict pide el pronóstico de demanda semanal de un SKU (GET /ai/predict/{sku}).
func (c *Client) Predict(ctx context.Context, sku string) (entity.Prediction, error) {
	path := fmt.Sprintf("/ai/predict/%s", url.PathEscape(sku))
	var d dto.PredictionDTO
	if err := c.do(ctx, http.MethodGet, path, nil, &d); err != nil {
		return entity.Prediction{}, err
	}
	return d.ToPrediction(), nil
}

// Chat envía un mensaje al asistente (POST /ai/chat). La respuesta puede traer
// un comando de navegación en Action.
func (c *Client) Chat(ctx context.Context, text string) (dto.ChatResponse, error) {
	var resp dto.ChatResponse
	if err := c.do(ctx, http.MethodPost, "/ai/chat", dto.ChatRequest{Text: text}, &resp); err != nil {
		return dto.ChatResponse{}, err
	}
	return resp, nil
}
