package nexus

import (
	"context"
	"net/http"

	"github.com/jhoicas/nexus-pos/internal/application/dto"
	"github.com/jhoicas/nexus-pos/internal/domain/entity"
)

// CreateTransaction envía la venta como un único POST atómico.
// El request lleva solo método de pago y (sku, cantidad); los precios los
// recalcula el servidor.
func (c *Client) CreateTransaction(ctx context.Context, in dto.TransactionCreate) (*dto.TransactionCreateResult, error) {
	var result dto.TransactionCreateResult
	if err := c.do(ctx, http.MethodPost, "/transactions/", in, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListTransactions historial de ventas para reportes (GET /transactions/).
func (c *Client) ListTransactions(ctx context.Context) ([]entity.Transaction, error) {
	var dtos []dto.TransactionDTO
	if err := c.do(ctx, http.MethodGet, "/transactions/", nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]entity.Transaction, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.ToTransaction())
	}
	return out, nil
}
